// Package bufpool provides pooled byte buffers for
// assembling text containing formatted integers.
package bufpool

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/romshark/ntoa/ntoa"
)

// Buffer is a buffer instance
type Buffer struct {
	bytes.Buffer
	src     *Pool
	initCap int
}

// AppendInt appends the representation of v in the given radix
func (b *Buffer) AppendInt(v int64, r ntoa.Radix) error {
	p, err := ntoa.AppendInt(b.AvailableBuffer(), v, r)
	if err != nil {
		return err
	}
	_, _ = b.Write(p)
	return nil
}

// Release resets the buffer and puts it back to the pool.
// Buffers that outgrew the pool's buffer length are dropped
// to keep the pooled memory bounded.
func (b *Buffer) Release() {
	if b.Cap() > b.initCap {
		b.src.dropped.Add(1)
		return
	}
	b.Buffer.Reset()
	b.src.pool.Put(b)
}

// Pool is a buffer pool
type Pool struct {
	bufLen  int
	pool    sync.Pool
	dropped atomic.Uint64
}

// MinBufLen is the smallest buffer length of a pool,
// enough for the longest binary representation of an int64
const MinBufLen = 64

// NewPool returns a new buffer pool
//
// NOTE: The given buffer length will
// automatically be set to MinBufLen if it's smaller
func NewPool(bufLen int) *Pool {
	if bufLen < MinBufLen {
		bufLen = MinBufLen
	}
	p := &Pool{
		bufLen: bufLen,
	}
	p.pool = sync.Pool{
		New: func() interface{} {
			b := &Buffer{src: p}
			b.Buffer.Grow(bufLen)
			b.initCap = b.Cap()
			return b
		},
	}
	return p
}

// Dropped returns the number of released buffers
// that weren't put back to the pool
func (p *Pool) Dropped() uint64 { return p.dropped.Load() }

// BufLen returns the capacity of pooled buffers
func (p *Pool) BufLen() int { return p.bufLen }

// Get returns a Buffer
//
// WARNING: the buffer needs to be released as soon as it's no longer needed.
// Aliases of the buffer's internal byte-slice should not be used after
// the buffer is released
func (p *Pool) Get() *Buffer {
	return p.pool.Get().(*Buffer)
}
