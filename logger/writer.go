package logger

import (
	"bufio"
	"io"
	"sync"
)

// Writer is the output of a Logger.
// Implementations must be safe for concurrent use.
type Writer interface {
	io.Writer

	// Flush flushes buffered output. Writers that can't
	// be flushed return nil.
	Flush() error
}

// StreamWriter is a buffered Writer writing to an io.Writer
type StreamWriter struct {
	lock sync.Mutex
	w    *bufio.Writer
}

// Make sure *StreamWriter implements Writer
var _ Writer = new(StreamWriter)

// NewStreamWriter returns a new buffered writer writing to w
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: bufio.NewWriter(w)}
}

// Write implements Writer.Write
func (w *StreamWriter) Write(p []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.w.Write(p)
}

// Flush implements Writer.Flush
func (w *StreamWriter) Flush() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.w.Flush()
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Flush() error                { return nil }

// Discard is a Writer on which all calls succeed without doing anything
var Discard Writer = discard{}
