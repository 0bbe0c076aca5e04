package client

import (
	"context"

	"github.com/romshark/ntoa/internal/consts"
	"github.com/romshark/ntoa/internal/numparse"
	"github.com/romshark/ntoa/ntoa"
)

// Make sure *Inmem implements Implementer
var _ Implementer = new(Inmem)

// Inmem is a client calling package ntoa directly
type Inmem struct {
	maxBatchSize int
}

// NewInmem creates a new in-memory client.
// A maxBatchSize of 0 disables the batch size limit.
func NewInmem(maxBatchSize int) *Inmem {
	return &Inmem{maxBatchSize: maxBatchSize}
}

// Format implements Implementer.Format
func (c *Inmem) Format(
	ctx context.Context,
	v int64,
	r ntoa.Radix,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return ntoa.Format(v, r)
}

// FormatBatch implements Implementer.FormatBatch
func (c *Inmem) FormatBatch(
	ctx context.Context,
	r ntoa.Radix,
	values []int64,
) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.Valid() {
		return nil, &ntoa.RadixError{Radix: int(r)}
	}
	if c.maxBatchSize > 0 && len(values) > c.maxBatchSize {
		return nil, ErrBatchTooLarge
	}
	s := make([]string, len(values))
	for i, v := range values {
		var err error
		if s[i], err = ntoa.Format(v, r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MaxChars implements Implementer.MaxChars
func (c *Inmem) MaxChars(ctx context.Context, r ntoa.Radix) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return ntoa.MaxChars(r)
}

// Stream implements Implementer.Stream
func (c *Inmem) Stream(
	ctx context.Context,
	r ntoa.Radix,
	values []string,
	onResult func(i int, result string, err error),
) error {
	if !r.Valid() {
		return &ntoa.RadixError{Radix: int(r)}
	}
	for i, s := range values {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(s) > consts.MaxStreamValueLen {
			onResult(i, "", ErrMalformedValue)
			continue
		}
		v, _, err := numparse.ParseInt([]byte(s))
		if err != nil {
			onResult(i, "", err)
			continue
		}
		f, err := ntoa.Format(v, r)
		onResult(i, f, err)
	}
	return nil
}
