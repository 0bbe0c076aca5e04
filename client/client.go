package client

import (
	"context"
	"errors"

	"github.com/romshark/ntoa/internal/numparse"
	"github.com/romshark/ntoa/ntoa"
)

// Client is a format service client
type Client struct {
	impl Implementer
}

// New creates a new format service client
func New(impl Implementer) *Client {
	return &Client{
		impl: impl,
	}
}

// Format returns the representation of v in radix r
func (c *Client) Format(
	ctx context.Context,
	v int64,
	r ntoa.Radix,
) (string, error) {
	return c.impl.Format(ctx, v, r)
}

// FormatBatch returns the representations of all values in radix r
// in the order of values.
func (c *Client) FormatBatch(
	ctx context.Context,
	r ntoa.Radix,
	values ...int64,
) ([]string, error) {
	if len(values) < 1 {
		return []string{}, nil
	}
	return c.impl.FormatBatch(ctx, r, values)
}

// MaxChars returns the maximum number of characters
// any value can occupy in radix r.
func (c *Client) MaxChars(ctx context.Context, r ntoa.Radix) (int, error) {
	return c.impl.MaxChars(ctx, r)
}

// Stream formats all values in a single session.
// Values are given in prefixed notation ("-0xff", "0b101", "42").
// onResult is called for every value in order, a value that
// couldn't be formatted is reported through err.
func (c *Client) Stream(
	ctx context.Context,
	r ntoa.Radix,
	values []string,
	onResult func(i int, result string, err error),
) error {
	if len(values) < 1 {
		return nil
	}
	return c.impl.Stream(ctx, r, values, onResult)
}

var (
	ErrInvalidRadix   = ntoa.ErrInvalidRadix
	ErrOutOfRange     = ntoa.ErrOutOfRange
	ErrMalformedValue = numparse.ErrMalformed
	ErrOverflow       = numparse.ErrOverflow
	ErrBatchTooLarge  = errors.New("batch too large")
	ErrInvalidPayload = errors.New("invalid payload")

	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrInternal               = errors.New("internal server error")
)

// Implementer represents a client implementer
type Implementer interface {
	Format(ctx context.Context, v int64, r ntoa.Radix) (string, error)

	FormatBatch(
		ctx context.Context,
		r ntoa.Radix,
		values []int64,
	) ([]string, error)

	MaxChars(ctx context.Context, r ntoa.Radix) (int, error)

	Stream(
		ctx context.Context,
		r ntoa.Radix,
		values []string,
		onResult func(i int, result string, err error),
	) error
}
