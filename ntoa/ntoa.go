// Package ntoa converts signed 64-bit integers to text
// in binary, decimal and hexadecimal notation.
package ntoa

import (
	"errors"
	"fmt"
	"io"
)

// Radix is the base of the numeral system used for output
type Radix int

// Common radices
const (
	Binary      Radix = 2
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// Valid returns true if r is one of the common radices
func (r Radix) Valid() bool {
	switch r {
	case Binary, Decimal, Hexadecimal:
		return true
	}
	return false
}

// Prefix returns the literal prefix written before the digits
func (r Radix) Prefix() string {
	if r == Hexadecimal {
		return "0x"
	}
	return ""
}

func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return fmt.Sprintf("radix(%d)", int(r))
}

var (
	ErrInvalidRadix   = errors.New("invalid radix")
	ErrOutOfRange     = errors.New("digit out of range")
	ErrBufferOverflow = errors.New("buffer overflow")
)

// RadixError is returned for radices outside the supported set
type RadixError struct {
	Radix int
}

func (e *RadixError) Error() string {
	return fmt.Sprintf("invalid radix: %d", e.Radix)
}

func (e *RadixError) Unwrap() error { return ErrInvalidRadix }

// FormatInt returns the decimal representation of v
func FormatInt(v int64) string {
	var buf [maxDecimalChars]byte
	// Decimal never exceeds maxDecimalChars, appendInt can't fail here
	b, _ := appendInt(buf[:0], v, Decimal)
	return string(b)
}

// Format returns the representation of v in the given radix.
// Hexadecimal results carry a "0x" prefix, negative results
// start with a minus sign placed before the prefix.
func Format(v int64, r Radix) (string, error) {
	if !r.Valid() {
		return "", &RadixError{Radix: int(r)}
	}
	var buf [maxBinaryChars]byte
	b, err := appendInt(buf[:0], v, r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendInt appends the representation of v in the given radix to dst
// and returns the extended buffer
func AppendInt(dst []byte, v int64, r Radix) ([]byte, error) {
	if !r.Valid() {
		return dst, &RadixError{Radix: int(r)}
	}
	return appendInt(dst, v, r)
}

// WriteInt writes the representation of v in the given radix to w
func WriteInt(w io.Writer, v int64, r Radix) (int, error) {
	if !r.Valid() {
		return 0, &RadixError{Radix: int(r)}
	}
	var buf [maxBinaryChars]byte
	b, err := appendInt(buf[:0], v, r)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// FormatBase returns the representation of v in any base between 2 and 36.
// Only base 16 carries a prefix.
func FormatBase(v int64, base int) (string, error) {
	if base < 2 || base > MaxBase {
		return "", &RadixError{Radix: base}
	}
	var buf [maxBinaryChars]byte
	b, err := appendInt(buf[:0], v, Radix(base))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// appendInt expects r to be within [2, MaxBase]
func appendInt(dst []byte, v int64, r Radix) ([]byte, error) {
	if v == 0 {
		dst = append(dst, r.Prefix()...)
		return append(dst, '0'), nil
	}

	negative := v < 0
	u := magnitude(v)

	if u < uint64(r) {
		// Single digit, no buffer sizing required
		d, err := DigitChar(int(u))
		if err != nil {
			return dst, err
		}
		if negative {
			dst = append(dst, '-')
		}
		dst = append(dst, r.Prefix()...)
		return append(dst, d), nil
	}

	var buf [maxBinaryChars]byte
	b, err := convert(buf[:maxCharsBase(int(r))], u, negative, r)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}

// convert writes the complete representation of u back-to-front
// into buf and returns the written tail of buf
func convert(buf []byte, u uint64, negative bool, r Radix) ([]byte, error) {
	var (
		i   int
		err error
	)
	if r == Decimal {
		i, err = writeDecimal(buf, u)
	} else {
		i, err = writePositional(buf, u, r)
	}
	if err != nil {
		return nil, err
	}

	p := r.Prefix()
	if i < len(p) {
		return nil, ErrBufferOverflow
	}
	i -= len(p)
	copy(buf[i:], p)

	if negative {
		if i < 1 {
			return nil, ErrBufferOverflow
		}
		i--
		buf[i] = '-'
	}
	return buf[i:], nil
}

// magnitude returns |v| computed in unsigned arithmetic,
// which is well defined for math.MinInt64
func magnitude(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}
