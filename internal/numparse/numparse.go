// Package numparse reads integers in the notation produced by package ntoa.
package numparse

import (
	"errors"

	"github.com/romshark/ntoa/ntoa"
)

var (
	ErrMalformed = errors.New("malformed integer")
	ErrOverflow  = errors.New("integer overflows int64")
)

// notDigit marks bytes that aren't digits in any supported radix
const notDigit = 0xFF

// lookupTable maps ASCII bytes to digit values
var lookupTable = func() (t [256]byte) {
	for i := range t {
		t[i] = notDigit
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = byte(c-'a') + 10
		t[c-'a'+'A'] = byte(c-'a') + 10
	}
	return
}()

// ParseInt parses a signed integer. The radix is selected by the prefix:
// "0x" for hexadecimal, "0b" for binary and decimal otherwise.
// A minus sign must precede the prefix.
func ParseInt(b []byte) (v int64, radix ntoa.Radix, err error) {
	negative := false
	if len(b) > 0 && b[0] == '-' {
		negative = true
		b = b[1:]
	}

	radix = ntoa.Decimal
	if len(b) > 1 && b[0] == '0' {
		switch b[1] {
		case 'x', 'X':
			radix, b = ntoa.Hexadecimal, b[2:]
		case 'b', 'B':
			radix, b = ntoa.Binary, b[2:]
		}
	}

	u, err := ParseMagnitude(b, radix, negative)
	if err != nil {
		return 0, radix, err
	}
	if negative {
		return -int64(u-1) - 1, radix, nil
	}
	return int64(u), radix, nil
}

// ParseMagnitude parses unprefixed digits in the given radix.
// The result never exceeds |math.MinInt64| if negative is true,
// or math.MaxInt64 otherwise.
func ParseMagnitude(b []byte, radix ntoa.Radix, negative bool) (uint64, error) {
	if !radix.Valid() {
		return 0, &ntoa.RadixError{Radix: int(radix)}
	}
	if len(b) < 1 {
		return 0, ErrMalformed
	}

	limit := uint64(1)<<63 - 1
	if negative {
		limit++
	}

	base := uint64(radix)
	var u uint64
	for _, c := range b {
		d := uint64(lookupTable[c])
		if d >= base {
			return 0, ErrMalformed
		}
		if u > (limit-d)/base {
			return 0, ErrOverflow
		}
		u = u*base + d
	}
	return u, nil
}

// ParseRadix parses a radix given either by its base
// ("2", "10", "16") or by its name ("bin", "dec", "hex").
func ParseRadix(b []byte) (ntoa.Radix, error) {
	switch string(b) {
	case "2", "bin", "binary":
		return ntoa.Binary, nil
	case "10", "dec", "decimal":
		return ntoa.Decimal, nil
	case "16", "hex", "hexadecimal":
		return ntoa.Hexadecimal, nil
	}
	if v, _, err := ParseInt(b); err == nil {
		return 0, &ntoa.RadixError{Radix: int(v)}
	}
	return 0, ntoa.ErrInvalidRadix
}
