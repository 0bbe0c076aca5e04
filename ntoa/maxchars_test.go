package ntoa_test

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/romshark/ntoa/ntoa"

	"github.com/stretchr/testify/require"
)

func TestMaxChars(t *testing.T) {
	for _, tt := range []struct {
		radix ntoa.Radix
		out   int
	}{
		// sign + 64 digits of |math.MinInt64|
		{ntoa.Binary, 65},
		// sign + 19 digits
		{ntoa.Decimal, 20},
		// sign + "0x" + 16 digits
		{ntoa.Hexadecimal, 19},
	} {
		t.Run(tt.radix.String(), func(t *testing.T) {
			a, err := ntoa.MaxChars(tt.radix)
			require.NoError(t, err)
			require.Equal(t, tt.out, a)
		})
	}
}

// TestMaxCharsTight verifies that the bound is reached
// by the extreme values of every base
func TestMaxCharsTight(t *testing.T) {
	for base := 2; base <= ntoa.MaxBase; base++ {
		t.Run(fmt.Sprintf("base_%d", base), func(t *testing.T) {
			limit, err := ntoa.MaxCharsBase(base)
			require.NoError(t, err)

			s, err := ntoa.FormatBase(math.MinInt64, base)
			require.NoError(t, err)
			require.Equal(t, limit, len(s))

			// The digit count must match strconv
			digits := len(strconv.FormatInt(math.MinInt64, base)) - 1
			prefix := 0
			if base == 16 {
				prefix = 2
			}
			require.Equal(t, limit, 1+prefix+digits)
		})
	}
}

func TestMaxCharsInvalid(t *testing.T) {
	_, err := ntoa.MaxChars(7)
	require.True(t, errors.Is(err, ntoa.ErrInvalidRadix))

	_, err = ntoa.MaxCharsBase(1)
	require.True(t, errors.Is(err, ntoa.ErrInvalidRadix))

	_, err = ntoa.MaxCharsBase(37)
	require.True(t, errors.Is(err, ntoa.ErrInvalidRadix))
}

func TestConverterBufferOverflow(t *testing.T) {
	r := require.New(t)

	_, err := ntoa.WriteDecimal(make([]byte, 3), 1234)
	r.True(errors.Is(err, ntoa.ErrBufferOverflow))

	_, err = ntoa.WriteDecimal(make([]byte, 2), 123)
	r.True(errors.Is(err, ntoa.ErrBufferOverflow))

	_, err = ntoa.WriteDecimal(make([]byte, 1), 10)
	r.True(errors.Is(err, ntoa.ErrBufferOverflow))

	_, err = ntoa.WritePositional(make([]byte, 1), 0xff, ntoa.Hexadecimal)
	r.True(errors.Is(err, ntoa.ErrBufferOverflow))

	_, err = ntoa.WritePositional(make([]byte, 2), 10, 3)
	r.True(errors.Is(err, ntoa.ErrBufferOverflow))

	// Exactly sized buffers
	buf := make([]byte, 4)
	i, err := ntoa.WriteDecimal(buf, 1234)
	r.NoError(err)
	r.Equal(0, i)
	r.Equal("1234", string(buf))

	buf = make([]byte, 3)
	i, err = ntoa.WriteDecimal(buf, 123)
	r.NoError(err)
	r.Equal(0, i)
	r.Equal("123", string(buf))

	buf = make([]byte, 8)
	i, err = ntoa.WritePositional(buf, 0xff, ntoa.Binary)
	r.NoError(err)
	r.Equal(0, i)
	r.Equal("11111111", string(buf))
}
