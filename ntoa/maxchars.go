package ntoa

import "math/bits"

// MaxBase is the largest base supported by FormatBase
const MaxBase = 36

// magnitudeBits is the bit width of the largest magnitude
// of a signed 64-bit integer, |math.MinInt64| = 1 << 63
const magnitudeBits = 64

const (
	maxBinaryChars  = 1 + 64
	maxDecimalChars = 1 + 19
)

// charsTable holds the upper bound of characters required
// for any int64 value, indexed by base
var charsTable = func() (t [MaxBase + 1]int) {
	for b := 2; b <= MaxBase; b++ {
		t[b] = 1 /* sign */ + digitsFor(b) + len(Radix(b).Prefix())
	}
	return
}()

// digitsFor returns the number of digits required to represent
// the largest int64 magnitude in the given base
func digitsFor(base int) int {
	if base&(base-1) == 0 {
		// ceil(bit width / log2(base))
		shift := bits.TrailingZeros(uint(base))
		return (magnitudeBits + shift - 1) / shift
	}
	n := 0
	for u := uint64(1) << (magnitudeBits - 1); u > 0; u /= uint64(base) {
		n++
	}
	return n
}

// MaxChars returns the number of characters sufficient to hold
// the representation of any int64 value in the given radix
// including the minus sign and prefix
func MaxChars(r Radix) (int, error) {
	if !r.Valid() {
		return 0, &RadixError{Radix: int(r)}
	}
	return charsTable[r], nil
}

// MaxCharsBase is MaxChars for any base between 2 and 36
func MaxCharsBase(base int) (int, error) {
	if base < 2 || base > MaxBase {
		return 0, &RadixError{Radix: base}
	}
	return charsTable[base], nil
}

func maxCharsBase(base int) int { return charsTable[base] }
