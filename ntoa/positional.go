package ntoa

import "math/bits"

// writePositional writes the digits of u in base r back-to-front
// into buf returning the index of the first written digit.
// Power-of-two radices are converted by shift and mask.
func writePositional(buf []byte, u uint64, r Radix) (int, error) {
	i := len(buf)
	base := uint64(r)

	if base&(base-1) == 0 {
		shift := uint(bits.TrailingZeros64(base))
		mask := base - 1
		for {
			if i < 1 {
				return 0, ErrBufferOverflow
			}
			d, err := DigitChar(int(u & mask))
			if err != nil {
				return 0, err
			}
			i--
			buf[i] = d
			if u >>= shift; u == 0 {
				return i, nil
			}
		}
	}

	for {
		if i < 1 {
			return 0, ErrBufferOverflow
		}
		q := u / base
		d, err := DigitChar(int(u - q*base))
		if err != nil {
			return 0, err
		}
		i--
		buf[i] = d
		if u = q; u == 0 {
			return i, nil
		}
	}
}
