package ntoa

// pairs holds the zero-padded decimal renderings of 0-99
// concatenated, "00" at [0:2] through "99" at [198:200].
// It's built once during package initialization and never written to again.
var pairs = func() (t [200]byte) {
	for i := 0; i < 100; i++ {
		t[i*2] = digits[i/10]
		t[i*2+1] = digits[i%10]
	}
	return
}()

// DigitPair returns the zero-padded two-digit decimal rendering of i
func DigitPair(i int) (string, error) {
	if i < 0 || i > 99 {
		return "", &DigitError{Digit: i}
	}
	return string(pairs[i*2 : i*2+2]), nil
}

// writeDecimal writes the decimal digits of u back-to-front
// into buf returning the index of the first written digit.
// Two digits are converted per division.
func writeDecimal(buf []byte, u uint64) (int, error) {
	i := len(buf)
	for u >= 100 {
		p := (u % 100) * 2
		u /= 100
		if i < 2 {
			return 0, ErrBufferOverflow
		}
		i -= 2
		buf[i] = pairs[p]
		buf[i+1] = pairs[p+1]
	}
	if u >= 10 {
		if i < 2 {
			return 0, ErrBufferOverflow
		}
		p := u * 2
		i -= 2
		buf[i] = pairs[p]
		buf[i+1] = pairs[p+1]
		return i, nil
	}
	if i < 1 {
		return 0, ErrBufferOverflow
	}
	d, err := DigitChar(int(u))
	if err != nil {
		return 0, err
	}
	i--
	buf[i] = d
	return i, nil
}
