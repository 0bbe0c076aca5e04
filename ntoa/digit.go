package ntoa

import "fmt"

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// DigitError is returned by DigitChar for values outside [0, 35]
type DigitError struct {
	Digit int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("digit out of range: %d", e.Digit)
}

func (e *DigitError) Unwrap() error { return ErrOutOfRange }

// DigitChar maps n to its ASCII digit, '0'-'9' followed by 'a'-'z'
func DigitChar(n int) (byte, error) {
	if n < 0 || n >= len(digits) {
		return 0, &DigitError{Digit: n}
	}
	return digits[n], nil
}
