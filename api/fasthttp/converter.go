package fasthttp

import "github.com/romshark/ntoa/ntoa"

// Converter converts integers to text
type Converter interface {
	// AppendInt appends the representation of v in radix r to dst
	AppendInt(dst []byte, v int64, r ntoa.Radix) ([]byte, error)

	// MaxChars returns the maximum length of any value in radix r
	MaxChars(r ntoa.Radix) (int, error)

	// DigitChar maps n to its ASCII digit
	DigitChar(n int) (byte, error)
}

// Ntoa is the Converter backed by package ntoa
type Ntoa struct{}

// Make sure Ntoa implements Converter
var _ Converter = Ntoa{}

// AppendInt implements Converter.AppendInt
func (Ntoa) AppendInt(dst []byte, v int64, r ntoa.Radix) ([]byte, error) {
	return ntoa.AppendInt(dst, v, r)
}

// MaxChars implements Converter.MaxChars
func (Ntoa) MaxChars(r ntoa.Radix) (int, error) { return ntoa.MaxChars(r) }

// DigitChar implements Converter.DigitChar
func (Ntoa) DigitChar(n int) (byte, error) { return ntoa.DigitChar(n) }
