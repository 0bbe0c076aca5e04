package ntoa

// FormatGeneral formats v bypassing the single-digit fast path
func FormatGeneral(v int64, r Radix) (string, error) {
	return FormatGeneralBase(v, int(r))
}

// FormatGeneralBase is FormatGeneral for any base between 2 and 36
func FormatGeneralBase(v int64, base int) (string, error) {
	r := Radix(base)
	if v == 0 {
		return r.Prefix() + "0", nil
	}
	var buf [maxBinaryChars]byte
	b, err := convert(buf[:maxCharsBase(int(r))], magnitude(v), v < 0, r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteDecimal exposes the decimal converter for buffer bound tests
func WriteDecimal(buf []byte, u uint64) (int, error) { return writeDecimal(buf, u) }

// WritePositional exposes the positional converter for buffer bound tests
func WritePositional(buf []byte, u uint64, r Radix) (int, error) {
	return writePositional(buf, u, r)
}
