package logger

import "github.com/romshark/ntoa/ntoa"

type fieldKind uint8

const (
	fieldInt fieldKind = iota
	fieldString
)

// Field is a key-value pair appended to a log line
type Field struct {
	Key   string
	kind  fieldKind
	radix ntoa.Radix
	i     int64
	s     string
}

// Int returns a decimal integer field
func Int(key string, v int64) Field {
	return Field{Key: key, kind: fieldInt, radix: ntoa.Decimal, i: v}
}

// Hex returns a hexadecimal integer field
func Hex(key string, v int64) Field {
	return Field{Key: key, kind: fieldInt, radix: ntoa.Hexadecimal, i: v}
}

// Bin returns a binary integer field
func Bin(key string, v int64) Field {
	return Field{Key: key, kind: fieldInt, radix: ntoa.Binary, i: v}
}

// Str returns a string field
func Str(key, v string) Field {
	return Field{Key: key, kind: fieldString, s: v}
}
