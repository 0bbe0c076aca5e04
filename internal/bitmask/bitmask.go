// Package bitmask provides flag operations on unsigned integer fields.
package bitmask

// Field is a set of flags
type Field interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Bit returns the flag of the n-th bit
func Bit[F Field](n uint) F { return F(1) << n }

// Set returns field with flag set
func Set[F Field](field, flag F) F { return field | flag }

// Unset returns field with flag cleared
func Unset[F Field](field, flag F) F { return field &^ flag }

// Toggle returns field with flag flipped
func Toggle[F Field](field, flag F) F { return field ^ flag }

// Has returns true if any bit of flag is set in field
func Has[F Field](field, flag F) bool { return field&flag != 0 }
