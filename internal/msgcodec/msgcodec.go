package msgcodec

import (
	"encoding/binary"
	"errors"
)

const (
	headerLen = 4
	valueLen  = 8
)

// MaxValues is the maximum number of values a message can carry
const MaxValues = 1<<32 - 1

// EncodeInt64s encodes the values into a binary message
// in the format: [num(4)][value(8)]...
// All numbers are encoded in little-endian format.
func EncodeInt64s(values ...int64) ([]byte, error) {
	if uint64(len(values)) > MaxValues {
		return nil, ErrTooManyValues
	}
	b := make([]byte, headerLen+len(values)*valueLen)
	binary.LittleEndian.PutUint32(b[:headerLen], uint32(len(values)))
	for i, v := range values {
		o := headerLen + i*valueLen
		binary.LittleEndian.PutUint64(b[o:o+valueLen], uint64(v))
	}
	return b, nil
}

// ScanInt64s scans values encoded in binary format
// calling onNum as soon as the number of values is known
// and calling onValue for every scanned value.
func ScanInt64s(
	b []byte,
	onNum func(int) error,
	onValue func(int64) error,
) error {
	if len(b) < headerLen {
		return ErrMalformedMessage
	}
	n := int(binary.LittleEndian.Uint32(b[:headerLen]))
	b = b[headerLen:]
	if len(b)%valueLen != 0 || len(b)/valueLen != n {
		return ErrMalformedMessage
	}
	if err := onNum(n); err != nil {
		return err
	}
	for ; len(b) > 0; b = b[valueLen:] {
		v := int64(binary.LittleEndian.Uint64(b[:valueLen]))
		if err := onValue(v); err != nil {
			return err
		}
	}
	return nil
}

var (
	ErrMalformedMessage = errors.New("malformed message")
	ErrTooManyValues    = errors.New("too many values")
)
