// Package bin composes little-endian binary messages for tests.
package bin

import (
	"encoding/binary"
	"fmt"
)

// Compose concatenates the little-endian encodings of parts.
// Supported types are byte, []byte, uint16, uint32, int64 and []int64.
// Panics on any other type.
func Compose(parts ...interface{}) []byte {
	var b []byte
	for _, p := range parts {
		switch v := p.(type) {
		case byte:
			b = append(b, v)
		case []byte:
			b = append(b, v...)
		case uint16:
			b = binary.LittleEndian.AppendUint16(b, v)
		case uint32:
			b = binary.LittleEndian.AppendUint32(b, v)
		case int64:
			b = binary.LittleEndian.AppendUint64(b, uint64(v))
		case []int64:
			for _, x := range v {
				b = binary.LittleEndian.AppendUint64(b, uint64(x))
			}
		default:
			panic(fmt.Errorf("unsupported part type: %T (%#v)", p, p))
		}
	}
	return b
}
