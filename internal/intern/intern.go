// Package intern provides canonical strings for single bytes so the parser
// can name a short flag in an error without allocating.
package intern

import "unsafe"

// byteStrings holds one single-byte string per possible byte value.
// All entries share one backing array.
var byteStrings [256]string

var byteBacking [256]byte

//nolint:gochecknoinits // the lookup table is built once at startup
func init() {
	for i := range byteBacking {
		byteBacking[i] = byte(i)
		byteStrings[i] = unsafe.String(&byteBacking[i], 1)
	}
}

// Byte returns the one-byte string for b. Unlike string(rune(b)), bytes
// above 0x7f are not re-encoded as UTF-8.
func Byte(b byte) string {
	return byteStrings[b]
}
