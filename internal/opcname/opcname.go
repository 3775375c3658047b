// Package opcname implements the OPC percent-encoding used to produce
// the ZIP entry name from a payload file's relative path (spec.md §4.4).
//
// Generalized from original_source/src/prototype/inc/Helpers.hpp's
// EncodeFileName: the C++ source walks a UTF-16 intermediate to cope
// with codepoints above the BMP, which Go's native UTF-8 string
// iteration makes unnecessary — ranging over a string already yields
// full Unicode scalar values one at a time.
package opcname

import (
	"strings"
	"unicode/utf8"
)

// reserved holds the literal percent-escape for every ASCII codepoint
// below 0x7F that OPC requires to be escaped (spec.md §6, "OPC reserved
// character set"). An empty string means "not reserved, pass through".
var reserved = buildReservedTable()

func buildReservedTable() [0x7F]string {
	var t [0x7F]string
	codepoints := []byte{
		0x20, 0x21, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2B,
		0x2C, 0x3B, 0x3D, 0x40, 0x5B, 0x5D, 0x7B, 0x7D,
	}
	const hex = "0123456789ABCDEF"
	for _, c := range codepoints {
		t[c] = string([]byte{'%', hex[c>>4], hex[c&0xF]})
	}
	return t
}

// Encode returns the OPC-encoded form of name: backslashes become
// forward slashes, the reserved ASCII codepoints are percent-escaped,
// and every byte of the UTF-8 encoding of codepoints ≥ 0x80 is
// percent-escaped individually.
//
// On any decoding anomaly (invalid UTF-8), Encode returns "" so the
// caller can treat it as a fatal pack error, matching the original
// prototype's "return empty string on failure" contract.
func Encode(name string) string {
	if name == "" || !utf8.ValidString(name) {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '\\':
			b.WriteByte('/')
		case r < 0x7F && reserved[r] != "":
			b.WriteString(reserved[r])
		case r < 0x80:
			b.WriteRune(r)
		default:
			percentEscapeUTF8(&b, r)
		}
	}
	return b.String()
}

func percentEscapeUTF8(b *strings.Builder, r rune) {
	const hex = "0123456789ABCDEF"
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, c := range buf[:n] {
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0xF])
	}
}
