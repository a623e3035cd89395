// Package djson is a minimal JSON codec built around a dynamic value
// model: Decode turns text into a tree of values.I and Encode turns such a
// tree back into text. The grammar is integer-only and does no string
// escape processing; see the values package for the exact shape of each
// kind.
package djson

import (
	"djson.dev/cursor"
	"djson.dev/values"
)

// Decode parses one JSON value from the front of b. Trailing bytes after
// the value are not an error; callers that care can use values.Read with
// their own cursor and inspect what remains. Malformed input returns a
// *codec.ParseError carrying the offset of the failure.
func Decode(b []byte) (v values.I, err error) {
	return values.Read(cursor.New(b))
}

// Encode writes the textual form of v into a fresh buffer. It is total
// over the value model and cannot fail; values sharing no state may be
// encoded concurrently.
func Encode(v values.I) (b []byte) {
	return v.Marshal(nil)
}

// DecodeString is Decode for string callers.
func DecodeString(s string) (v values.I, err error) {
	return Decode([]byte(s))
}

// EncodeString is Encode for string callers.
func EncodeString(v values.I) string {
	return string(Encode(v))
}
