package values

import (
	"djson.dev/codec"
	"djson.dev/cursor"
)

// String is a regular string. There is no escape handling in either
// direction: decoding captures the raw bytes up to the next double quote,
// so a backslash-quote terminates the string early, and encoding emits the
// bytes verbatim between quotes. Round tripping a string that contains a
// `"` is therefore out of the model.
//
// There is a convenience NewString that accepts either a string or a byte
// slice.
type String struct{ V []byte }

func NewString[V string | []byte](s V) *String { return &String{[]byte(s)} }

func (s *String) Kind() Kind { return KindString }

func (s *String) Marshal(dst []byte) (b []byte) {
	b = append(dst, '"')
	b = append(b, s.V...)
	b = append(b, '"')
	return
}

func (s *String) Unmarshal(c *cursor.T) (err error) {
	b, ok := c.Peek()
	if !ok {
		err = codec.End(c.Pos)
		return
	}
	if b != '"' {
		err = codec.Token(c.Pos)
		return
	}
	c.Advance(1)
	start := c.Pos
	for {
		if b, ok = c.Peek(); !ok {
			// unterminated string
			err = codec.End(c.Pos)
			return
		}
		if b == '"' {
			break
		}
		c.Advance(1)
	}
	s.V = c.Buf[start:c.Pos]
	c.Advance(1)
	return
}
