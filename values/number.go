package values

import (
	"djson.dev/codec"
	"djson.dev/cursor"
	"djson.dev/ints"
)

// Number is an integer. There is no floating point in this codec: a `.`
// inside a number token is an InvalidNumber error, never a silent
// truncation of the fraction.
//
// There is a generic NewNumber that converts any machine integer type to
// the internal int64, saving the caller a cast.
type Number struct{ V int64 }

func NewNumber[V int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32](n V) *Number {
	return &Number{int64(n)}
}

func (n *Number) Kind() Kind { return KindNumber }

func (n *Number) Marshal(dst []byte) (b []byte) {
	b = (&ints.T{N: n.V}).Marshal(dst)
	return
}

// Unmarshal scans the number token, everything up to the next delimiter
// (whitespace, comma, closing bracket or brace) or the end of the buffer,
// then parses it as base 10 with an optional leading sign.
func (n *Number) Unmarshal(c *cursor.T) (err error) {
	start := c.Pos
	for {
		b, ok := c.Peek()
		if !ok {
			break
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' ||
			b == ',' || b == ']' || b == '}' {
			break
		}
		c.Advance(1)
	}
	tok := c.Buf[start:c.Pos]
	if len(tok) == 0 {
		err = codec.Token(start)
		return
	}
	i := &ints.T{}
	var rem []byte
	if rem, err = i.Unmarshal(tok); err != nil || len(rem) > 0 {
		// non-digit bytes inside the token, an overflow, or a bare sign
		err = codec.BadNumber(start)
		return
	}
	n.V = i.N
	return
}
