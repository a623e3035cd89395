package values

import (
	"djson.dev/codec"
	"djson.dev/cursor"
)

const T = "true"
const F = "false"

var Bools = map[bool][]byte{
	true:  []byte(T),
	false: []byte(F),
}

// Bool can be either `true` or `false` and only lower case. The zero value
// is false:
//
//	truth := &values.Bool{}
type Bool struct{ V bool }

func (b2 *Bool) Kind() Kind { return KindBool }

func (b2 *Bool) Marshal(dst []byte) (b []byte) {
	b = append(dst, Bools[b2.V]...)
	return
}

// Unmarshal consumes the fixed width literal, 4 bytes for true and 5 for
// false, and verifies every byte of it.
func (b2 *Bool) Unmarshal(c *cursor.T) (err error) {
	b, ok := c.Peek()
	if !ok {
		err = codec.End(c.Pos)
		return
	}
	switch b {
	case 't':
		if !c.Match(Bools[true]) {
			err = codec.BadLiteral(c.Pos)
			return
		}
		b2.V = true
	case 'f':
		if !c.Match(Bools[false]) {
			err = codec.BadLiteral(c.Pos)
			return
		}
		b2.V = false
	default:
		err = codec.Token(c.Pos)
	}
	return
}
