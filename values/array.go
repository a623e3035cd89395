package values

import (
	"djson.dev/chk"
	"djson.dev/codec"
	"djson.dev/cursor"
)

// An Array is an ordered list of values. Parse order is preserved.
type Array struct{ V []I }

func (a *Array) Kind() Kind { return KindArray }

// Marshal writes the elements separated by comma-space. Note the asymmetry
// with Object, which separates pairs with a bare comma.
func (a *Array) Marshal(dst []byte) (b []byte) {
	b = append(dst, '[')
	last := len(a.V) - 1
	for i, v := range a.V {
		b = v.Marshal(b)
		if i != last {
			b = append(b, ',', ' ')
		}
	}
	b = append(b, ']')
	return
}

func (a *Array) Unmarshal(c *cursor.T) (err error) {
	if !c.Deeper() {
		err = codec.DepthExceeded(c.Pos)
		return
	}
	defer c.Shallower()
	b, ok := c.Peek()
	if !ok {
		err = codec.End(c.Pos)
		return
	}
	if b != '[' {
		err = codec.Token(c.Pos)
		return
	}
	c.Advance(1)
	c.Whitespace()
	for {
		if b, ok = c.Peek(); !ok {
			// ran out before the closing bracket
			err = codec.End(c.Pos)
			return
		}
		if b == ']' {
			break
		}
		var v I
		if v, err = Read(c); chk.E(err) {
			return
		}
		a.V = append(a.V, v)
		c.Whitespace()
		if b, ok = c.Peek(); ok && b == ',' {
			c.Advance(1)
			c.Whitespace()
		}
	}
	c.Advance(1)
	return
}
