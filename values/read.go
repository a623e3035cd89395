package values

import (
	"djson.dev/chk"
	"djson.dev/codec"
	"djson.dev/cursor"
)

// Read classifies the next production by its leading byte and decodes it,
// returning the fully constructed value. It is the entry point for a whole
// document and is what Array and Object recurse through for their
// elements, so recursion depth tracks the nesting depth of the input (and
// is bounded by cursor.MaxDepth).
//
// Classification: `n` is null, `t` and `f` are the booleans, `"` opens a
// string, `[` an array, `{` an object, and anything else is taken to be a
// number. The grammar is permissive; anything it cannot make sense of
// comes back as a codec.ParseError rather than a guess.
func Read(c *cursor.T) (v I, err error) {
	c.Whitespace()
	b, ok := c.Peek()
	if !ok {
		err = codec.End(c.Pos)
		return
	}
	switch b {
	case 'n':
		n := &Null{}
		if err = n.Unmarshal(c); chk.E(err) {
			return
		}
		v = n
	case 't', 'f':
		b2 := &Bool{}
		if err = b2.Unmarshal(c); chk.E(err) {
			return
		}
		v = b2
	case '"':
		s := &String{}
		if err = s.Unmarshal(c); chk.E(err) {
			return
		}
		v = s
	case '[':
		a := &Array{}
		if err = a.Unmarshal(c); chk.E(err) {
			return
		}
		v = a
	case '{':
		o := &Object{}
		if err = o.Unmarshal(c); chk.E(err) {
			return
		}
		v = o
	default:
		n := &Number{}
		if err = n.Unmarshal(c); chk.E(err) {
			return
		}
		v = n
	}
	return
}
