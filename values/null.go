package values

import (
	"djson.dev/codec"
	"djson.dev/cursor"
)

var nullLit = []byte("null")

// Null is the JSON null. It carries no payload; every *Null is equal to
// every other.
type Null struct{}

func (n *Null) Kind() Kind { return KindNull }

func (n *Null) Marshal(dst []byte) (b []byte) {
	b = append(dst, nullLit...)
	return
}

func (n *Null) Unmarshal(c *cursor.T) (err error) {
	if !c.Match(nullLit) {
		err = codec.BadLiteral(c.Pos)
	}
	return
}
