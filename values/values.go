// Package values is the dynamic value model of the codec: a closed set of
// six types, one per JSON kind, each knowing how to read and write its own
// textual form. Containers hold other values through the I interface, so an
// arbitrarily nested document becomes a tree of these types.
package values

import (
	"djson.dev/codec"
)

// Kind discriminates the six value types for callers that want to branch
// without a type switch.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = []string{
	"null",
	"bool",
	"number",
	"string",
	"array",
	"object",
}

func (k Kind) String() string { return kindNames[k] }

// I is the interface all six value types implement. A value returned from
// Read is always fully constructed; partially built containers never
// escape.
type I interface {
	codec.JSON
	Kind() Kind
}
