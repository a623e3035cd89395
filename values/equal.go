package values

import (
	"bytes"
)

// Equal reports structural equality of two values. Objects compare
// order-sensitively: insertion order is part of the model because encoding
// iterates in it.
func Equal(a, b I) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Null:
		return true
	case *Bool:
		return av.V == b.(*Bool).V
	case *Number:
		return av.V == b.(*Number).V
	case *String:
		return bytes.Equal(av.V, b.(*String).V)
	case *Array:
		bv := b.(*Array)
		if len(av.V) != len(bv.V) {
			return false
		}
		for i := range av.V {
			if !Equal(av.V[i], bv.V[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.V) != len(bv.V) {
			return false
		}
		for i := range av.V {
			if !bytes.Equal(av.V[i].Key, bv.V[i].Key) {
				return false
			}
			if !Equal(av.V[i].Value, bv.V[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
