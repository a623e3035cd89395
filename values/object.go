package values

import (
	"bytes"

	"djson.dev/chk"
	"djson.dev/codec"
	"djson.dev/cursor"
)

// A KeyValue is a field in an Object.
type KeyValue struct {
	Key   []byte
	Value I
}

// An Object is an insertion ordered list of KeyValue with unique keys.
// Encoding iterates in insertion order, so a decoded object round trips
// with its fields in the same order they appeared in the input.
type Object struct{ V []KeyValue }

func (o *Object) Kind() Kind { return KindObject }

// Get returns the value stored under key, if any.
func (o *Object) Get(key string) (v I, ok bool) {
	for i := range o.V {
		if string(o.V[i].Key) == key {
			return o.V[i].Value, true
		}
	}
	return
}

// Set stores v under key. A key already present keeps its position and has
// its value replaced, which is what keeps keys unique.
func (o *Object) Set(key []byte, v I) {
	for i := range o.V {
		if bytes.Equal(o.V[i].Key, key) {
			o.V[i].Value = v
			return
		}
	}
	o.V = append(o.V, KeyValue{Key: key, Value: v})
}

// Marshal writes `"key":value` pairs separated by bare commas, with no
// space after the colon.
func (o *Object) Marshal(dst []byte) (b []byte) {
	b = append(dst, '{')
	last := len(o.V) - 1
	for i := range o.V {
		b = (&String{o.V[i].Key}).Marshal(b)
		b = append(b, ':')
		b = o.V[i].Value.Marshal(b)
		if i != last {
			b = append(b, ',')
		}
	}
	b = append(b, '}')
	return
}

func (o *Object) Unmarshal(c *cursor.T) (err error) {
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
	if b != '{' {
		err = codec.Token(c.Pos)
		return
	}
	c.Advance(1)
	c.Whitespace()
	for {
		if b, ok = c.Peek(); !ok {
			// ran out before the closing brace
			err = codec.End(c.Pos)
			return
		}
		if b == '}' {
			break
		}
		key := &String{}
		if err = key.Unmarshal(c); chk.E(err) {
			return
		}
		c.Whitespace()
		if b, ok = c.Peek(); !ok {
			err = codec.End(c.Pos)
			return
		}
		if b != ':' {
			err = codec.Token(c.Pos)
			return
		}
		c.Advance(1)
		c.Whitespace()
		var v I
		if v, err = Read(c); chk.E(err) {
			return
		}
		o.Set(key.V, v)
		c.Whitespace()
		if b, ok = c.Peek(); ok && b == ',' {
			c.Advance(1)
			c.Whitespace()
		}
	}
	c.Advance(1)
	return
}
