package values

import (
	"fmt"

	"djson.dev/cursor"
)

func ExampleBool_Marshal() {
	var b []byte
	bt := &Bool{true}
	b = bt.Marshal(b)
	fmt.Printf("%s\n", b)
	bt2 := &Bool{}
	c := cursor.New(b)
	if err := bt2.Unmarshal(c); err != nil || !c.AtEnd() {
		return
	}
	fmt.Printf("%v\n", bt2.V == true)
	b = b[:0]
	bf := &Bool{} // implicit initialized bool is false
	b = bf.Marshal(b)
	fmt.Printf("%s\n", b)
	// Output:
	// true
	// true
	// false
}

func ExampleNumber_Marshal() {
	var b []byte
	n := NewNumber(69420)
	b = n.Marshal(b)
	fmt.Printf("%s\n", b)
	n2 := &Number{}
	c := cursor.New(b)
	if err := n2.Unmarshal(c); err != nil || !c.AtEnd() {
		return
	}
	fmt.Printf("%v\n", n2.V == 69420)
	n.V = -69420
	b = n.Marshal(b[:0])
	fmt.Printf("%s\n", b)
	// Output:
	// 69420
	// true
	// -69420
}

func ExampleString_Marshal() {
	s := NewString("hello world")
	b := s.Marshal(nil)
	fmt.Printf("%s\n", b)
	s2 := &String{}
	c := cursor.New(b)
	if err := s2.Unmarshal(c); err != nil || !c.AtEnd() {
		return
	}
	fmt.Printf("%s\n", s2.V)
	// Output:
	// "hello world"
	// hello world
}

func ExampleArray_Marshal() {
	a := &Array{V: []I{NewNumber(1), NewNumber(2), NewNumber(3)}}
	b := a.Marshal(nil)
	// elements are separated by comma-space
	fmt.Printf("%s\n", b)
	// Output:
	// [1, 2, 3]
}

func ExampleObject_Marshal() {
	o := &Object{}
	o.Set([]byte("key"), NewString("value"))
	o.Set([]byte("key2"), NewNumber(1))
	b := o.Marshal(nil)
	// pairs are separated by a bare comma and there is no space after the
	// colon, unlike arrays
	fmt.Printf("%s\n", b)
	// Output:
	// {"key":"value","key2":1}
}

func ExampleRead() {
	c := cursor.New([]byte(`{"a":{"b":[1,2]}}`))
	v, err := Read(c)
	if err != nil {
		return
	}
	outer, _ := v.(*Object).Get("a")
	inner, _ := outer.(*Object).Get("b")
	fmt.Printf("%d\n", inner.(*Array).V[1].(*Number).V)
	// Output:
	// 2
}
