package values

import (
	"errors"
	"strings"
	"testing"

	"djson.dev/codec"
	"djson.dev/cursor"
)

func TestLiterals(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind Kind
	}{
		{"null", KindNull},
		{"true", KindBool},
		{"false", KindBool},
	} {
		c := cursor.New([]byte(tc.in))
		v, err := Read(c)
		if err != nil {
			t.Fatalf("%s: %s", tc.in, err)
		}
		if v.Kind() != tc.kind {
			t.Fatalf("%s: got kind %s", tc.in, v.Kind())
		}
		if !c.AtEnd() {
			t.Fatalf("%s: leftover '%s'", tc.in, c.Rem())
		}
	}
	v, err := Read(cursor.New([]byte("true")))
	if err != nil {
		t.Fatal(err)
	}
	if !v.(*Bool).V {
		t.Fatal("true decoded as false")
	}
	if v, err = Read(cursor.New([]byte("false"))); err != nil {
		t.Fatal(err)
	}
	if v.(*Bool).V {
		t.Fatal("false decoded as true")
	}
}

func TestNumbers(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int64
	}{
		{"123456", 123456},
		{"0", 0},
		{"-42", -42},
		{"+7", 7},
		{"  9 ", 9},
	} {
		c := cursor.New([]byte(tc.in))
		v, err := Read(c)
		if err != nil {
			t.Fatalf("%s: %s", tc.in, err)
		}
		n, ok := v.(*Number)
		if !ok {
			t.Fatalf("%s: got kind %s", tc.in, v.Kind())
		}
		if n.V != tc.want {
			t.Fatalf("%s: got %d", tc.in, n.V)
		}
	}
}

func TestArrayElements(t *testing.T) {
	c := cursor.New([]byte(`[1, 2, 3, null, "aaa", true, false]`))
	v, err := Read(c)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := v.(*Array)
	if !ok {
		t.Fatalf("got kind %s", v.Kind())
	}
	kinds := []Kind{
		KindNumber, KindNumber, KindNumber, KindNull,
		KindString, KindBool, KindBool,
	}
	if len(a.V) != len(kinds) {
		t.Fatalf("got %d elements", len(a.V))
	}
	for i, k := range kinds {
		if a.V[i].Kind() != k {
			t.Fatalf("element %d: got kind %s, want %s", i, a.V[i].Kind(), k)
		}
	}
	if a.V[3].(*Null) == nil {
		t.Fatal("null element lost")
	}
	if string(a.V[4].(*String).V) != "aaa" {
		t.Fatalf("string element: '%s'", a.V[4].(*String).V)
	}
}

func TestObjectFields(t *testing.T) {
	c := cursor.New([]byte(`{"key":"value","key2":1}`))
	v, err := Read(c)
	if err != nil {
		t.Fatal(err)
	}
	o := v.(*Object)
	kv, ok := o.Get("key")
	if !ok || string(kv.(*String).V) != "value" {
		t.Fatalf("key: %v", kv)
	}
	if kv, ok = o.Get("key2"); !ok || kv.(*Number).V != 1 {
		t.Fatalf("key2: %v", kv)
	}
	if _, ok = o.Get("nope"); ok {
		t.Fatal("found a key that was never set")
	}
	// iteration order is insertion order
	if string(o.V[0].Key) != "key" || string(o.V[1].Key) != "key2" {
		t.Fatalf("order: %s, %s", o.V[0].Key, o.V[1].Key)
	}
}

func TestDuplicateKeys(t *testing.T) {
	v, err := Read(cursor.New([]byte(`{"a":1,"a":2,"b":3}`)))
	if err != nil {
		t.Fatal(err)
	}
	o := v.(*Object)
	if len(o.V) != 2 {
		t.Fatalf("got %d fields", len(o.V))
	}
	// last value wins but the key keeps its original position
	if a, _ := o.Get("a"); a.(*Number).V != 2 {
		t.Fatalf("a: %v", a)
	}
	if string(o.V[0].Key) != "a" {
		t.Fatalf("order: %s first", o.V[0].Key)
	}
}

func TestWhitespaceTolerance(t *testing.T) {
	in := "\t{ \"a\" : [ 1 ,\r\n 2 ] , \"b\" : null }\n"
	c := cursor.New([]byte(in))
	v, err := Read(c)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := v.(*Object).Get("a")
	if len(a.(*Array).V) != 2 {
		t.Fatalf("got %d elements", len(a.(*Array).V))
	}
}

func TestEarlyQuoteTermination(t *testing.T) {
	// no escape handling: a backslash-quote ends the string early
	c := cursor.New([]byte(`"ab\"cd"`))
	v, err := Read(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(v.(*String).V) != `ab\` {
		t.Fatalf("got '%s'", v.(*String).V)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind codec.ErrKind
	}{
		{"", codec.UnexpectedEnd},
		{"   ", codec.UnexpectedEnd},
		{`"abc`, codec.UnexpectedEnd},
		{"[1,", codec.UnexpectedEnd},
		{`{"a":1`, codec.UnexpectedEnd},
		{"[", codec.UnexpectedEnd},
		{"nul", codec.InvalidLiteral},
		{"nulx", codec.InvalidLiteral},
		{"truu", codec.InvalidLiteral},
		{"falsy", codec.InvalidLiteral},
		{"12x4", codec.InvalidNumber},
		{"1.5", codec.InvalidNumber},
		{"-", codec.InvalidNumber},
		{"9223372036854775808", codec.InvalidNumber},
		{",", codec.UnexpectedToken},
		{`{"a"1}`, codec.UnexpectedToken},
		{`{1:2}`, codec.UnexpectedToken},
	} {
		_, err := Read(cursor.New([]byte(tc.in)))
		if err == nil {
			t.Fatalf("'%s': expected error", tc.in)
		}
		var pe *codec.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("'%s': not a ParseError: %s", tc.in, err)
		}
		if pe.Kind != tc.kind {
			t.Fatalf("'%s': got %s, want %s", tc.in, pe.Kind, tc.kind)
		}
	}
}

func TestNestingLimit(t *testing.T) {
	in := strings.Repeat("[", cursor.MaxDepth+10)
	_, err := Read(cursor.New([]byte(in)))
	var pe *codec.ParseError
	if !errors.As(err, &pe) || pe.Kind != codec.TooDeep {
		t.Fatalf("got %v", err)
	}
	// right at the limit the guard stays quiet
	in = strings.Repeat("[", cursor.MaxDepth) + strings.Repeat("]", cursor.MaxDepth)
	if _, err = Read(cursor.New([]byte(in))); err != nil {
		t.Fatal(err)
	}
}

func TestTrailingBytes(t *testing.T) {
	c := cursor.New([]byte("true garbage"))
	v, err := Read(c)
	if err != nil {
		t.Fatal(err)
	}
	if !v.(*Bool).V {
		t.Fatal("wrong value")
	}
	if string(c.Rem()) != " garbage" {
		t.Fatalf("rem '%s'", c.Rem())
	}
}

func TestEqual(t *testing.T) {
	a := &Array{V: []I{&Null{}, &Bool{true}, NewNumber(5), NewString("x")}}
	b := &Array{V: []I{&Null{}, &Bool{true}, NewNumber(5), NewString("x")}}
	if !Equal(a, b) {
		t.Fatal("equal arrays reported unequal")
	}
	b.V[2] = NewNumber(6)
	if Equal(a, b) {
		t.Fatal("unequal arrays reported equal")
	}
	o1, o2 := &Object{}, &Object{}
	o1.Set([]byte("a"), NewNumber(1))
	o1.Set([]byte("b"), NewNumber(2))
	o2.Set([]byte("b"), NewNumber(2))
	o2.Set([]byte("a"), NewNumber(1))
	// same fields, different insertion order: unequal by design
	if Equal(o1, o2) {
		t.Fatal("order-insensitive object equality")
	}
	if Equal(NewNumber(1), NewString("1")) {
		t.Fatal("cross-kind equality")
	}
}
