// Package ints is an encoder for signed decimal numbers in ASCII format. It
// works directly on byte slices with no intermediate string, which keeps
// number handling allocation free when appending to an existing buffer.
package ints

import (
	"io"
	"math"

	"djson.dev/errorf"
)

const zero = '0'
const nine = '9'

// T is a signed integer that knows how to read and write itself as decimal
// ASCII.
type T struct {
	N int64
}

func New[V int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32](n V) *T {
	return &T{int64(n)}
}

func (n *T) Int64() int64 { return n.N }
func (n *T) Int() int     { return int(n.N) }

// Marshal appends the decimal form of the number, with a leading `-` when
// negative. No implicit `+` is added for positive values.
func (n *T) Marshal(dst []byte) (b []byte) {
	b = dst
	v := n.N
	if v == 0 {
		b = append(b, zero)
		return
	}
	// write magnitude digits into a scratch buffer backwards, as uint64 so
	// math.MinInt64 does not overflow on negation
	u := uint64(v)
	if v < 0 {
		b = append(b, '-')
		u = -u
	}
	var scratch [20]byte
	i := len(scratch)
	for u > 0 {
		i--
		scratch[i] = byte(u%10) + zero
		u /= 10
	}
	b = append(b, scratch[i:]...)
	return
}

// Unmarshal reads a decimal integer with an optional leading `-` or `+`
// sign from the start of b, returning whatever follows the digits. Values
// outside the int64 range are an error rather than a silent wrap.
func (n *T) Unmarshal(b []byte) (rem []byte, err error) {
	rem = b
	if len(rem) == 0 {
		err = io.EOF
		return
	}
	var neg bool
	if rem[0] == '-' {
		neg = true
		rem = rem[1:]
	} else if rem[0] == '+' {
		rem = rem[1:]
	}
	var sLen int
	for ; sLen < len(rem) && rem[sLen] >= zero && rem[sLen] <= nine; sLen++ {
	}
	if sLen == 0 {
		err = errorf.E("zero length number")
		return
	}
	if sLen > 19 {
		err = errorf.E("too many digits for int64: %d", sLen)
		return
	}
	var u uint64
	for _, ch := range rem[:sLen] {
		u = u*10 + uint64(ch-zero)
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if u > limit {
		err = errorf.E("number out of int64 range: %s", rem[:sLen])
		return
	}
	rem = rem[sLen:]
	if neg {
		n.N = -int64(u)
	} else {
		n.N = int64(u)
	}
	return
}
