// Package cursor is the scan state for a single decode pass: the input
// buffer, the current read offset, and the container nesting depth. One
// cursor is made per top-level decode and discarded after; it is never
// shared between goroutines, so parallel decodes on independent buffers
// need no synchronization.
package cursor

import (
	"bytes"
)

// MaxDepth is the container nesting limit. Decoding refuses to descend
// past it so that adversarially deep input cannot exhaust the call stack.
var MaxDepth = 1024

// T is the parser context. The cursor only advances; sub-productions are
// handled by the recursion of the decode functions, not by rewinding.
type T struct {
	Buf   []byte
	Pos   int
	Depth int
}

func New(b []byte) *T { return &T{Buf: b} }

// Peek returns the byte at the current position without consuming it. ok is
// false when the buffer is exhausted.
func (c *T) Peek() (b byte, ok bool) {
	if c.AtEnd() {
		return
	}
	return c.Buf[c.Pos], true
}

// Advance moves the position forward n bytes, clamping at the end of the
// buffer so the position can never exceed the length.
func (c *T) Advance(n int) {
	c.Pos += n
	if c.Pos > len(c.Buf) {
		c.Pos = len(c.Buf)
	}
}

// AtEnd reports whether the input is exhausted. Every exhaustion decision in
// the decoder funnels through here so the policy lives in one place and can
// be changed in one line.
func (c *T) AtEnd() bool { return c.Pos >= len(c.Buf) }

// Whitespace consumes spaces, tabs, newlines and carriage returns.
func (c *T) Whitespace() {
	for !c.AtEnd() {
		switch c.Buf[c.Pos] {
		case ' ', '\t', '\n', '\r':
			c.Pos++
		default:
			return
		}
	}
}

// Match consumes lit and returns true when the buffer at the current
// position begins with it, otherwise consumes nothing and returns false.
func (c *T) Match(lit []byte) bool {
	if len(c.Buf)-c.Pos < len(lit) {
		return false
	}
	if !bytes.Equal(c.Buf[c.Pos:c.Pos+len(lit)], lit) {
		return false
	}
	c.Pos += len(lit)
	return true
}

// Deeper records descent into a container, reporting false once MaxDepth
// would be exceeded. Pair with Shallower on the way out.
func (c *T) Deeper() bool {
	if c.Depth >= MaxDepth {
		return false
	}
	c.Depth++
	return true
}

func (c *T) Shallower() { c.Depth-- }

// Rem returns the unconsumed tail of the buffer.
func (c *T) Rem() []byte { return c.Buf[c.Pos:] }
