package codec

import (
	"fmt"
)

// ErrKind classifies a decode failure.
type ErrKind int

const (
	// UnexpectedEnd is the input running out mid-production.
	UnexpectedEnd ErrKind = iota
	// UnexpectedToken is a byte that no production at that position accepts.
	UnexpectedToken
	// InvalidNumber is a number token that does not parse as a signed
	// decimal integer.
	InvalidNumber
	// InvalidLiteral is a null/true/false literal whose remaining bytes do
	// not match.
	InvalidLiteral
	// TooDeep is container nesting past cursor.MaxDepth.
	TooDeep
)

var kindNames = []string{
	"unexpected end of input",
	"unexpected token",
	"invalid number",
	"invalid literal",
	"nesting too deep",
}

func (k ErrKind) String() string { return kindNames[k] }

// ParseError reports where in the input a decode failed and why. Malformed
// input always surfaces as one of these, never as a panic or an out of
// range read.
type ParseError struct {
	Kind   ErrKind
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

func End(off int) error           { return &ParseError{UnexpectedEnd, off} }
func Token(off int) error         { return &ParseError{UnexpectedToken, off} }
func BadNumber(off int) error     { return &ParseError{InvalidNumber, off} }
func BadLiteral(off int) error    { return &ParseError{InvalidLiteral, off} }
func DepthExceeded(off int) error { return &ParseError{TooDeep, off} }
