/*
File    : go-lox/lexer/span.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// Span represents a fragment of the source text as a half-open byte
// range [Lo, Hi). Every token and every AST node carries a span so that
// diagnostics can point back into the original source.
//
// Fields:
//   - Lo: Lower byte bound (inclusive)
//   - Hi: Higher byte bound (exclusive)
type Span struct {
	Lo int // Lower bound (inclusive)
	Hi int // Higher bound (exclusive)
}

// NewSpan creates a new Span from the given bounds.
// The bounds are normalized so that Lo never exceeds Hi.
func NewSpan(lo int, hi int) Span {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Span{Lo: lo, Hi: hi}
}

// To creates a new span encompassing both this span and the other one.
// It is the minimum-enclosing span of the two, used to build the span of
// a composite construct from the spans of its parts.
//
// Example:
//
//	NewSpan(0, 3).To(NewSpan(6, 9))  // => Span{0, 9}
func (s Span) To(other Span) Span {
	lo := s.Lo
	if other.Lo < lo {
		lo = other.Lo
	}
	hi := s.Hi
	if other.Hi > hi {
		hi = other.Hi
	}
	return NewSpan(lo, hi)
}

// Text returns the fragment of src covered by this span.
// Callers must ensure the span lies within the source bounds.
func (s Span) Text(src string) string {
	return src[s.Lo:s.Hi]
}

// String renders the span in a compact human-readable form.
// Single-byte (or empty) spans print as the lower bound alone.
func (s Span) String() string {
	if s.Hi-s.Lo <= 1 {
		return fmt.Sprintf("%d", s.Lo)
	}
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}
