/*
File    : go-lox/parser/ident.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"sync/atomic"

	"github.com/akashmaji946/go-lox/lexer"
)

// LoxIdentID uniquely identifies one identifier occurrence in a parsed
// program. Ids are minted from a process-wide monotonic counter at parse
// time, so two textually identical identifiers in different positions
// get distinct ids. The resolver keys its lexical-distance table on
// these ids, which sidesteps any reliance on source-position equality.
type LoxIdentID uint64

// Process-wide id sequence. Atomic so several parsers or interpreters
// can coexist on different goroutines.
var identIDSeq atomic.Uint64

// LoxIdent represents a single identifier occurrence: a name, the byte
// span where it appears, and its unique occurrence id.
//
// LoxIdent is a value type. Copies preserve the id, which is what lets a
// method body cloned during `this`-binding keep hitting the distance
// table entries recorded against the original occurrence.
type LoxIdent struct {
	ID   LoxIdentID // Unique occurrence id, minted at parse time
	Name string     // The identifier text
	Span lexer.Span // Byte span of the occurrence
}

// NewLoxIdent creates a new identifier occurrence with a fresh id.
func NewLoxIdent(span lexer.Span, name string) LoxIdent {
	return LoxIdent{
		ID:   LoxIdentID(identIDSeq.Add(1)),
		Name: name,
		Span: span,
	}
}

// IdentFromToken converts an identifier-like token (a plain identifier,
// `this`, or `super`) into a LoxIdent with a fresh id.
func IdentFromToken(token lexer.Token) LoxIdent {
	return NewLoxIdent(token.Span, token.Literal)
}

// String returns the identifier's name.
func (ident LoxIdent) String() string {
	return ident.Name
}
