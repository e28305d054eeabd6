/*
File    : go-lox/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
)

// RuntimeErrorKind discriminates the runtime error categories.
type RuntimeErrorKind string

const (
	// UnsupportedType is a type-rule violation: a bad operand type, a
	// non-callable callee, a wrong argument count, a property access on
	// a non-object
	UnsupportedType RuntimeErrorKind = "unsupported-type"
	// UndefinedVariable is a read or write of an unbound name
	UndefinedVariable RuntimeErrorKind = "undefined-variable"
	// UndefinedProperty is a missing instance field or method
	UndefinedProperty RuntimeErrorKind = "undefined-property"
	// ZeroDivision is a division whose right operand is zero
	ZeroDivision RuntimeErrorKind = "zero-division"
)

// RuntimeError represents a runtime failure. It aborts the current
// Interpret call and is returned to the host, which decides whether to
// display it or keep going.
//
// Fields:
//   - Kind: The error category
//   - Message: The description (UnsupportedType only)
//   - Ident: The offending identifier (UndefinedVariable/UndefinedProperty)
//   - Span: The primary span (UnsupportedType and ZeroDivision)
type RuntimeError struct {
	Kind    RuntimeErrorKind // Error category
	Message string           // Description (unsupported-type kind)
	Ident   parser.LoxIdent  // Offending identifier (undefined-* kinds)
	Span    lexer.Span       // Primary span (other kinds)
}

// Error renders the runtime error with its position, implementing the
// standard error interface.
func (e *RuntimeError) Error() string {
	switch e.Kind {
	case UndefinedVariable:
		return fmt.Sprintf("Undefined variable `%s`; at position %s", e.Ident.Name, e.Ident.Span)
	case UndefinedProperty:
		return fmt.Sprintf("Undefined property `%s`; at position %s", e.Ident.Name, e.Ident.Span)
	case ZeroDivision:
		return fmt.Sprintf("Can not divide by zero; at position %s", e.Span)
	default:
		return fmt.Sprintf("%s; at position %s", e.Message, e.Span)
	}
}

// PrimarySpan returns the span that caused the error.
func (e *RuntimeError) PrimarySpan() lexer.Span {
	switch e.Kind {
	case UndefinedVariable, UndefinedProperty:
		return e.Ident.Span
	default:
		return e.Span
	}
}

// unsupportedType builds an UnsupportedType error at the given span.
func unsupportedType(span lexer.Span, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Kind:    UnsupportedType,
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	}
}

// returnSignal is the control-flow sentinel raised by a return
// statement. It travels the same error channel the evaluator already
// threads through every production, but it is not an error: only the
// user-function call layer intercepts it, converting it into the call's
// result. Every other layer propagates it unchanged, and it must never
// escape Interpret — if it does, that is an interpreter bug, not a user
// mistake.
type returnSignal struct {
	value objects.LoxObject // The returned value (nil literal when bare)
}

// Error implements the error interface so the signal can travel the
// evaluator's error channel. The text is never shown to users.
func (r *returnSignal) Error() string {
	return "return outside the interpreter"
}
