/*
File    : go-lox/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
)

// ParseErrorKind discriminates the three categories of parse-time
// diagnostics: scanner failures surfaced through error tokens, parser
// expectation failures, and semantic parse issues such as an invalid
// assignment target.
type ParseErrorKind string

const (
	// SemanticError is a semantic parse issue (e.g., invalid assignment
	// target, too many call arguments)
	SemanticError ParseErrorKind = "error"
	// ScanError wraps a malformed token produced by the lexer
	ScanError ParseErrorKind = "scan-error"
	// UnexpectedTokenError is a parser expectation failure
	UnexpectedTokenError ParseErrorKind = "unexpected-token"
)

// ParseError represents a single parse diagnostic. The parser
// accumulates these instead of stopping: a parse run always yields a
// statement list plus zero or more errors.
//
// Fields:
//   - Kind: The diagnostic category
//   - Message: The human-readable description
//   - Offending: The offending token (UnexpectedTokenError only)
//   - Span: The primary span (SemanticError and ScanError)
type ParseError struct {
	Kind      ParseErrorKind // Diagnostic category
	Message   string         // Human-readable description
	Offending lexer.Token    // Offending token (unexpected-token kind)
	Span      lexer.Span     // Primary span (error and scan-error kinds)
}

// Error renders the diagnostic with its position, implementing the
// standard error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedTokenError:
		return fmt.Sprintf("%s; unexpected token `%s`; at position %s",
			e.Message, e.Offending.String(), e.Offending.Span)
	default:
		return fmt.Sprintf("%s; at position %s", e.Message, e.Span)
	}
}

// PrimarySpan returns the span that caused the error, used by
// diagnostic rendering to highlight the offending source fragment.
func (e *ParseError) PrimarySpan() lexer.Span {
	if e.Kind == UnexpectedTokenError {
		return e.Offending.Span
	}
	return e.Span
}

// AllowsContinuation checks if the error allows REPL continuation
// (the "..." prompt): the input so far is not wrong, just incomplete.
// That is the case when the offending token is end-of-input, or when
// the error wraps an unterminated-string scan error.
func (e *ParseError) AllowsContinuation() bool {
	switch e.Kind {
	case UnexpectedTokenError:
		return e.Offending.Type == lexer.EOF_TYPE
	case ScanError:
		return e.Message == lexer.UnterminatedString
	default:
		return false
	}
}

// AllowContinuation reports whether a whole parse outcome should keep
// the REPL reading input: there must be at least one error and every
// error must individually allow continuation.
func AllowContinuation(errors []*ParseError) bool {
	if len(errors) == 0 {
		return false
	}
	for _, err := range errors {
		if !err.AllowsContinuation() {
			return false
		}
	}
	return true
}
