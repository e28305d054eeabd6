/*
File    : go-lox/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag renders diagnostics for every error category the
// pipeline produces: the message line followed by a source window with
// the offending span highlighted. Both the REPL and the file driver
// report errors through this package, so users see the same shape of
// output everywhere.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/fatih/color"
)

// Colors used by diagnostic rendering. The color package disables
// itself automatically when output is not a terminal.
var (
	redColor = color.New(color.FgRed)
)

// Spanned is the error shape every pipeline stage produces: a message
// and the primary span it points at. ParseError, ResolveError and
// RuntimeError all satisfy it.
type Spanned interface {
	error
	PrimarySpan() lexer.Span
}

// Report writes one diagnostic: the message line (prefixed in red)
// followed by the source window for its primary span.
func Report(writer io.Writer, src string, err Spanned) {
	fmt.Fprintf(writer, "%s %s\n", redColor.Sprint("error:"), err.Error())
	PrintSpanWindow(writer, src, err.PrimarySpan())
}

// ReportAll writes every diagnostic in order.
func ReportAll[E Spanned](writer io.Writer, src string, errors []E) {
	for _, err := range errors {
		Report(writer, src, err)
	}
}

// PrintSpanWindow writes the source line containing the span, prefixed
// with its 1-indexed line number, with the spanned fragment highlighted
// in red.
//
// Example output for a span over `1 / 0`'s operator:
//
//	    3 | print 1 / 0;
//
// Spans reaching into several lines highlight from the span start to
// the end of its first line.
func PrintSpanWindow(writer io.Writer, src string, span lexer.Span) {
	// Clamp to the source bounds; EOF spans sit at len(src)
	lo := min(span.Lo, len(src))
	hi := min(span.Hi, len(src))

	lineNumber := strings.Count(src[:lo], "\n") + 1

	// Bounds of the line the span starts on
	lineStart := 0
	if idx := strings.LastIndexByte(src[:lo], '\n'); idx >= 0 {
		lineStart = idx + 1
	}
	lineEnd := len(src)
	if idx := strings.IndexByte(src[lo:], '\n'); idx >= 0 {
		lineEnd = lo + idx
	}
	if hi > lineEnd {
		hi = lineEnd
	}

	before := src[lineStart:lo]
	spanned := src[lo:hi]
	after := src[hi:lineEnd]

	fmt.Fprintf(writer, "%5d | %s%s%s\n", lineNumber, before, redColor.Sprint(spanned), after)
}
