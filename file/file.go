/*
File    : go-lox/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file implements the script-file driver for the Lox
// interpreter: it reads a source file and runs it through the full
// pipeline (parse, resolve, interpret), reporting every diagnostic with
// a source window. Interpretation is skipped as soon as any stage
// produced errors, so dummy recovery nodes never execute.
package file

import (
	"fmt"
	"os"
	"time"

	"github.com/akashmaji946/go-lox/diag"
	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/hashicorp/go-hclog"
)

// newLogger builds the driver's phase logger. It stays silent unless
// LOX_DEBUG is set, so a script's stdout/stderr is exactly what the
// language semantics mandate.
func newLogger() hclog.Logger {
	level := hclog.Off
	if os.Getenv("LOX_DEBUG") != "" {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "go-lox",
		Level:  level,
		Output: os.Stderr,
	})
}

// Run reads and executes the script at path on a fresh evaluator.
//
// Returns:
//   - bool: true when the script parsed, resolved and ran without errors
func Run(path string) bool {
	return RunWith(path, eval.NewEvaluator())
}

// RunWith reads and executes the script at path against an existing
// evaluator, so bindings the script creates persist on it. The REPL's
// `:load` command uses this to pull a file into the live session.
//
// Diagnostics from each stage are rendered to stderr; the first stage
// with errors stops the pipeline.
func RunWith(path string, evaluator *eval.Evaluator) bool {
	logger := newLogger()

	srcBytes, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	src := string(srcBytes)

	// Parse
	start := time.Now()
	stmts, parseErrors := parser.NewParser(src).Parse()
	logger.Debug("parsed", "path", path, "statements", len(stmts),
		"errors", len(parseErrors), "elapsed", time.Since(start))
	if len(parseErrors) > 0 {
		diag.ReportAll(os.Stderr, src, parseErrors)
		return false
	}

	// Resolve
	start = time.Now()
	ok, resolveErrors := resolver.NewResolver(evaluator).Resolve(stmts)
	logger.Debug("resolved", "path", path,
		"errors", len(resolveErrors), "elapsed", time.Since(start))
	if !ok {
		diag.ReportAll(os.Stderr, src, resolveErrors)
		return false
	}

	// Interpret
	start = time.Now()
	if runtimeErr := evaluator.Interpret(stmts); runtimeErr != nil {
		diag.Report(os.Stderr, src, runtimeErr)
		return false
	}
	logger.Debug("interpreted", "path", path, "elapsed", time.Since(start))
	return true
}
