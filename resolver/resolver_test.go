/*
File    : go-lox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolveSource parses and resolves src on a fresh evaluator, failing
// the test on parse errors. It returns the evaluator (for distance
// inspection) and the resolution diagnostics.
func resolveSource(t *testing.T, src string) (*eval.Evaluator, []*ResolveError) {
	t.Helper()
	stmts, parseErrors := parser.NewParser(src).Parse()
	require.Empty(t, parseErrors, "input: %q", src)

	evaluator := eval.NewEvaluator()
	_, errors := NewResolver(evaluator).Resolve(stmts)
	return evaluator, errors
}

// TestResolver_Distances verifies the recorded lexical distances:
// walking that many frames up from the use-site's scope reaches the
// binding.
func TestResolver_Distances(t *testing.T) {
	src := `{ var a = 1; print a; { print a; } }`
	stmts, parseErrors := parser.NewParser(src).Parse()
	require.Empty(t, parseErrors)

	evaluator := eval.NewEvaluator()
	ok, errors := NewResolver(evaluator).Resolve(stmts)
	require.True(t, ok, "resolve errors: %v", errors)

	block := stmts[0].(*parser.BlockStatementNode)

	// `print a;` sits in the same scope as the declaration
	sameScope := block.Statements[1].(*parser.PrintStatementNode).
		Expr.(*parser.IdentifierExpressionNode)
	assert.Equal(t, 0, evaluator.Locals[sameScope.Ident.ID])

	// The nested `print a;` is one scope further in
	inner := block.Statements[2].(*parser.BlockStatementNode).
		Statements[0].(*parser.PrintStatementNode).
		Expr.(*parser.IdentifierExpressionNode)
	assert.Equal(t, 1, evaluator.Locals[inner.Ident.ID])
}

// TestResolver_GlobalsStayUnresolved verifies that top-level bindings
// never enter the distance table: the interpreter finds them in the
// global scope at runtime.
func TestResolver_GlobalsStayUnresolved(t *testing.T) {
	src := `var a = 1; print a;`
	stmts, parseErrors := parser.NewParser(src).Parse()
	require.Empty(t, parseErrors)

	evaluator := eval.NewEvaluator()
	ok, errors := NewResolver(evaluator).Resolve(stmts)
	require.True(t, ok, "resolve errors: %v", errors)
	assert.Empty(t, evaluator.Locals)
}

// TestResolver_FunctionParameters verifies that a parameter captured by
// a nested function resolves through the enclosing function's scope.
func TestResolver_FunctionParameters(t *testing.T) {
	src := `fun outer(x) { fun inner() { return x; } return inner; }`
	stmts, parseErrors := parser.NewParser(src).Parse()
	require.Empty(t, parseErrors)

	evaluator := eval.NewEvaluator()
	ok, errors := NewResolver(evaluator).Resolve(stmts)
	require.True(t, ok, "resolve errors: %v", errors)

	outer := stmts[0].(*parser.FunctionStatementNode)
	inner := outer.Body[0].(*parser.FunctionStatementNode)
	ret := inner.Body[0].(*parser.ReturnStatementNode)
	captured := ret.Value.(*parser.IdentifierExpressionNode)

	// inner's body scope -> outer's scope holding `x`
	assert.Equal(t, 1, evaluator.Locals[captured.Ident.ID])
}

// TestResolver_Errors verifies each diagnosed misuse.
func TestResolver_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // empty means the program must resolve cleanly
	}{
		{
			"own initializer read",
			`{ var x = x; }`,
			"Can't read local variable in its own initializer",
		},
		{
			"own initializer read at global scope is fine",
			`var x = x;`,
			"",
		},
		{
			"same scope shadowing",
			`{ var a = 1; var a = 2; }`,
			"Can't shadow a identifier in the same scope",
		},
		{
			"shadowing across scopes is fine",
			`{ var a = 1; { var a = 2; } }`,
			"",
		},
		{
			"global redeclaration is fine",
			`var x = 1; var x = 2;`,
			"",
		},
		{
			"top level return",
			`return 1;`,
			"Illegal return statement",
		},
		{
			"return inside function is fine",
			`fun f() { return 1; }`,
			"",
		},
		{
			"value return from initializer",
			`class A { init() { return 1; } }`,
			"Can't return value from class initializer",
		},
		{
			"bare return from initializer is fine",
			`class A { init() { return; } }`,
			"",
		},
		{
			"self inheritance",
			`class A < A {}`,
			"Class can't inherit itself",
		},
		{
			"this outside class",
			`print this;`,
			"Illegal this expression, can't use this outside of a class",
		},
		{
			"this inside function outside class",
			`fun f() { return this; }`,
			"Illegal this expression, can't use this outside of a class",
		},
		{
			"this inside method is fine",
			`class A { m() { return this; } }`,
			"",
		},
		{
			"super outside class",
			`var x = super.m;`,
			"Illegal super expression, can't use super outside of a class",
		},
		{
			"super without superclass",
			`class A { m() { return super.m(); } }`,
			"Illegal super expression, can't use super within a class with no superclass",
		},
		{
			"super in subclass is fine",
			`class A {} class B < A { m() { return super.m; } }`,
			"",
		},
		{
			"parameter shadowed by local",
			`fun f(a) { var a = 1; }`,
			"Can't shadow a identifier in the same scope",
		},
	}

	for _, tt := range tests {
		_, errors := resolveSource(t, tt.input)
		if tt.expected == "" {
			assert.Empty(t, errors, "%s: expected no errors", tt.name)
			continue
		}
		require.NotEmpty(t, errors, "%s: expected an error", tt.name)
		assert.Contains(t, errors[0].Error(), tt.expected, tt.name)
	}
}

// TestResolver_AccumulatesErrors verifies that one pass reports
// multiple independent diagnostics.
func TestResolver_AccumulatesErrors(t *testing.T) {
	src := `return 1; { var a = 1; var a = 2; }`
	_, errors := resolveSource(t, src)
	assert.Len(t, errors, 2)
}

// TestResolver_ErrorSpans verifies diagnostics point at the offending
// identifier.
func TestResolver_ErrorSpans(t *testing.T) {
	src := `{ var aaa = 1; var aaa = 2; }`
	_, errors := resolveSource(t, src)
	require.Len(t, errors, 1)
	assert.Equal(t, "aaa", errors[0].PrimarySpan().Text(src))
}
