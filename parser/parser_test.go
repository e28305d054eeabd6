/*
File    : go-lox/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/stretchr/testify/assert"
)

// TestParser_Precedence verifies that the precedence ladder groups
// operands the way the grammar demands.
func TestParser_Precedence(t *testing.T) {
	stmts, errors := NewParser(`print 1 + 2 * 3;`).Parse()
	assert.Empty(t, errors)
	assert.Len(t, stmts, 1)

	printStmt := stmts[0].(*PrintStatementNode)
	plus := printStmt.Expr.(*BinaryExpressionNode)
	assert.Equal(t, lexer.PLUS_OP, plus.Operation.Type)

	// The multiplication binds tighter, so it is the right operand
	times := plus.Right.(*BinaryExpressionNode)
	assert.Equal(t, lexer.MUL_OP, times.Operation.Type)
	assert.Equal(t, "1", plus.Left.Literal())
}

// TestParser_UnaryNesting verifies right-recursive unary parsing.
func TestParser_UnaryNesting(t *testing.T) {
	stmts, errors := NewParser(`print !!true;`).Parse()
	assert.Empty(t, errors)

	outer := stmts[0].(*PrintStatementNode).Expr.(*UnaryExpressionNode)
	inner := outer.Right.(*UnaryExpressionNode)
	assert.Equal(t, lexer.NOT_OP, outer.Operation.Type)
	assert.Equal(t, lexer.NOT_OP, inner.Operation.Type)
	assert.IsType(t, &LiteralExpressionNode{}, inner.Right)
}

// TestParser_ForDesugaring verifies that a for loop parses into the
// documented block/while shape with no dedicated for node.
func TestParser_ForDesugaring(t *testing.T) {
	stmts, errors := NewParser(`for (var i = 0; i < 3; i = i + 1) print i;`).Parse()
	assert.Empty(t, errors)
	assert.Len(t, stmts, 1)

	// { var i = 0; while (i < 3) { print i; i = i + 1; } }
	outer := stmts[0].(*BlockStatementNode)
	assert.Len(t, outer.Statements, 2)
	assert.IsType(t, &DeclarativeStatementNode{}, outer.Statements[0])

	loop := outer.Statements[1].(*WhileLoopStatementNode)
	body := loop.Body.(*BlockStatementNode)
	assert.Len(t, body.Statements, 2)
	assert.IsType(t, &PrintStatementNode{}, body.Statements[0])
	assert.IsType(t, &ExpressionStatementNode{}, body.Statements[1])
}

// TestParser_ForMissingClauses verifies the optional for clauses: a
// bare `;` initializer produces none, and a missing condition is
// synthesized as `true`.
func TestParser_ForMissingClauses(t *testing.T) {
	stmts, errors := NewParser(`for (;;) print 1;`).Parse()
	assert.Empty(t, errors)
	assert.Len(t, stmts, 1)

	// No initializer, so no wrapping block
	loop := stmts[0].(*WhileLoopStatementNode)
	cond := loop.Condition.(*LiteralExpressionNode)
	assert.Equal(t, "true", cond.Value.ToString())
	assert.IsType(t, &PrintStatementNode{}, loop.Body)
}

// TestParser_AssignmentTargets verifies assignment-target rewriting:
// variable references become assignments, property reads become
// property writes, and anything else is rejected.
func TestParser_AssignmentTargets(t *testing.T) {
	stmts, errors := NewParser(`a = 1;`).Parse()
	assert.Empty(t, errors)
	assert.IsType(t, &AssignmentExpressionNode{},
		stmts[0].(*ExpressionStatementNode).Expr)

	stmts, errors = NewParser(`a.b = 1;`).Parse()
	assert.Empty(t, errors)
	set := stmts[0].(*ExpressionStatementNode).Expr.(*SetExpressionNode)
	assert.Equal(t, "b", set.Name.Name)

	// Chained accesses rewrite only the last hop
	stmts, errors = NewParser(`a.b.c = 1;`).Parse()
	assert.Empty(t, errors)
	set = stmts[0].(*ExpressionStatementNode).Expr.(*SetExpressionNode)
	assert.Equal(t, "c", set.Name.Name)
	assert.IsType(t, &GetExpressionNode{}, set.Object)

	_, errors = NewParser(`1 = 2;`).Parse()
	assert.Len(t, errors, 1)
	assert.Equal(t, SemanticError, errors[0].Kind)
	assert.Contains(t, errors[0].Error(), "Invalid assignment target")
}

// TestParser_ClassDeclaration verifies class parsing: name, optional
// superclass, and methods without the fun keyword.
func TestParser_ClassDeclaration(t *testing.T) {
	src := `class B < A { init(n) { this.n = n; } greet() { return super.greet(); } }`
	stmts, errors := NewParser(src).Parse()
	assert.Empty(t, errors)

	class := stmts[0].(*ClassStatementNode)
	assert.Equal(t, "B", class.Name.Name)
	assert.NotNil(t, class.SuperName)
	assert.Equal(t, "A", class.SuperName.Name)
	assert.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name.Name)
	assert.Equal(t, []string{"n"}, []string{class.Methods[0].Params[0].Name})
	assert.Equal(t, "greet", class.Methods[1].Name.Name)
}

// TestParser_ErrorRecovery verifies that a syntax error inside one
// declaration produces a Dummy placeholder and parsing resumes at the
// next statement boundary.
func TestParser_ErrorRecovery(t *testing.T) {
	stmts, errors := NewParser(`var ; print 1; var ok = 2;`).Parse()
	assert.Len(t, errors, 1)
	assert.Contains(t, errors[0].Error(), "Expected variable name")

	assert.Len(t, stmts, 3)
	assert.IsType(t, &DummyStatementNode{}, stmts[0])
	assert.IsType(t, &PrintStatementNode{}, stmts[1])
	assert.IsType(t, &DeclarativeStatementNode{}, stmts[2])
}

// TestParser_ScanErrorsBecomeDiagnostics verifies that malformed
// tokens surface as scan-error diagnostics while parsing continues.
func TestParser_ScanErrorsBecomeDiagnostics(t *testing.T) {
	stmts, errors := NewParser(`print 1 @ ;`).Parse()
	assert.NotEmpty(t, errors)
	assert.Equal(t, ScanError, errors[0].Kind)
	assert.Contains(t, errors[0].Error(), "Unexpected character `@`")
	// The statement still parses: the bad character was skipped
	assert.Len(t, stmts, 1)
	assert.IsType(t, &PrintStatementNode{}, stmts[0])
}

// TestParser_ReplPromotion verifies trailing-expression promotion in
// REPL mode, and that it only happens there.
func TestParser_ReplPromotion(t *testing.T) {
	par := NewParser(`1 + 2`)
	par.ReplMode = true
	stmts, errors := par.Parse()
	assert.Empty(t, errors)
	printStmt := stmts[0].(*PrintStatementNode)
	assert.True(t, printStmt.Debug)

	// Without REPL mode the missing semicolon is an error
	_, errors = NewParser(`1 + 2`).Parse()
	assert.NotEmpty(t, errors)

	// A terminated expression is not promoted even in REPL mode
	par = NewParser(`1 + 2;`)
	par.ReplMode = true
	stmts, errors = par.Parse()
	assert.Empty(t, errors)
	assert.IsType(t, &ExpressionStatementNode{}, stmts[0])
}

// TestParser_Continuation verifies the continuation classification the
// REPL builds its `...` prompt on.
func TestParser_Continuation(t *testing.T) {
	tests := []struct {
		input    string
		continues bool
	}{
		{`var x = `, true},          // offending token is EOF
		{`{ print 1;`, true},        // unclosed block ends at EOF
		{`var s = "abc`, true},      // unterminated string
		{`1 = 2;`, false},           // complete but invalid
		{`var ;`, false},            // offending token is `;`
		{`print 1;`, false},         // no errors at all
	}

	for _, tt := range tests {
		par := NewParser(tt.input)
		par.ReplMode = true
		_, errors := par.Parse()
		assert.Equal(t, tt.continues, AllowContinuation(errors), "input: %q", tt.input)
	}
}

// TestParser_Spans verifies that statement spans cover their full
// source extent.
func TestParser_Spans(t *testing.T) {
	src := `print 1 + 2;`
	stmts, errors := NewParser(src).Parse()
	assert.Empty(t, errors)

	span := stmts[0].GetSpan()
	assert.Equal(t, src, span.Text(src))

	expr := stmts[0].(*PrintStatementNode).Expr
	assert.Equal(t, "1 + 2", expr.GetSpan().Text(src))
}

// TestParser_UniqueIdentIds verifies that textually identical
// identifier occurrences get distinct ids.
func TestParser_UniqueIdentIds(t *testing.T) {
	stmts, errors := NewParser(`var a = a;`).Parse()
	assert.Empty(t, errors)

	decl := stmts[0].(*DeclarativeStatementNode)
	ref := decl.Init.(*IdentifierExpressionNode)
	assert.Equal(t, decl.Name.Name, ref.Ident.Name)
	assert.NotEqual(t, decl.Name.ID, ref.Ident.ID)
}

// TestParser_TooManyArguments verifies the 255-argument diagnostic is
// recorded while parsing proceeds.
func TestParser_TooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"

	stmts, errors := NewParser(src).Parse()
	assert.NotEmpty(t, errors)
	assert.Contains(t, errors[0].Error(), "Can't have more than 255 arguments")

	// The call node still carries every argument
	call := stmts[0].(*ExpressionStatementNode).Expr.(*CallExpressionNode)
	assert.Len(t, call.Arguments, 256)
}

// TestParser_SuperExpression verifies the super access form.
func TestParser_SuperExpression(t *testing.T) {
	src := `class B < A { m() { return super.m(); } }`
	stmts, errors := NewParser(src).Parse()
	assert.Empty(t, errors)

	method := stmts[0].(*ClassStatementNode).Methods[0]
	ret := method.Body[0].(*ReturnStatementNode)
	call := ret.Value.(*CallExpressionNode)
	super := call.Callee.(*SuperExpressionNode)
	assert.Equal(t, "super", super.SuperIdent.Name)
	assert.Equal(t, "m", super.Method.Name)
}
