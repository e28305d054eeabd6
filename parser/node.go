/*
File    : go-lox/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// Node: base interface for all nodes of the AST
// Literal(): returns a source-like string representation of the node
// GetSpan(): returns the byte span the node covers in the source
type Node interface {
	Literal() string
	GetSpan() lexer.Span
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker method distinguishing statements
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// Expression(): marker method distinguishing expressions
type ExpressionNode interface {
	Node
	Expression()
}

// There can be many types of ExpressionNodes.

// LiteralExpressionNode: represents a literal value in the source code
// Example: 42, "hello", true, nil
type LiteralExpressionNode struct {
	Token lexer.Token       // The literal token from the source
	Value objects.LoxObject // The literal's runtime value
}

// LiteralExpressionNode.Literal(): string representation of the node
func (node *LiteralExpressionNode) Literal() string {
	return node.Value.ToObject()
}

// LiteralExpressionNode.GetSpan(): span of the literal token
func (node *LiteralExpressionNode) GetSpan() lexer.Span {
	return node.Token.Span
}

// LiteralExpressionNode.Expression(): marker
func (node *LiteralExpressionNode) Expression() {

}

// NewLiteralNode converts a literal token into a LiteralExpressionNode,
// building the runtime value the literal denotes.
func NewLiteralNode(token lexer.Token) *LiteralExpressionNode {
	var value objects.LoxObject
	switch token.Type {
	case lexer.NUMBER_LIT:
		value = &objects.Number{Value: token.Number}
	case lexer.STRING_LIT:
		value = &objects.String{Value: token.Literal}
	case lexer.TRUE_KEY:
		value = &objects.Boolean{Value: true}
	case lexer.FALSE_KEY:
		value = &objects.Boolean{Value: false}
	default:
		// NIL_KEY and anything unexpected fold to nil
		value = &objects.Nil{}
	}
	return &LiteralExpressionNode{Token: token, Value: value}
}

// IdentifierExpressionNode: represents a variable reference
// Example: x, myVar, makeCounter
type IdentifierExpressionNode struct {
	Ident LoxIdent // The referenced identifier occurrence
}

// IdentifierExpressionNode.Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Ident.Name
}

// IdentifierExpressionNode.GetSpan(): span of the identifier
func (node *IdentifierExpressionNode) GetSpan() lexer.Span {
	return node.Ident.Span
}

// IdentifierExpressionNode.Expression(): marker
func (node *IdentifierExpressionNode) Expression() {

}

// ThisExpressionNode: represents a `this` reference inside a method.
// The identifier is named "this" so the resolver and the environment
// treat it like any other binding.
type ThisExpressionNode struct {
	Ident LoxIdent // The `this` occurrence
}

// ThisExpressionNode.Literal(): string representation of the node
func (node *ThisExpressionNode) Literal() string {
	return "this"
}

// ThisExpressionNode.GetSpan(): span of the `this` keyword
func (node *ThisExpressionNode) GetSpan() lexer.Span {
	return node.Ident.Span
}

// ThisExpressionNode.Expression(): marker
func (node *ThisExpressionNode) Expression() {

}

// SuperExpressionNode: represents a super-class method access
// Example: super.greet
type SuperExpressionNode struct {
	SuperIdent LoxIdent   // The `super` occurrence (resolved like a variable)
	Method     LoxIdent   // The accessed method name
	Span       lexer.Span // Span of the whole `super.method` form
}

// SuperExpressionNode.Literal(): string representation of the node
func (node *SuperExpressionNode) Literal() string {
	return "super." + node.Method.Name
}

// SuperExpressionNode.GetSpan(): span of the whole expression
func (node *SuperExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// SuperExpressionNode.Expression(): marker
func (node *SuperExpressionNode) Expression() {

}

// GroupExpressionNode: represents an expression wrapped in parentheses
// for precedence control
// Example: (2 + 3) * 4
type GroupExpressionNode struct {
	Expr ExpressionNode // The inner expression
	Span lexer.Span     // Span including both parentheses
}

// GroupExpressionNode.Literal(): string representation of the node
func (node *GroupExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

// GroupExpressionNode.GetSpan(): span including the parentheses
func (node *GroupExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// GroupExpressionNode.Expression(): marker
func (node *GroupExpressionNode) Expression() {

}

// GetExpressionNode: represents a property read on an object
// Example: point.x, counter.tick
type GetExpressionNode struct {
	Object ExpressionNode // The expression yielding the instance
	Name   LoxIdent       // The property name
	Span   lexer.Span     // Span of the whole access
}

// GetExpressionNode.Literal(): string representation of the node
func (node *GetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Name
}

// GetExpressionNode.GetSpan(): span of the whole access
func (node *GetExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// GetExpressionNode.Expression(): marker
func (node *GetExpressionNode) Expression() {

}

// SetExpressionNode: represents a property write on an object
// Example: point.x = 10
type SetExpressionNode struct {
	Object ExpressionNode // The expression yielding the instance
	Name   LoxIdent       // The property name
	Value  ExpressionNode // The assigned expression
	Span   lexer.Span     // Span of the whole assignment
}

// SetExpressionNode.Literal(): string representation of the node
func (node *SetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Name + " = " + node.Value.Literal()
}

// SetExpressionNode.GetSpan(): span of the whole assignment
func (node *SetExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// SetExpressionNode.Expression(): marker
func (node *SetExpressionNode) Expression() {

}

// CallExpressionNode: represents a function, method, or class call
// Example: clock(), counter.tick(), Point(1, 2)
type CallExpressionNode struct {
	Callee    ExpressionNode   // The expression being invoked
	Arguments []ExpressionNode // Argument expressions, left to right
	Span      lexer.Span       // Span from callee through closing paren
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}

// CallExpressionNode.GetSpan(): span through the closing parenthesis
func (node *CallExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// CallExpressionNode.Expression(): marker
func (node *CallExpressionNode) Expression() {

}

// UnaryExpressionNode: represents a unary operation expression
// Example: -x, !flag, typeof v, show v
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token (-, !, typeof, show)
	Right     ExpressionNode // The operand expression
	Span      lexer.Span     // Span from operator through operand
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Literal + node.Right.Literal()
}

// UnaryExpressionNode.GetSpan(): span from operator through operand
func (node *UnaryExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// UnaryExpressionNode.Expression(): marker
func (node *UnaryExpressionNode) Expression() {

}

// BinaryExpressionNode: represents a binary operation with two operands
// Example: 2 + 3, x * y, a <= b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
	Span      lexer.Span     // Span covering both operands
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}

// BinaryExpressionNode.GetSpan(): span covering both operands
func (node *BinaryExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// BinaryExpressionNode.Expression(): marker
func (node *BinaryExpressionNode) Expression() {

}

// LogicalExpressionNode: represents a short-circuit logical operation
// Example: a and b, x or y
type LogicalExpressionNode struct {
	Operation lexer.Token    // The `and` or `or` token
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
	Span      lexer.Span     // Span covering both operands
}

// LogicalExpressionNode.Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}

// LogicalExpressionNode.GetSpan(): span covering both operands
func (node *LogicalExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// LogicalExpressionNode.Expression(): marker
func (node *LogicalExpressionNode) Expression() {

}

// AssignmentExpressionNode: represents a variable assignment expression
// Example: x = 10, count = count + 1
type AssignmentExpressionNode struct {
	Name  LoxIdent       // The assigned identifier occurrence
	Value ExpressionNode // The expression being assigned
	Span  lexer.Span     // Span from target through value
}

// AssignmentExpressionNode.Literal(): string representation of the node
func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Name + " = " + node.Value.Literal()
}

// AssignmentExpressionNode.GetSpan(): span from target through value
func (node *AssignmentExpressionNode) GetSpan() lexer.Span {
	return node.Span
}

// AssignmentExpressionNode.Expression(): marker
func (node *AssignmentExpressionNode) Expression() {

}

// There can be many types of StatementNodes.

// DeclarativeStatementNode: represents a variable declaration statement
// Example: var x = 10; or var x;
type DeclarativeStatementNode struct {
	VarToken lexer.Token    // The `var` keyword token
	Name     LoxIdent       // The declared identifier
	Init     ExpressionNode // The initializer expression, or nil
	Span     lexer.Span     // Span from `var` through `;`
}

// DeclarativeStatementNode.Literal(): string representation of the node
func (node *DeclarativeStatementNode) Literal() string {
	if node.Init == nil {
		return "var " + node.Name.Name
	}
	return "var " + node.Name.Name + " = " + node.Init.Literal()
}

// DeclarativeStatementNode.GetSpan(): span from `var` through `;`
func (node *DeclarativeStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// DeclarativeStatementNode.Statement(): marker
func (node *DeclarativeStatementNode) Statement() {

}

// ClassStatementNode: represents a class declaration statement
// Example: class B < A { method() { ... } }
type ClassStatementNode struct {
	Name      LoxIdent                 // The class name
	SuperName *LoxIdent                // The super-class name, or nil
	Methods   []*FunctionStatementNode // The declared methods
	Span      lexer.Span               // Span from `class` through `}`
}

// ClassStatementNode.Literal(): string representation of the node
func (node *ClassStatementNode) Literal() string {
	res := "class " + node.Name.Name
	if node.SuperName != nil {
		res += " < " + node.SuperName.Name
	}
	res += " {"
	for _, method := range node.Methods {
		res += " " + method.Literal()
	}
	return res + " }"
}

// ClassStatementNode.GetSpan(): span from `class` through `}`
func (node *ClassStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// ClassStatementNode.Statement(): marker
func (node *ClassStatementNode) Statement() {

}

// FunctionStatementNode: represents a function declaration or a class
// method (methods are declared without the `fun` keyword)
// Example: fun add(x, y) { return x + y; }
type FunctionStatementNode struct {
	Name   LoxIdent        // The function or method name
	Params []LoxIdent      // Parameter identifiers
	Body   []StatementNode // The body statements
	Span   lexer.Span      // Span of the whole declaration
}

// FunctionStatementNode.Literal(): string representation of the node
func (node *FunctionStatementNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, param := range node.Params {
		params = append(params, param.Name)
	}
	return node.Name.Name + "(" + strings.Join(params, ", ") + ") {...}"
}

// FunctionStatementNode.GetSpan(): span of the whole declaration
func (node *FunctionStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// FunctionStatementNode.Statement(): marker
func (node *FunctionStatementNode) Statement() {

}

// IfStatementNode: represents an if-else conditional statement
// Example: if (x > 0) print x; else print 0;
type IfStatementNode struct {
	Condition  ExpressionNode // The condition expression
	ThenBranch StatementNode  // Statement executed when truthy
	ElseBranch StatementNode  // Statement executed when falsey, or nil
	Span       lexer.Span     // Span of the whole statement
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.ThenBranch.Literal()
	if node.ElseBranch != nil {
		res += " else " + node.ElseBranch.Literal()
	}
	return res
}

// IfStatementNode.GetSpan(): span of the whole statement
func (node *IfStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// IfStatementNode.Statement(): marker
func (node *IfStatementNode) Statement() {

}

// WhileLoopStatementNode: represents a while loop. `for` loops are
// desugared into this node by the parser; there is no for node.
// Example: while (i < 10) { ... }
type WhileLoopStatementNode struct {
	Condition ExpressionNode // The loop condition
	Body      StatementNode  // The loop body
	Span      lexer.Span     // Span of the whole statement
}

// WhileLoopStatementNode.Literal(): string representation of the node
func (node *WhileLoopStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}

// WhileLoopStatementNode.GetSpan(): span of the whole statement
func (node *WhileLoopStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// WhileLoopStatementNode.Statement(): marker
func (node *WhileLoopStatementNode) Statement() {

}

// ReturnStatementNode: represents a return statement in a function
// Example: return x + 5; or return;
type ReturnStatementNode struct {
	ReturnSpan lexer.Span     // Span of the `return` keyword itself
	Value      ExpressionNode // The returned expression, or nil
	Span       lexer.Span     // Span from `return` through `;`
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	if node.Value == nil {
		return "return"
	}
	return "return " + node.Value.Literal()
}

// ReturnStatementNode.GetSpan(): span from `return` through `;`
func (node *ReturnStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// ReturnStatementNode.Statement(): marker
func (node *ReturnStatementNode) Statement() {

}

// PrintStatementNode: represents a print statement. Debug is set on the
// statements the parser synthesizes for REPL auto-printing; debug
// rendering quotes strings so `"1"` and `1` can be told apart.
type PrintStatementNode struct {
	Expr  ExpressionNode // The printed expression
	Debug bool           // Whether to use the debug rendering
	Span  lexer.Span     // Span of the whole statement
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal()
}

// PrintStatementNode.GetSpan(): span of the whole statement
func (node *PrintStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// PrintStatementNode.Statement(): marker
func (node *PrintStatementNode) Statement() {

}

// BlockStatementNode: represents a block of statements in braces
// Example: { var x = 1; print x; }
type BlockStatementNode struct {
	Statements []StatementNode // Statements in the block
	Span       lexer.Span      // Span including both braces
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	str := "{"
	for _, stmt := range node.Statements {
		str += " " + stmt.Literal() + ";"
	}
	str += " }"
	return str
}

// BlockStatementNode.GetSpan(): span including both braces
func (node *BlockStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// BlockStatementNode.Statement(): marker
func (node *BlockStatementNode) Statement() {

}

// ExpressionStatementNode: represents an expression evaluated for its
// side effects, result discarded
// Example: counter.tick();
type ExpressionStatementNode struct {
	Expr ExpressionNode // The evaluated expression
	Span lexer.Span     // Span from expression through `;`
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal()
}

// ExpressionStatementNode.GetSpan(): span through `;`
func (node *ExpressionStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// ExpressionStatementNode.Statement(): marker
func (node *ExpressionStatementNode) Statement() {

}

// DummyStatementNode: placeholder emitted by parser error recovery so
// sibling declarations keep parsing. It must never reach the resolver or
// the interpreter: a successful parse (no diagnostics) contains none.
type DummyStatementNode struct {
	Span lexer.Span // Span where recovery happened
}

// DummyStatementNode.Literal(): string representation of the node
func (node *DummyStatementNode) Literal() string {
	return "<dummy>"
}

// DummyStatementNode.GetSpan(): span where recovery happened
func (node *DummyStatementNode) GetSpan() lexer.Span {
	return node.Span
}

// DummyStatementNode.Statement(): marker
func (node *DummyStatementNode) Statement() {

}
