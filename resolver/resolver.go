/*
File    : go-lox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static name-resolution pass that runs
// between parsing and interpretation. For every variable, `this` and
// `super` reference bound in a local scope it computes the lexical
// distance (number of enclosing frames between the use-site and its
// binding) and publishes it into the evaluator's distance table. It
// also diagnoses the statically illegal programs: same-scope shadowing,
// reading a local in its own initializer, `return` outside a function,
// returning a value from a class initializer, self-inheritance, and
// `this`/`super` misuse.
//
// The global scope is never pushed onto the resolver's stack: names it
// cannot find stay unresolved and the interpreter looks them up in the
// global bindings at runtime. That is also why a repeated top-level
// `var x` re-binds silently while the same thing inside a block errors.
package resolver

import (
	"fmt"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/parser"
)

// BindingState tracks how far along a local binding is. A name is
// Declared from its `var` keyword to the end of its initializer, and
// Initialized afterwards; reading a Declared name is the
// own-initializer error.
type BindingState int

const (
	// Declared means the name exists but its initializer has not
	// finished resolving
	Declared BindingState = iota
	// Initialized means the name is fully usable
	Initialized
)

// FunctionState tracks what kind of function body (if any) is being
// resolved, for `return` legality checks.
type FunctionState int

const (
	// FunctionNone: not inside any function
	FunctionNone FunctionState = iota
	// FunctionFunction: inside a plain function
	FunctionFunction
	// FunctionMethod: inside a class method
	FunctionMethod
	// FunctionInit: inside a class `init` method
	FunctionInit
)

// ClassState tracks what kind of class body (if any) is being resolved,
// for `this`/`super` legality checks.
type ClassState int

const (
	// ClassNone: not inside any class
	ClassNone ClassState = iota
	// ClassClass: inside a class with no superclass
	ClassClass
	// ClassSubClass: inside a class that inherits
	ClassSubClass
)

// ResolveError represents one resolution diagnostic. Like the parser,
// the resolver accumulates errors without aborting, so a single pass
// reports everything it can find.
type ResolveError struct {
	Message string     // Human-readable description
	Span    lexer.Span // The offending identifier or keyword span
}

// Error renders the diagnostic with its position.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s; at position %s", e.Message, e.Span)
}

// PrimarySpan returns the span that caused the error.
func (e *ResolveError) PrimarySpan() lexer.Span {
	return e.Span
}

// Resolver walks a parsed program once, maintaining a stack of local
// scopes (the global scope excluded) and writing resolved distances
// into the evaluator it was constructed with.
type Resolver struct {
	evaluator *eval.Evaluator             // Receives the (ident id, depth) pairs
	scopes    []map[string]BindingState   // Stack of local scopes
	function  FunctionState               // Enclosing function kind
	class     ClassState                  // Enclosing class kind
	errors    []*ResolveError             // Collected diagnostics
}

// NewResolver creates a resolver that publishes distances into the
// given evaluator.
func NewResolver(evaluator *eval.Evaluator) *Resolver {
	return &Resolver{
		evaluator: evaluator,
		scopes:    make([]map[string]BindingState, 0),
		function:  FunctionNone,
		class:     ClassNone,
		errors:    make([]*ResolveError, 0),
	}
}

// Resolve runs the pass over the whole program.
//
// Returns:
//   - bool: true when no diagnostic was produced
//   - []*ResolveError: All diagnostics collected during the pass
//
// Side effect: the evaluator's distance table is populated for every
// reference the pass could bind, whether or not errors occurred.
func (r *Resolver) Resolve(stmts []parser.StatementNode) (bool, []*ResolveError) {
	r.resolveStmts(stmts)
	return len(r.errors) == 0, r.errors
}

//
// Statements
//

func (r *Resolver) resolveStmts(stmts []parser.StatementNode) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt parser.StatementNode) {
	switch stmt := stmt.(type) {
	case *parser.DeclarativeStatementNode:
		// Declare before the initializer, define after: that window is
		// what makes `var x = x;` in a block detectable
		r.declare(stmt.Name)
		if stmt.Init != nil {
			r.resolveExpr(stmt.Init)
		}
		r.define(stmt.Name)

	case *parser.ClassStatementNode:
		r.resolveClassDecl(stmt)

	case *parser.FunctionStatementNode:
		r.declare(stmt.Name)
		r.define(stmt.Name)
		r.resolveFunction(stmt, FunctionFunction)

	case *parser.IfStatementNode:
		r.resolveExpr(stmt.Condition)
		r.resolveStmt(stmt.ThenBranch)
		if stmt.ElseBranch != nil {
			r.resolveStmt(stmt.ElseBranch)
		}

	case *parser.WhileLoopStatementNode:
		r.resolveExpr(stmt.Condition)
		r.resolveStmt(stmt.Body)

	case *parser.ReturnStatementNode:
		if r.function == FunctionNone {
			r.error(stmt.ReturnSpan, "Illegal return statement")
		}
		if stmt.Value != nil {
			if r.function == FunctionInit {
				r.error(stmt.ReturnSpan, "Can't return value from class initializer")
			}
			r.resolveExpr(stmt.Value)
		}

	case *parser.PrintStatementNode:
		r.resolveExpr(stmt.Expr)

	case *parser.BlockStatementNode:
		r.scoped(func() {
			r.resolveStmts(stmt.Statements)
		})

	case *parser.ExpressionStatementNode:
		r.resolveExpr(stmt.Expr)

	case *parser.DummyStatementNode:
		// Hosts only resolve successful parses, which contain no dummies
		panic("go-lox: dummy statement reached the resolver")

	default:
		panic(fmt.Sprintf("go-lox: unknown statement node %T", stmt))
	}
}

// resolveClassDecl resolves a class declaration: the class name, the
// optional superclass reference, the extra `super` scope for
// subclasses, the implicit `this` scope, and every method body.
func (r *Resolver) resolveClassDecl(class *parser.ClassStatementNode) {
	oldClassState := r.class
	r.class = ClassClass

	r.declare(class.Name)
	r.define(class.Name)

	if class.SuperName != nil {
		if class.Name.Name == class.SuperName.Name {
			r.error(class.SuperName.Span, "Class can't inherit itself")
		}

		r.class = ClassSubClass
		r.resolveBinding(*class.SuperName)

		// With a super-class present, an extra scope defines `super`
		// so the methods may access it
		r.beginScope()
		r.initialize("super")
	}

	r.scoped(func() {
		r.initialize("this")
		for _, method := range class.Methods {
			state := FunctionMethod
			if method.Name.Name == "init" {
				state = FunctionInit
			}
			r.resolveFunction(method, state)
		}
	})

	if class.SuperName != nil {
		r.endScope()
	}

	r.class = oldClassState
}

//
// Expressions
//

func (r *Resolver) resolveExpr(expr parser.ExpressionNode) {
	switch expr := expr.(type) {
	case *parser.LiteralExpressionNode:
		// Nothing to resolve

	case *parser.IdentifierExpressionNode:
		if r.query(expr.Ident, Declared) {
			r.error(expr.Ident.Span, "Can't read local variable in its own initializer")
			return
		}
		r.resolveBinding(expr.Ident)

	case *parser.ThisExpressionNode:
		if r.class == ClassNone {
			r.error(expr.Ident.Span, "Illegal this expression, can't use this outside of a class")
		}
		r.resolveBinding(expr.Ident)

	case *parser.SuperExpressionNode:
		if r.class == ClassNone {
			r.error(expr.SuperIdent.Span, "Illegal super expression, can't use super outside of a class")
		}
		if r.class == ClassClass {
			r.error(expr.SuperIdent.Span, "Illegal super expression, can't use super within a class with no superclass")
		}
		r.resolveBinding(expr.SuperIdent)

	case *parser.GroupExpressionNode:
		r.resolveExpr(expr.Expr)

	case *parser.GetExpressionNode:
		// Property names are looked up dynamically; only the object
		// expression resolves
		r.resolveExpr(expr.Object)

	case *parser.SetExpressionNode:
		r.resolveExpr(expr.Object)
		r.resolveExpr(expr.Value)

	case *parser.CallExpressionNode:
		r.resolveExpr(expr.Callee)
		for _, arg := range expr.Arguments {
			r.resolveExpr(arg)
		}

	case *parser.UnaryExpressionNode:
		r.resolveExpr(expr.Right)

	case *parser.BinaryExpressionNode:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *parser.LogicalExpressionNode:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *parser.AssignmentExpressionNode:
		r.resolveExpr(expr.Value)
		r.resolveBinding(expr.Name)

	default:
		panic(fmt.Sprintf("go-lox: unknown expression node %T", expr))
	}
}

//
// Helpers
//

// declare marks a name as existing-but-uninitialized in the innermost
// scope. Declaring a name that already exists in the same scope is the
// shadowing error; at global depth (empty stack) declarations are not
// tracked at all.
func (r *Resolver) declare(ident parser.LoxIdent) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, exists := top[ident.Name]; exists {
		r.error(ident.Span, "Can't shadow a identifier in the same scope")
		return
	}
	top[ident.Name] = Declared
}

// define marks a declared name as initialized in the innermost scope.
func (r *Resolver) define(ident parser.LoxIdent) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, exists := top[ident.Name]; !exists {
		r.error(ident.Span, fmt.Sprintf("Binding `%s` is not defined", ident.Name))
		return
	}
	top[ident.Name] = Initialized
}

// initialize inserts a name straight into the innermost scope as
// Initialized. Used for the implicit `this` and `super` bindings.
func (r *Resolver) initialize(name string) {
	r.scopes[len(r.scopes)-1][name] = Initialized
}

// query reports whether the innermost scope holds the name in exactly
// the given state.
func (r *Resolver) query(ident parser.LoxIdent, expected BindingState) bool {
	if len(r.scopes) == 0 {
		return false
	}
	state, ok := r.scopes[len(r.scopes)-1][ident.Name]
	return ok && state == expected
}

// resolveBinding walks the scope stack from innermost outward; on
// finding the name at depth d it publishes (ident id, d) to the
// evaluator. Names found nowhere are left unresolved and the
// interpreter treats them as globals.
func (r *Resolver) resolveBinding(ident parser.LoxIdent) {
	for depth := 0; depth < len(r.scopes); depth++ {
		scope := r.scopes[len(r.scopes)-1-depth]
		if _, ok := scope[ident.Name]; ok {
			r.evaluator.ResolveLocal(ident, depth)
			return
		}
	}
}

// resolveFunction resolves a function declaration's parameters and body
// in one fresh scope, tracking the enclosing function kind for return
// checks.
func (r *Resolver) resolveFunction(decl *parser.FunctionStatementNode, state FunctionState) {
	oldFunctionState := r.function
	r.function = state

	r.scoped(func() {
		for _, param := range decl.Params {
			r.declare(param)
			r.define(param)
		}
		r.resolveStmts(decl.Body)
	})

	r.function = oldFunctionState
}

// beginScope pushes a fresh scope. Callers of beginScope must also call
// endScope; prefer scoped.
func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]BindingState))
}

// endScope pops the innermost scope.
func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// scoped runs inner inside one fresh scope.
func (r *Resolver) scoped(inner func()) {
	r.beginScope()
	inner()
	r.endScope()
}

// error records a diagnostic.
func (r *Resolver) error(span lexer.Span, message string) {
	r.errors = append(r.errors, &ResolveError{Message: message, Span: span})
}
