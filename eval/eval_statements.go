/*
File    : go-lox/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalStatement executes one statement, dispatching on the node type.
// The returned error is either a *RuntimeError or the internal return
// signal; both unwind to the nearest handler.
func (e *Evaluator) evalStatement(stmt parser.StatementNode) error {
	switch stmt := stmt.(type) {
	case *parser.DeclarativeStatementNode:
		return e.evalVarDeclaration(stmt)
	case *parser.FunctionStatementNode:
		return e.evalFunDeclaration(stmt)
	case *parser.ClassStatementNode:
		return e.evalClassDeclaration(stmt)
	case *parser.IfStatementNode:
		return e.evalIfStatement(stmt)
	case *parser.WhileLoopStatementNode:
		return e.evalWhileStatement(stmt)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(stmt)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(stmt)
	case *parser.BlockStatementNode:
		return e.evalBlockIn(stmt.Statements, scope.NewScope(e.Scp))
	case *parser.ExpressionStatementNode:
		_, err := e.Eval(stmt.Expr)
		return err
	case *parser.DummyStatementNode:
		// Dummy nodes only exist in failed parses, which hosts never run
		panic("go-lox: dummy statement reached the interpreter")
	default:
		panic(fmt.Sprintf("go-lox: unknown statement node %T", stmt))
	}
}

// evalVarDeclaration evaluates the initializer (or nil when absent) and
// defines the name in the current scope. At global scope a repeated
// declaration silently re-binds; the resolver already rejected
// same-scope redeclarations for locals.
func (e *Evaluator) evalVarDeclaration(stmt *parser.DeclarativeStatementNode) error {
	var value objects.LoxObject = &objects.Nil{}
	if stmt.Init != nil {
		initValue, err := e.Eval(stmt.Init)
		if err != nil {
			return err
		}
		value = initValue
	}
	e.Scp.Define(stmt.Name.Name, value)
	return nil
}

// evalFunDeclaration constructs a user function capturing the current
// scope as its closure and binds it in the current scope. Because the
// closure is the very scope the name lands in, the function can call
// itself recursively.
func (e *Evaluator) evalFunDeclaration(stmt *parser.FunctionStatementNode) error {
	fn := &function.Function{
		Decl:    stmt,
		Closure: e.Scp,
		IsInit:  false,
	}
	e.Scp.Define(stmt.Name.Name, fn)
	return nil
}

// evalClassDeclaration evaluates a class declaration.
//
// With a superclass present, its name is evaluated first and must be a
// class value; the methods then capture an extra scope with `super`
// bound, so super-method lookups inside them resolve at the distance
// the resolver recorded. Each declared method becomes a user function
// closing over that methods scope, flagged as initializer when its name
// is `init`. Finally the class value is bound under the class name in
// the current scope.
func (e *Evaluator) evalClassDeclaration(stmt *parser.ClassStatementNode) error {
	var superClass *function.Class
	methodsScope := e.Scp

	if stmt.SuperName != nil {
		superValue, err := e.lookupVariable(*stmt.SuperName)
		if err != nil {
			return err
		}
		class, ok := superValue.(*function.Class)
		if !ok {
			return unsupportedType(stmt.SuperName.Span,
				"Can only inherit from a class, got type `%s`", superValue.GetType())
		}
		superClass = class

		methodsScope = scope.NewScope(e.Scp)
		methodsScope.Define("super", superClass)
	}

	methods := make(map[string]*function.Function, len(stmt.Methods))
	for _, method := range stmt.Methods {
		methods[method.Name.Name] = &function.Function{
			Decl:    method,
			Closure: methodsScope,
			IsInit:  method.Name.Name == "init",
		}
	}

	class := &function.Class{
		Name:       stmt.Name,
		Methods:    methods,
		SuperClass: superClass,
	}
	e.Scp.Define(stmt.Name.Name, class)
	return nil
}

// evalIfStatement executes the then branch when the condition is
// truthy, the else branch (when present) otherwise.
func (e *Evaluator) evalIfStatement(stmt *parser.IfStatementNode) error {
	condition, err := e.Eval(stmt.Condition)
	if err != nil {
		return err
	}
	if objects.Truthy(condition) {
		return e.evalStatement(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return e.evalStatement(stmt.ElseBranch)
	}
	return nil
}

// evalWhileStatement re-evaluates the condition before every iteration
// and runs the body while it stays truthy.
func (e *Evaluator) evalWhileStatement(stmt *parser.WhileLoopStatementNode) error {
	for {
		condition, err := e.Eval(stmt.Condition)
		if err != nil {
			return err
		}
		if !objects.Truthy(condition) {
			return nil
		}
		if err := e.evalStatement(stmt.Body); err != nil {
			return err
		}
	}
}

// evalReturnStatement evaluates the return value (nil when bare) and
// raises the return control-flow signal, which unwinds until the
// nearest user-function invocation catches it.
func (e *Evaluator) evalReturnStatement(stmt *parser.ReturnStatementNode) error {
	var value objects.LoxObject = &objects.Nil{}
	if stmt.Value != nil {
		returned, err := e.Eval(stmt.Value)
		if err != nil {
			return err
		}
		value = returned
	}
	return &returnSignal{value: value}
}

// evalPrintStatement evaluates the expression and writes its rendering
// to the evaluator's writer. The debug flag (set on REPL auto-prints)
// selects the debug rendering, which quotes strings.
func (e *Evaluator) evalPrintStatement(stmt *parser.PrintStatementNode) error {
	value, err := e.Eval(stmt.Expr)
	if err != nil {
		return err
	}
	if stmt.Debug {
		fmt.Fprintln(e.Writer, value.ToObject())
	} else {
		fmt.Fprintln(e.Writer, value.ToString())
	}
	return nil
}
