/*
File    : go-lox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for Lox.
// The Evaluator executes the statement forest the parser produced,
// using the lexical distances the resolver recorded to reach local
// bindings and falling back to the global scope for everything else.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
	"github.com/akashmaji946/go-lox/std"
)

// Evaluator holds the state for evaluating Lox AST nodes: the global
// scope, the current scope, the resolver's distance table, and the
// output writer. It serves as the main execution engine for the
// interpreter.
//
// Fields:
//   - Globals: The global scope, pre-populated with the native functions
//     from the std package. Unresolved identifiers are looked up here.
//   - Scp: The current scope, swapped on block entry/exit and around
//     function invocations.
//   - Locals: The distance table the resolver filled in: identifier
//     occurrence id to the number of frames between the use-site and the
//     binding. Identifiers absent from this table are globals.
//   - Writer: Output writer for the print statement (default: os.Stdout)
type Evaluator struct {
	Globals *scope.Scope                // Global scope with natives
	Scp     *scope.Scope                // Current scope
	Locals  map[parser.LoxIdentID]int   // Resolved lexical distances
	Writer  io.Writer                   // Output for print statements
}

// NewEvaluator creates and initializes a new Evaluator instance with
// default configuration: a fresh global scope holding every native
// function from the std registry (currently just `clock`), an empty
// distance table, and stdout as the output writer.
//
// Example usage:
//
//	ev := eval.NewEvaluator()
//	stmts, errs := parser.NewParser(src).Parse()
//	resolver.NewResolver(ev).Resolve(stmts)
//	ev.Interpret(stmts)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	for _, builtin := range std.Builtins {
		globals.Define(builtin.Name, builtin)
	}
	return &Evaluator{
		Globals: globals,
		Scp:     globals,
		Locals:  make(map[parser.LoxIdentID]int),
		Writer:  os.Stdout, // Default to stdout
	}
}

// SetWriter configures the output destination for print statements.
// Redirecting output to a buffer is how the tests verify program
// behavior.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// ResolveLocal records the lexical distance for one identifier
// occurrence. The resolver calls this for every local variable, `this`
// and `super` reference it can bind; identifiers it never reports stay
// global.
func (e *Evaluator) ResolveLocal(ident parser.LoxIdent, depth int) {
	e.Locals[ident.ID] = depth
}

// Interpret executes the given statements, returning the runtime error
// that aborted execution, or nil on success.
//
// The internal error channel also carries the return control-flow
// signal; that signal is consumed by user-function invocations and can
// only reach this level through an interpreter bug, in which case we
// fail loudly rather than mask it.
func (e *Evaluator) Interpret(stmts []parser.StatementNode) *RuntimeError {
	err := e.evalStatements(stmts)
	if err == nil {
		return nil
	}
	if runtimeErr, ok := err.(*RuntimeError); ok {
		return runtimeErr
	}
	panic("go-lox: return signal escaped the top level")
}

// evalStatements executes statements in order, stopping at the first
// error or control-flow signal.
func (e *Evaluator) evalStatements(stmts []parser.StatementNode) error {
	for _, stmt := range stmts {
		if err := e.evalStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// evalBlockIn executes statements with the given scope as the current
// one, restoring the previous scope afterwards whether execution
// completed normally or was unwound by an error or a return signal.
func (e *Evaluator) evalBlockIn(stmts []parser.StatementNode, newScope *scope.Scope) error {
	oldScope := e.Scp
	e.Scp = newScope
	err := e.evalStatements(stmts)
	e.Scp = oldScope
	return err
}

// lookupVariable reads a variable, `this`, or `super` reference.
// If the resolver recorded a distance for the occurrence, the value is
// read from exactly that many frames up the current scope chain;
// otherwise the name is looked up in the global scope. An unbound
// global is an UndefinedVariable error.
func (e *Evaluator) lookupVariable(ident parser.LoxIdent) (objects.LoxObject, error) {
	if distance, ok := e.Locals[ident.ID]; ok {
		if obj, ok := e.Scp.ReadAt(distance, ident.Name); ok {
			return obj, nil
		}
		// A recorded distance always lands on a frame holding the name
		panic("go-lox: resolved binding missing at recorded distance")
	}
	if obj, ok := e.Globals.LookUp(ident.Name); ok {
		return obj, nil
	}
	return nil, &RuntimeError{Kind: UndefinedVariable, Ident: ident}
}

// assignVariable writes a variable reference, routing through the
// recorded distance when there is one and through the global scope
// otherwise. Assignment never creates a binding: writing an undefined
// global is an UndefinedVariable error.
func (e *Evaluator) assignVariable(ident parser.LoxIdent, value objects.LoxObject) error {
	if distance, ok := e.Locals[ident.ID]; ok {
		if e.Scp.AssignAt(distance, ident.Name, value) {
			return nil
		}
		panic("go-lox: resolved binding missing at recorded distance")
	}
	if e.Globals.Assign(ident.Name, value) {
		return nil
	}
	return &RuntimeError{Kind: UndefinedVariable, Ident: ident}
}

// CallFunction invokes a callable value with already-evaluated
// arguments. The caller has verified the arity. Dispatch covers the
// three callable shapes: user functions, classes (construction), and
// native functions.
func (e *Evaluator) CallFunction(callee objects.LoxObject, args []objects.LoxObject) (objects.LoxObject, error) {
	switch callee := callee.(type) {
	case *function.Function:
		return e.callUserFunction(callee, args)
	case *function.Class:
		return e.callClass(callee, args)
	case *std.Builtin:
		result, err := callee.Callback(args...)
		if err != nil {
			return nil, &RuntimeError{Kind: UnsupportedType, Message: err.Error()}
		}
		return result, nil
	default:
		panic("go-lox: CallFunction invoked with a non-callable value")
	}
}

// callUserFunction runs a user function: a fresh scope enclosing the
// function's closure gets one binding per parameter, then the body
// executes in it. Normal completion yields nil; a caught return signal
// yields the returned value. Class initializers ignore both and yield
// the `this` bound in their closure, though runtime errors still
// propagate.
func (e *Evaluator) callUserFunction(fn *function.Function, args []objects.LoxObject) (objects.LoxObject, error) {
	env := scope.NewScope(fn.Closure)
	for i, param := range fn.Decl.Params {
		env.Define(param.Name, args[i])
	}

	var result objects.LoxObject = &objects.Nil{}
	if err := e.evalBlockIn(fn.Decl.Body, env); err != nil {
		signal, ok := err.(*returnSignal)
		if !ok {
			return nil, err
		}
		result = signal.value
	}

	if fn.IsInit {
		// An initializer always yields the instance, even on an early
		// bare `return;` — the resolver already rejected value returns
		this, ok := fn.Closure.ReadAt(0, "this")
		if !ok {
			panic("go-lox: initializer closure has no `this` binding")
		}
		return this, nil
	}
	return result, nil
}

// callClass constructs an instance of the class and runs its `init`
// method when one is defined anywhere in the class chain.
func (e *Evaluator) callClass(class *function.Class, args []objects.LoxObject) (objects.LoxObject, error) {
	instance := function.NewInstance(class)
	if init, ok := instance.GetBoundMethod("init"); ok {
		if _, err := e.callUserFunction(init, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
