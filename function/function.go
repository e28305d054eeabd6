/*
File    : go-lox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Function represents a user-defined function object in Lox.
// It pairs the function's declaration with the scope in which it was
// defined (for closure support) and remembers whether it is a class
// initializer, whose return value is always the instance.
//
// Fields:
//   - Decl: The function declaration node: name, parameters, and body.
//     Bound copies of a method share the same declaration, so the
//     identifier ids inside it (and therefore the resolver's distance
//     table entries) keep applying.
//   - Closure: A pointer to the scope in which the function was defined.
//     This enables closure behavior, allowing the function to access and
//     mutate variables from its enclosing scope even after that scope
//     has finished executing.
//   - IsInit: Whether this function is a class `init` method. Initializer
//     invocations ignore the body's return value and yield the `this`
//     bound in the closure instead.
type Function struct {
	Decl    *parser.FunctionStatementNode // Function declaration (name, params, body)
	Closure *scope.Scope                  // Captured scope for closures
	IsInit  bool                          // Whether this is a class initializer
}

// GetType returns the type identifier for this Function object.
// This implements the objects.LoxObject interface.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the display representation of the function.
// The format is: "<fun functionName>"
func (f *Function) ToString() string {
	return fmt.Sprintf("<fun %s>", f.Decl.Name.Name)
}

// ToObject returns the debug representation of the function
// (same as the display form).
func (f *Function) ToObject() string {
	return f.ToString()
}

// Arity returns the number of parameters the function declares.
// This implements the objects.Callable interface.
func (f *Function) Arity() int {
	return len(f.Decl.Params)
}

// Bind produces a copy of this function whose closure has `this` bound
// to the given instance, one frame inside the original closure. The
// declaration (and with it every identifier id) is shared, so the
// resolver's recorded distances keep working for the bound copy: the
// extra `this` frame is exactly the scope the resolver accounted for
// when it resolved the method body.
func (f *Function) Bind(instance *Instance) *Function {
	env := scope.NewScope(f.Closure)
	env.Define("this", instance)
	return &Function{
		Decl:    f.Decl,
		Closure: env,
		IsInit:  f.IsInit,
	}
}
