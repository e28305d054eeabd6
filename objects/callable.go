/*
File    : go-lox/objects/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

// Callable is the capability shared by every invocable Lox value: user
// functions, native functions, and classes (invoking a class constructs
// an instance). The evaluator checks a call's argument count against
// Arity before dispatching on the concrete value type; the actual
// invocation lives in the eval package, which owns the execution state
// the call needs.
type Callable interface {
	LoxObject
	// Arity returns the number of arguments the value expects.
	// For classes this is the arity of the `init` method, or zero.
	Arity() int
}
