/*
File    : go-lox/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std holds the native (built-in) functions of the Lox runtime.
// The standard library is deliberately tiny: a single `clock` native.
// The evaluator registers every entry of Builtins into its global scope
// at construction time.
package std

import (
	"fmt"
	"time"

	"github.com/akashmaji946/go-lox/objects"
)

// Builtin represents a native function implemented in Go and exposed to
// Lox programs as an ordinary callable value.
//
// Fields:
//   - Name: The global name the function is bound under
//   - ArgCount: The exact number of arguments the function accepts
//   - Callback: The Go implementation invoked with evaluated arguments
type Builtin struct {
	Name     string                                                    // Global binding name
	ArgCount int                                                       // Expected argument count
	Callback func(args ...objects.LoxObject) (objects.LoxObject, error) // Native implementation
}

// GetType returns the type identifier for this Builtin object.
// Native functions report the same type as user functions.
func (b *Builtin) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the display representation of the native function.
// The format is: "<fun (native) name>"
func (b *Builtin) ToString() string {
	return fmt.Sprintf("<fun (native) %s>", b.Name)
}

// ToObject returns the debug representation of the native function
// (same as the display form).
func (b *Builtin) ToObject() string {
	return b.ToString()
}

// Arity returns the number of arguments the native expects.
// This implements the objects.Callable interface.
func (b *Builtin) Arity() int {
	return b.ArgCount
}

// Builtins lists every native function registered into the global scope
// of a fresh evaluator.
var Builtins = []*Builtin{
	{Name: "clock", ArgCount: 0, Callback: clock},
}

// clock returns the current wall-clock time in seconds since the Unix
// epoch, as a Lox number. Sub-second precision is preserved in the
// fractional part.
func clock(args ...objects.LoxObject) (objects.LoxObject, error) {
	seconds := float64(time.Now().UnixNano()) / float64(time.Second)
	return &objects.Number{Value: seconds}, nil
}
