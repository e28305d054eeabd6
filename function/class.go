/*
File    : go-lox/function/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
)

// Class represents a Lox class value: a name, a method table, and an
// optional super-class. A class is itself callable; invoking it
// constructs an Instance and runs its `init` method when one is defined.
type Class struct {
	Name       parser.LoxIdent      // The class name
	Methods    map[string]*Function // Method table (name to unbound method)
	SuperClass *Class               // The super-class, or nil
}

// GetType returns the type identifier for this Class object.
func (c *Class) GetType() objects.LoxType {
	return objects.ClassType
}

// ToString returns the display representation of the class.
// The format is: "<class Name>"
func (c *Class) ToString() string {
	return fmt.Sprintf("<class %s>", c.Name.Name)
}

// ToObject returns the debug representation of the class
// (same as the display form).
func (c *Class) ToObject() string {
	return c.ToString()
}

// Arity returns the number of arguments class construction expects:
// the arity of the `init` method, or zero when there is none.
// This implements the objects.Callable interface.
func (c *Class) Arity() int {
	if init, ok := c.GetMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// GetMethod looks a method up by name, walking the super-class chain in
// declaration order when the class itself does not define it.
//
// Returns:
//   - *Function: The unbound method (if found)
//   - bool: true if the method exists on this class or any ancestor
func (c *Class) GetMethod(name string) (*Function, bool) {
	if method, ok := c.Methods[name]; ok {
		return method, true
	}
	if c.SuperClass != nil {
		return c.SuperClass.GetMethod(name)
	}
	return nil, false
}

// Instance represents an instance of a Lox class: a reference to its
// class and a mutable property map. Properties are interior-mutable so
// that any holder of the instance observes writes, matching the shared
// single-threaded execution model.
type Instance struct {
	Class      *Class                       // The constructing class
	Properties map[string]objects.LoxObject // Own properties (mutable)
}

// NewInstance creates a fresh instance of the given class with no
// properties set. The `init` method, when present, is run by the
// evaluator right after construction.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:      class,
		Properties: make(map[string]objects.LoxObject),
	}
}

// GetType returns the type identifier for this Instance object.
func (inst *Instance) GetType() objects.LoxType {
	return objects.ObjectType
}

// ToString returns the display representation of the instance, listing
// its properties in sorted order for stable output.
//
// Example: "<object Counter {
//	  n: 12
//	}>"
func (inst *Instance) ToString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<object %s {", inst.Class.Name.Name)

	names := make([]string, 0, len(inst.Properties))
	for name := range inst.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if i == 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "  %s: %s\n", name, inst.Properties[name].ToObject())
	}
	sb.WriteString("}>")
	return sb.String()
}

// ToObject returns the debug representation of the instance
// (same as the display form).
func (inst *Instance) ToObject() string {
	return inst.ToString()
}

// Get reads a property or method from the instance. Lookup order is the
// instance's own properties first, then the class's method table
// (including the super-class chain), with the found method bound to this
// instance.
//
// Returns:
//   - objects.LoxObject: The property value or bound method (if found)
//   - bool: true when the name resolved; false means the evaluator
//     should report an undefined-property error
func (inst *Instance) Get(name string) (objects.LoxObject, bool) {
	if value, ok := inst.Properties[name]; ok {
		return value, true
	}
	if method, ok := inst.GetBoundMethod(name); ok {
		return method, true
	}
	return nil, false
}

// Set writes a property on the instance. Writes always target the
// instance's own property map, even when a method of the same name
// exists on the class.
func (inst *Instance) Set(name string, value objects.LoxObject) {
	inst.Properties[name] = value
}

// GetBoundMethod looks up a method through the class chain and binds it
// to this instance, so `this` inside the body refers to the receiver.
func (inst *Instance) GetBoundMethod(name string) (*Function, bool) {
	if method, ok := inst.Class.GetMethod(name); ok {
		return method.Bind(inst), true
	}
	return nil, false
}
