/*
File    : go-lox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-lox/objects"

// Scope defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical
// scoping and closures. Each scope owns its variable bindings and links
// to the enclosing scope. This structure supports:
// - Closures: functions keep a pointer to their defining scope, which
//   stays alive (and mutable) after the block that created it returns
// - Shared frames: several closures may hold the same *Scope, so a write
//   through one is observed by all of them
// - Distance-indexed access: the resolver computes how many frames up a
//   binding lives, and ReadAt/AssignAt jump straight to that frame
//
// The chain is traversed upward (from child to parent) during plain
// lookup; resolved locals skip the walk entirely via Ancestor.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LoxObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent
// scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	functionScope := NewScope(globalScope) // Create function scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LoxObject),
		Parent:    parent,
	}
}

// Define creates (or overwrites) a variable binding in this scope only.
// Re-defining an existing name in the same frame silently re-binds it;
// the resolver forbids that for locals, and globals are allowed to do it.
func (s *Scope) Define(varName string, obj objects.LoxObject) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	s.Variables[varName] = obj
}

// LookUp searches for a variable by name in this scope and all parent
// scopes, returning the nearest binding.
//
// Returns:
//   - objects.LoxObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.LoxObject, bool) {
	for scp := s; scp != nil; scp = scp.Parent {
		if obj, ok := scp.Variables[varName]; ok {
			return obj, true
		}
	}
	return nil, false
}

// Assign updates an existing variable in the scope where it was
// originally defined, walking the chain from this scope upward. Unlike
// Define it never creates a new binding: assigning to a name with no
// binding anywhere in the chain fails, which the evaluator reports as an
// undefined-variable error.
//
// Returns:
//   - bool: true if the variable was found and updated, false otherwise
func (s *Scope) Assign(varName string, obj objects.LoxObject) bool {
	for scp := s; scp != nil; scp = scp.Parent {
		if _, ok := scp.Variables[varName]; ok {
			scp.Variables[varName] = obj
			return true
		}
	}
	return false
}

// Ancestor returns the scope `distance` frames above this one.
// Distance 0 is the scope itself. The resolver guarantees that resolved
// distances stay within the chain, so a nil result indicates an
// interpreter bug rather than a user error.
func (s *Scope) Ancestor(distance int) *Scope {
	scp := s
	for i := 0; i < distance && scp != nil; i++ {
		scp = scp.Parent
	}
	return scp
}

// ReadAt reads a variable from the frame exactly `distance` steps up the
// chain, without searching. This is the fast path for resolved locals:
// by the resolver's invariant the frame at that distance has the name
// bound.
func (s *Scope) ReadAt(distance int, varName string) (objects.LoxObject, bool) {
	scp := s.Ancestor(distance)
	if scp == nil {
		return nil, false
	}
	obj, ok := scp.Variables[varName]
	return obj, ok
}

// AssignAt writes a variable into the frame exactly `distance` steps up
// the chain, without searching.
func (s *Scope) AssignAt(distance int, varName string, obj objects.LoxObject) bool {
	scp := s.Ancestor(distance)
	if scp == nil {
		return false
	}
	scp.Variables[varName] = obj
	return true
}
