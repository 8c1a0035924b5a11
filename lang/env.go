package lang

import (
	"maps"
	"slices"
)

// Env is a mutable mapping from identifier to Value with a link to the
// enclosing scope. Lookup walks the chain from innermost to the global
// scope; first match wins.
//
// Environments are shared by reference: a closure holds its defining Env,
// which keeps that scope (and its parents) alive for as long as the closure
// exists. The global scope has no parent and lives for the session.
type Env struct {
	vars   map[string]Value
	parent *Env
}

// NewEnv creates a scope chained to parent. A nil parent creates a global
// scope.
func NewEnv(parent *Env) *Env {
	return &Env{
		vars:   make(map[string]Value),
		parent: parent,
	}
}

// Get resolves name through the scope chain.
func (e *Env) Get(name string) (Value, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.vars[name]; ok {
			return v, true
		}
	}

	return Value{}, false
}

// Set binds name in this scope, shadowing any binding in an enclosing scope.
func (e *Env) Set(name string, v Value) {
	e.vars[name] = v
}

// Names returns the names bound in this scope only, sorted.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// Snapshot returns a copy of this scope's bindings. Mutating the returned
// map does not affect the scope.
func (e *Env) Snapshot() map[string]Value {
	return maps.Clone(e.vars)
}

// Len returns the number of names bound in this scope only.
func (e *Env) Len() int { return len(e.vars) }

// Reset removes every binding from this scope. Enclosing scopes are
// untouched.
func (e *Env) Reset() {
	clear(e.vars)
}
