// Package env implements the lexical environment chain: a mapping from
// identifier to value, plus an optional parent, the way the language spec
// describes it and the way the teacher's scope.Scope walks a parent chain
// for lookup. Unlike that teacher, there is no Consts/LetVars/LetTypes
// bookkeeping — this language has no such concepts — and closures capture
// an environment by holding a pointer to it directly rather than copying
// it, since the spec requires that a closure "extend the lifetime of its
// enclosing environment" rather than snapshot it.
package env

import "github.com/nfiedler-labs/lumen/object"

// Environment is one link of the lexical scope chain. New links are
// created at function entry, at let entry, and once at interpreter
// startup for the root. Go's garbage collector retains an environment for
// as long as any closure (or child environment) still references it,
// which is the reference-counting behavior the spec's design notes call
// for — no manual bookkeeping is needed, only the discipline of never
// embedding an Environment by value inside a Value that also contains it.
type Environment struct {
	vars   map[string]object.Value
	parent *Environment
}

// New creates an environment with the given parent (nil for the root).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Value), parent: parent}
}

// Get walks the parent chain looking for name, returning ok=false if no
// enclosing scope defines it.
func (e *Environment) Get(name string) (object.Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name to v in this environment specifically, shadowing any
// binding of the same name in an enclosing scope.
func (e *Environment) Define(name string, v object.Value) {
	e.vars[name] = v
}

// Parent returns the enclosing environment, or nil for the root.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// NewChild opens a fresh scope with e as parent, returned through the
// object.Environment interface so package object (and anything built on
// it) never needs to import env directly.
func (e *Environment) NewChild() object.Environment {
	return New(e)
}
