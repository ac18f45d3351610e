// Package builtins populates the root environment with the primitive
// table: the host-supplied functions every program starts with, grounded
// on the teacher's swatcl/functions.go functionTable pattern (a
// map[string]func registered once into the environment) generalized from
// Tcl's numeric-function table to the full primitive set this language's
// spec requires.
package builtins

import (
	"github.com/nfiedler-labs/lumen/env"
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

// ApplyFunc invokes a callable value (closure or primitive) with already
// evaluated arguments. It is supplied by package eval so the higher-order
// primitives (map, filter, reduce) can call back into the evaluator
// without builtins importing eval, which would cycle (eval imports
// builtins to populate the root environment).
type ApplyFunc func(fn object.Value, args []object.Value) (object.Value, *lerr.Error)

// GensymFunc mints a fresh identifier, backed by the interpreter's single
// global counter, so that (gensym) and macro hygiene renaming draw from
// the same sequence.
type GensymFunc func(prefix string) object.Value

type entry struct {
	name    string
	minArgs int
	maxArgs int // -1 means unbounded
	fn      func(args []object.Value) (object.Value, *lerr.Error)
}

// Populate defines every primitive in root.
func Populate(root *env.Environment, apply ApplyFunc, gensym GensymFunc, write WriteFunc) {
	for _, e := range arithmeticEntries() {
		define(root, e)
	}
	for _, e := range collectionEntries() {
		define(root, e)
	}
	for _, e := range predicateEntries() {
		define(root, e)
	}
	for _, e := range printEntries(write) {
		define(root, e)
	}
	for _, e := range higherOrderEntries(apply) {
		define(root, e)
	}
	root.Define("gensym", &object.Primitive{
		Name: "gensym", MinArgs: 0, MaxArgs: 1,
		Fn: func(args []object.Value) (object.Value, *lerr.Error) {
			prefix := "g"
			if len(args) == 1 {
				s, ok := object.KeyText(args[0])
				if !ok {
					return nil, lerr.New(lerr.TypeError, "gensym: expected a string prefix, got %s", object.TypeOf(args[0]))
				}
				prefix = s
			}
			return gensym(prefix), nil
		},
	})
}

func define(root *env.Environment, e entry) {
	root.Define(e.name, &object.Primitive{Name: e.name, MinArgs: e.minArgs, MaxArgs: e.maxArgs, Fn: e.fn})
}
