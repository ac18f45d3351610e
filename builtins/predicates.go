package builtins

import (
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

func predicateEntries() []entry {
	return []entry{
		typePredicate("nil?", "nil"),
		typePredicate("number?", "number"),
		typePredicate("string?", "string"),
		typePredicate("keyword?", "keyword"),
		typePredicate("list?", "list"),
		typePredicate("vector?", "vector"),
		typePredicate("map?", "map"),
		typePredicate("fn?", "fn"),
		{"true?", 1, 1, func(a []object.Value) (object.Value, *lerr.Error) {
			b, ok := a[0].(object.Bool)
			return object.Bool(ok && bool(b)), nil
		}},
		{"false?", 1, 1, func(a []object.Value) (object.Value, *lerr.Error) {
			b, ok := a[0].(object.Bool)
			return object.Bool(ok && !bool(b)), nil
		}},
		{"not", 1, 1, func(a []object.Value) (object.Value, *lerr.Error) {
			return object.Bool(!object.Truthy(a[0])), nil
		}},
		{"type-of", 1, 1, func(a []object.Value) (object.Value, *lerr.Error) {
			return object.String(object.TypeOf(a[0])), nil
		}},
	}
}

func typePredicate(name, want string) entry {
	return entry{name, 1, 1, func(a []object.Value) (object.Value, *lerr.Error) {
		return object.Bool(object.TypeOf(a[0]) == want), nil
	}}
}
