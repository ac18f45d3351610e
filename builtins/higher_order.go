package builtins

import (
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

func higherOrderEntries(apply ApplyFunc) []entry {
	return []entry{
		{"map", 2, 2, func(a []object.Value) (object.Value, *lerr.Error) { return mapFn(apply, a) }},
		{"filter", 2, 2, func(a []object.Value) (object.Value, *lerr.Error) { return filterFn(apply, a) }},
		{"reduce", 2, 3, func(a []object.Value) (object.Value, *lerr.Error) { return reduceFn(apply, a) }},
	}
}

func callable(v object.Value) bool {
	switch v.(type) {
	case *object.Closure, *object.Primitive, object.Keyword:
		return true
	default:
		return false
	}
}

func mapFn(apply ApplyFunc, args []object.Value) (object.Value, *lerr.Error) {
	fn := args[0]
	if !callable(fn) {
		return nil, lerr.New(lerr.TypeError, "map: expected a function, got %s", object.TypeOf(fn))
	}
	xs, ok := items(args[1])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "map: expected a list or vector, got %s", object.TypeOf(args[1]))
	}
	out := make([]object.Value, len(xs))
	for i, x := range xs {
		v, err := apply(fn, []object.Value{x})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &object.List{Items: out}, nil
}

func filterFn(apply ApplyFunc, args []object.Value) (object.Value, *lerr.Error) {
	fn := args[0]
	if !callable(fn) {
		return nil, lerr.New(lerr.TypeError, "filter: expected a function, got %s", object.TypeOf(fn))
	}
	xs, ok := items(args[1])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "filter: expected a list or vector, got %s", object.TypeOf(args[1]))
	}
	var out []object.Value
	for _, x := range xs {
		v, err := apply(fn, []object.Value{x})
		if err != nil {
			return nil, err
		}
		if object.Truthy(v) {
			out = append(out, x)
		}
	}
	return &object.List{Items: out}, nil
}

func reduceFn(apply ApplyFunc, args []object.Value) (object.Value, *lerr.Error) {
	fn := args[0]
	if !callable(fn) {
		return nil, lerr.New(lerr.TypeError, "reduce: expected a function, got %s", object.TypeOf(fn))
	}
	var acc object.Value
	var xs []object.Value
	if len(args) == 3 {
		acc = args[1]
		seq, ok := items(args[2])
		if !ok {
			return nil, lerr.New(lerr.TypeError, "reduce: expected a list or vector, got %s", object.TypeOf(args[2]))
		}
		xs = seq
	} else {
		seq, ok := items(args[1])
		if !ok {
			return nil, lerr.New(lerr.TypeError, "reduce: expected a list or vector, got %s", object.TypeOf(args[1]))
		}
		if len(seq) == 0 {
			return nil, lerr.New(lerr.RuntimeError, "reduce: empty sequence with no initial value")
		}
		acc, xs = seq[0], seq[1:]
	}
	for _, x := range xs {
		v, err := apply(fn, []object.Value{acc, x})
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}
