package builtins

import (
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

func collectionEntries() []entry {
	return []entry{
		{"list", 0, -1, func(a []object.Value) (object.Value, *lerr.Error) {
			items := make([]object.Value, len(a))
			copy(items, a)
			return &object.List{Items: items}, nil
		}},
		{"cons", 2, 2, consFn},
		{"car", 1, 1, carFn},
		{"cdr", 1, 1, cdrFn},
		{"vec", 0, -1, func(a []object.Value) (object.Value, *lerr.Error) {
			items := make([]object.Value, len(a))
			copy(items, a)
			return &object.Vector{Items: items}, nil
		}},
		{"nth", 2, 2, nthFn},
		{"length", 1, 1, lengthFn},
		{"reverse", 1, 1, reverseFn},
		{"concat", 0, -1, concatFn},
		{"empty?", 1, 1, emptyFn},
		{"get", 2, 2, getFn},
		{"assoc", 3, 3, assocFn},
	}
}

func items(v object.Value) ([]object.Value, bool) {
	switch t := v.(type) {
	case *object.List:
		return t.Items, true
	case *object.Vector:
		return t.Items, true
	default:
		return nil, false
	}
}

func consFn(args []object.Value) (object.Value, *lerr.Error) {
	rest, ok := items(args[1])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "cons: expected a list as the second argument, got %s", object.TypeOf(args[1]))
	}
	out := make([]object.Value, 0, len(rest)+1)
	out = append(out, args[0])
	out = append(out, rest...)
	return &object.List{Items: out}, nil
}

func carFn(args []object.Value) (object.Value, *lerr.Error) {
	xs, ok := items(args[0])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "car: expected a list or vector, got %s", object.TypeOf(args[0]))
	}
	if len(xs) == 0 {
		return nil, lerr.New(lerr.RuntimeError, "car: empty sequence")
	}
	return xs[0], nil
}

func cdrFn(args []object.Value) (object.Value, *lerr.Error) {
	xs, ok := items(args[0])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "cdr: expected a list or vector, got %s", object.TypeOf(args[0]))
	}
	if len(xs) == 0 {
		return &object.List{}, nil
	}
	rest := make([]object.Value, len(xs)-1)
	copy(rest, xs[1:])
	return &object.List{Items: rest}, nil
}

func nthFn(args []object.Value) (object.Value, *lerr.Error) {
	xs, ok := items(args[0])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "nth: expected a list or vector, got %s", object.TypeOf(args[0]))
	}
	n, ok := args[1].(object.Number)
	if !ok {
		return nil, lerr.New(lerr.TypeError, "nth: expected a number index, got %s", object.TypeOf(args[1]))
	}
	i := int(n)
	if i < 0 || i >= len(xs) {
		return nil, lerr.New(lerr.RuntimeError, "nth: index %d out of bounds for length %d", i, len(xs))
	}
	return xs[i], nil
}

func lengthFn(args []object.Value) (object.Value, *lerr.Error) {
	switch t := args[0].(type) {
	case *object.List:
		return object.Number(len(t.Items)), nil
	case *object.Vector:
		return object.Number(len(t.Items)), nil
	case *object.Map:
		return object.Number(len(t.Entries)), nil
	case object.String:
		return object.Number(len([]rune(string(t)))), nil
	default:
		return nil, lerr.New(lerr.TypeError, "length: expected a list, vector, map, or string, got %s", object.TypeOf(args[0]))
	}
}

func reverseFn(args []object.Value) (object.Value, *lerr.Error) {
	xs, ok := items(args[0])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "reverse: expected a list or vector, got %s", object.TypeOf(args[0]))
	}
	out := make([]object.Value, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	if _, isVec := args[0].(*object.Vector); isVec {
		return &object.Vector{Items: out}, nil
	}
	return &object.List{Items: out}, nil
}

func concatFn(args []object.Value) (object.Value, *lerr.Error) {
	var out []object.Value
	for _, a := range args {
		xs, ok := items(a)
		if !ok {
			return nil, lerr.New(lerr.TypeError, "concat: expected a list or vector, got %s", object.TypeOf(a))
		}
		out = append(out, xs...)
	}
	return &object.List{Items: out}, nil
}

func emptyFn(args []object.Value) (object.Value, *lerr.Error) {
	switch t := args[0].(type) {
	case *object.List:
		return object.Bool(len(t.Items) == 0), nil
	case *object.Vector:
		return object.Bool(len(t.Items) == 0), nil
	case *object.Map:
		return object.Bool(len(t.Entries) == 0), nil
	case object.String:
		return object.Bool(len(t) == 0), nil
	default:
		return nil, lerr.New(lerr.TypeError, "empty?: expected a list, vector, map, or string, got %s", object.TypeOf(args[0]))
	}
}

func getFn(args []object.Value) (object.Value, *lerr.Error) {
	m, ok := args[0].(*object.Map)
	if !ok {
		return nil, lerr.New(lerr.TypeError, "get: expected a map, got %s", object.TypeOf(args[0]))
	}
	key, ok := object.KeyText(args[1])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "get: expected a string or keyword key, got %s", object.TypeOf(args[1]))
	}
	return m.Get(key), nil
}

func assocFn(args []object.Value) (object.Value, *lerr.Error) {
	m, ok := args[0].(*object.Map)
	if !ok {
		return nil, lerr.New(lerr.TypeError, "assoc: expected a map, got %s", object.TypeOf(args[0]))
	}
	key, ok := object.KeyText(args[1])
	if !ok {
		return nil, lerr.New(lerr.TypeError, "assoc: expected a string or keyword key, got %s", object.TypeOf(args[1]))
	}
	return m.Assoc(key, args[2]), nil
}
