package builtins

import (
	"math"

	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

func arithmeticEntries() []entry {
	return []entry{
		{"+", 0, -1, func(a []object.Value) (object.Value, *lerr.Error) { return reduceNumbers(a, 0, func(x, y float64) float64 { return x + y }) }},
		{"*", 0, -1, func(a []object.Value) (object.Value, *lerr.Error) { return reduceNumbers(a, 1, func(x, y float64) float64 { return x * y }) }},
		{"-", 1, -1, subtract},
		{"/", 1, -1, divide},
		{"%", 2, 2, modulo},
		{"min", 1, -1, func(a []object.Value) (object.Value, *lerr.Error) { return extremum(a, "min", func(x, y float64) bool { return x < y }) }},
		{"max", 1, -1, func(a []object.Value) (object.Value, *lerr.Error) { return extremum(a, "max", func(x, y float64) bool { return x > y }) }},
		{"=", 2, -1, numEq},
		{"<", 2, -1, func(a []object.Value) (object.Value, *lerr.Error) { return ordered(a, "<", func(x, y float64) bool { return x < y }) }},
		{">", 2, -1, func(a []object.Value) (object.Value, *lerr.Error) { return ordered(a, ">", func(x, y float64) bool { return x > y }) }},
		{"<=", 2, -1, func(a []object.Value) (object.Value, *lerr.Error) { return ordered(a, "<=", func(x, y float64) bool { return x <= y }) }},
		{">=", 2, -1, func(a []object.Value) (object.Value, *lerr.Error) { return ordered(a, ">=", func(x, y float64) bool { return x >= y }) }},
	}
}

func asNumber(name string, v object.Value) (float64, *lerr.Error) {
	n, ok := v.(object.Number)
	if !ok {
		return 0, lerr.New(lerr.TypeError, "%s: expected a number, got %s", name, object.TypeOf(v))
	}
	return float64(n), nil
}

func reduceNumbers(args []object.Value, identity float64, op func(x, y float64) float64) (object.Value, *lerr.Error) {
	acc := identity
	for _, a := range args {
		n, err := asNumber("arithmetic", a)
		if err != nil {
			return nil, err
		}
		acc = op(acc, n)
	}
	return object.Number(acc), nil
}

func subtract(args []object.Value) (object.Value, *lerr.Error) {
	first, err := asNumber("-", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return object.Number(-first), nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := asNumber("-", a)
		if err != nil {
			return nil, err
		}
		acc -= n
	}
	return object.Number(acc), nil
}

func divide(args []object.Value) (object.Value, *lerr.Error) {
	first, err := asNumber("/", args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if first == 0 {
			return nil, lerr.New(lerr.RuntimeError, "/: division by zero")
		}
		return object.Number(1 / first), nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := asNumber("/", a)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, lerr.New(lerr.RuntimeError, "/: division by zero")
		}
		acc /= n
	}
	return object.Number(acc), nil
}

func modulo(args []object.Value) (object.Value, *lerr.Error) {
	x, err := asNumber("%", args[0])
	if err != nil {
		return nil, err
	}
	y, err := asNumber("%", args[1])
	if err != nil {
		return nil, err
	}
	if y == 0 {
		return nil, lerr.New(lerr.RuntimeError, "%%: division by zero")
	}
	return object.Number(math.Mod(x, y)), nil
}

func extremum(args []object.Value, name string, better func(x, y float64) bool) (object.Value, *lerr.Error) {
	best, err := asNumber(name, args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := asNumber(name, a)
		if err != nil {
			return nil, err
		}
		if better(n, best) {
			best = n
		}
	}
	return object.Number(best), nil
}

func numEq(args []object.Value) (object.Value, *lerr.Error) {
	for i := 1; i < len(args); i++ {
		if !object.Equal(args[i-1], args[i]) {
			return object.Bool(false), nil
		}
	}
	return object.Bool(true), nil
}

func ordered(args []object.Value, name string, cmp func(x, y float64) bool) (object.Value, *lerr.Error) {
	for i := 1; i < len(args); i++ {
		a, err := asNumber(name, args[i-1])
		if err != nil {
			return nil, err
		}
		b, err := asNumber(name, args[i])
		if err != nil {
			return nil, err
		}
		if !cmp(a, b) {
			return object.Bool(false), nil
		}
	}
	return object.Bool(true), nil
}
