package eval

import (
	"strconv"

	"github.com/nfiedler-labs/lumen/ast"
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

// Apply calls fn with the given already-evaluated arguments. It is handed
// to package builtins as the callback higher-order primitives (map,
// filter, reduce) use to invoke a closure or primitive passed to them,
// which is what keeps builtins from needing to import eval back.
func (in *Interpreter) Apply(fn object.Value, args []object.Value) (object.Value, *lerr.Error) {
	return in.applyAt(fn, args, ast.Pos{})
}

func (in *Interpreter) applyAt(fn object.Value, args []object.Value, pos ast.Pos) (object.Value, *lerr.Error) {
	switch f := fn.(type) {
	case *object.Primitive:
		if len(args) < f.MinArgs || (f.MaxArgs >= 0 && len(args) > f.MaxArgs) {
			return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "%s: expected %s, got %d", f.Name, arityText(f.MinArgs, f.MaxArgs), len(args))
		}
		return f.Fn(args)
	case *object.Closure:
		name := f.Name
		if name == "" {
			name = "fn"
		}
		child := f.Env.NewChild()
		if f.Variadic {
			child.Define(f.Params[0], &object.List{Items: args})
		} else {
			if len(args) != len(f.Params) {
				return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "%s: expected %d argument(s), got %d", name, len(f.Params), len(args))
			}
			for i, p := range f.Params {
				child.Define(p, args[i])
			}
		}
		return in.evalBody(f.Body, child)
	case object.Keyword:
		// A keyword used as the head of a call form is a self-applying
		// accessor: (:k m) == (get m :k).
		if len(args) != 1 {
			return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "keyword accessor: expected exactly 1 argument, got %d", len(args))
		}
		m, ok := args[0].(*object.Map)
		if !ok {
			return nil, lerr.NewAt(lerr.TypeError, toLerrPos(pos), "keyword accessor: expected a map, got %s", object.TypeOf(args[0]))
		}
		return m.Get(string(f)), nil
	default:
		return nil, lerr.NewAt(lerr.TypeError, toLerrPos(pos), "value of type %s is not callable", object.TypeOf(fn))
	}
}

func arityText(min, max int) string {
	if max < 0 {
		if min == 0 {
			return "any number of arguments"
		}
		return "at least " + strconv.Itoa(min) + " argument(s)"
	}
	if min == max {
		return "exactly " + strconv.Itoa(min) + " argument(s)"
	}
	return "between " + strconv.Itoa(min) + " and " + strconv.Itoa(max) + " arguments"
}
