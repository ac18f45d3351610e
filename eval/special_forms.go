package eval

import (
	"github.com/nfiedler-labs/lumen/ast"
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/macro"
	"github.com/nfiedler-labs/lumen/object"
)

var specialForms = map[string]bool{
	"def": true, "defn": true, "fn": true, "let": true,
	"if": true, "do": true, "quote": true, "defmacro": true,
}

func isSpecialForm(name string) bool {
	return specialForms[name]
}

func (in *Interpreter) evalSpecialForm(name string, l *ast.List, en object.Environment) (object.Value, *lerr.Error) {
	args := l.Items[1:]
	switch name {
	case "def":
		return in.evalDef(args, en, l.Pos)
	case "defn":
		return in.evalDefn(args, en, l.Pos)
	case "fn":
		return in.evalFn(args, en, l.Pos)
	case "let":
		return in.evalLet(args, en, l.Pos)
	case "if":
		return in.evalIf(args, en, l.Pos)
	case "do":
		return in.evalBody(args, en)
	case "quote":
		if len(args) != 1 {
			return nil, lerr.NewAt(lerr.ArityError, toLerrPos(l.Pos), "quote: expected exactly 1 argument, got %d", len(args))
		}
		return quoteExpr(args[0]), nil
	case "defmacro":
		return in.evalDefmacro(args, l.Pos)
	default:
		return nil, lerr.New(lerr.RuntimeError, "unreachable special form %q", name)
	}
}

func (in *Interpreter) evalDef(args []ast.Expr, en object.Environment, pos ast.Pos) (object.Value, *lerr.Error) {
	if len(args) != 2 {
		return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "def: expected exactly 2 arguments, got %d", len(args))
	}
	sym, ok := args[0].(*ast.Symbol)
	if !ok {
		return nil, lerr.NewAt(lerr.TypeError, toLerrPos(args[0].Position()), "def: first argument must be a symbol")
	}
	v, err := in.Eval(args[1], en)
	if err != nil {
		return nil, err
	}
	// def always binds in the root environment, regardless of the
	// lexical scope it was evaluated from: a top-level binding form.
	in.Root.Define(sym.Name, v)
	return object.Nil, nil
}

func (in *Interpreter) evalDefn(args []ast.Expr, en object.Environment, pos ast.Pos) (object.Value, *lerr.Error) {
	if len(args) < 2 {
		return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "defn: expected a name, a parameter list, and a body")
	}
	sym, ok := args[0].(*ast.Symbol)
	if !ok {
		return nil, lerr.NewAt(lerr.TypeError, toLerrPos(args[0].Position()), "defn: first argument must be a symbol")
	}
	params, variadic, err := paramNames(args[1])
	if err != nil {
		return nil, err
	}
	closure := &object.Closure{
		Name:     sym.Name,
		Params:   params,
		Variadic: variadic,
		Body:     args[2:],
		Env:      en,
	}
	in.Root.Define(sym.Name, closure)
	return object.Nil, nil
}

func (in *Interpreter) evalFn(args []ast.Expr, en object.Environment, pos ast.Pos) (object.Value, *lerr.Error) {
	if len(args) < 1 {
		return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "fn: expected a parameter list and a body")
	}
	params, variadic, err := paramNames(args[0])
	if err != nil {
		return nil, err
	}
	return &object.Closure{
		Params:   params,
		Variadic: variadic,
		Body:     args[1:],
		Env:      en,
	}, nil
}

// paramNames extracts the parameter name list from a fn/defn/defmacro
// parameter spec: a vector of symbols, or a single bare symbol for a
// variadic function whose one parameter is bound the full argument list.
func paramNames(spec ast.Expr) ([]string, bool, *lerr.Error) {
	switch p := spec.(type) {
	case *ast.Symbol:
		return []string{p.Name}, true, nil
	case *ast.Vector:
		names := make([]string, len(p.Items))
		for i, it := range p.Items {
			s, ok := it.(*ast.Symbol)
			if !ok {
				return nil, false, lerr.NewAt(lerr.TypeError, toLerrPos(it.Position()), "parameter list must contain only symbols")
			}
			names[i] = s.Name
		}
		return names, false, nil
	default:
		return nil, false, lerr.NewAt(lerr.TypeError, toLerrPos(spec.Position()), "expected a parameter vector or a single symbol, got %s", ast.Stringify(spec))
	}
}

func (in *Interpreter) evalLet(args []ast.Expr, en object.Environment, pos ast.Pos) (object.Value, *lerr.Error) {
	if len(args) < 1 {
		return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "let: expected a binding vector and a body")
	}
	bindings, ok := args[0].(*ast.Vector)
	if !ok {
		return nil, lerr.NewAt(lerr.TypeError, toLerrPos(args[0].Position()), "let: first argument must be a vector of bindings")
	}
	if len(bindings.Items)%2 != 0 {
		return nil, lerr.NewAt(lerr.ArityError, toLerrPos(bindings.Pos), "let: binding vector must have an even number of elements")
	}
	child := en.NewChild()
	for i := 0; i < len(bindings.Items); i += 2 {
		sym, ok := bindings.Items[i].(*ast.Symbol)
		if !ok {
			return nil, lerr.NewAt(lerr.TypeError, toLerrPos(bindings.Items[i].Position()), "let: binding name must be a symbol")
		}
		v, err := in.Eval(bindings.Items[i+1], child)
		if err != nil {
			return nil, err
		}
		child.Define(sym.Name, v)
	}
	return in.evalBody(args[1:], child)
}

func (in *Interpreter) evalIf(args []ast.Expr, en object.Environment, pos ast.Pos) (object.Value, *lerr.Error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "if: expected 2 or 3 arguments, got %d", len(args))
	}
	cond, err := in.Eval(args[0], en)
	if err != nil {
		return nil, err
	}
	if object.Truthy(cond) {
		return in.Eval(args[1], en)
	}
	if len(args) == 3 {
		return in.Eval(args[2], en)
	}
	return object.Nil, nil
}

func (in *Interpreter) evalDefmacro(args []ast.Expr, pos ast.Pos) (object.Value, *lerr.Error) {
	if len(args) < 2 {
		return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "defmacro: expected a name, a parameter list, and a body")
	}
	sym, ok := args[0].(*ast.Symbol)
	if !ok {
		return nil, lerr.NewAt(lerr.TypeError, toLerrPos(args[0].Position()), "defmacro: first argument must be a symbol")
	}
	params, variadic, err := paramNames(args[1])
	if err != nil {
		return nil, err
	}
	if variadic {
		return nil, lerr.NewAt(lerr.MacroError, toLerrPos(args[1].Position()), "defmacro: variadic parameter lists are not supported")
	}
	in.Macros.Define(&macro.Macro{Name: sym.Name, Params: params, Body: args[2:]})
	return object.Nil, nil
}
