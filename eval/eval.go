// Package eval implements the tree-walking evaluator: Eval dispatches on
// the closed ast.Expr sum type exactly once per call, the way the
// teacher's swatcl Interpreter dispatches on its own command table, and
// the way liswat's parser.go eval function switches on Pair/Symbol/atom.
// Interpreter bundles the three pieces of state a running program needs:
// the root environment (where def/defn/defmacro always land), the macro
// table (a namespace distinct from ordinary bindings), and the gensym
// counter used to mint hygienic names during macro expansion.
package eval

import (
	"fmt"
	"os"

	"github.com/nfiedler-labs/lumen/ast"
	"github.com/nfiedler-labs/lumen/builtins"
	"github.com/nfiedler-labs/lumen/env"
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/macro"
	"github.com/nfiedler-labs/lumen/object"
)

// maxExpansionDepth bounds recursive macro expansion, the way the spec's
// design notes require, so a macro that expands into a call to itself
// reports an error instead of recursing forever.
const maxExpansionDepth = 1000

// Interpreter holds the state that persists across every top-level form
// evaluated in a session: the REPL, and cmd/lumen's -file mode, both
// construct exactly one.
type Interpreter struct {
	Root   *env.Environment
	Macros *macro.Table
	// Output receives the text the print builtin writes. It defaults to
	// stdout; interp.Session.SetPrintSink replaces it so a host can
	// capture printed text instead of letting it reach standard output.
	Output         func(s string)
	gensymCounter  int
	expansionDepth int
}

// NewInterpreter builds a root environment populated with every builtin,
// and an empty macro table.
func NewInterpreter() *Interpreter {
	in := &Interpreter{
		Root:   env.New(nil),
		Macros: macro.NewTable(),
		Output: func(s string) { fmt.Fprint(os.Stdout, s) },
	}
	builtins.Populate(in.Root, in.Apply, in.Gensym, func(s string) { in.Output(s) })
	return in
}

func toLerrPos(p ast.Pos) lerr.Pos {
	return lerr.Pos{Line: p.Line, Col: p.Col}
}

// Eval evaluates a single expression in the given environment. en is
// typed as the object.Environment interface, not the concrete *env.
// Environment, so that a call scope opened via Closure.Env.NewChild()
// (which only has the interface type available, to avoid object
// importing env) can be passed straight back in without an assertion.
func (in *Interpreter) Eval(x ast.Expr, en object.Environment) (object.Value, *lerr.Error) {
	switch e := x.(type) {
	case *ast.Literal:
		return literalValue(e), nil
	case *ast.Symbol:
		v, ok := en.Get(e.Name)
		if !ok {
			return nil, lerr.NewAt(lerr.UnboundSymbol, toLerrPos(e.Pos), "undefined symbol: %s", e.Name)
		}
		return v, nil
	case *ast.Vector:
		items := make([]object.Value, len(e.Items))
		for i, it := range e.Items {
			v, err := in.Eval(it, en)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return &object.Vector{Items: items}, nil
	case *ast.Map:
		entries := make([]object.MapEntry, 0, len(e.Pairs))
		for _, p := range e.Pairs {
			kv, err := in.Eval(p.Key, en)
			if err != nil {
				return nil, err
			}
			key, ok := object.KeyText(kv)
			if !ok {
				return nil, lerr.NewAt(lerr.TypeError, toLerrPos(p.Key.Position()), "map keys must be strings or keywords, got %s", object.TypeOf(kv))
			}
			vv, err := in.Eval(p.Val, en)
			if err != nil {
				return nil, err
			}
			entries = append(entries, object.MapEntry{Key: key, Val: vv})
		}
		return &object.Map{Entries: entries}, nil
	case *ast.Quote:
		return quoteExpr(e.X), nil
	case *ast.Quasiquote:
		return in.evalQuasiquote(e.X, en)
	case *ast.Unquote:
		return nil, lerr.NewAt(lerr.MacroError, toLerrPos(e.Pos), "unquote used outside quasiquote")
	case *ast.Splice:
		return nil, lerr.NewAt(lerr.MacroError, toLerrPos(e.Pos), "splice used outside quasiquote")
	case *ast.List:
		return in.evalList(e, en)
	default:
		return nil, lerr.New(lerr.RuntimeError, "unhandled expression kind")
	}
}

func literalValue(l *ast.Literal) object.Value {
	switch l.Kind {
	case ast.LitNumber:
		return object.Number(l.Num)
	case ast.LitString:
		return object.String(l.Str)
	case ast.LitBool:
		return object.Bool(l.Bool)
	case ast.LitNil:
		return object.Nil
	case ast.LitKeyword:
		return object.Keyword(l.Str)
	default:
		return object.Nil
	}
}

// evalBody evaluates a sequence of body expressions in order, returning
// the value of the last one (Nil for an empty body), the shape used by
// do, fn/defn bodies, and let bodies alike.
func (in *Interpreter) evalBody(body []ast.Expr, en object.Environment) (object.Value, *lerr.Error) {
	var result object.Value = object.Nil
	for _, x := range body {
		v, err := in.Eval(x, en)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (in *Interpreter) evalList(l *ast.List, en object.Environment) (object.Value, *lerr.Error) {
	if len(l.Items) == 0 {
		return &object.List{}, nil
	}

	if sym, ok := l.Items[0].(*ast.Symbol); ok {
		if isSpecialForm(sym.Name) {
			return in.evalSpecialForm(sym.Name, l, en)
		}
		if m, ok := in.Macros.Lookup(sym.Name); ok {
			in.expansionDepth++
			if in.expansionDepth > maxExpansionDepth {
				in.expansionDepth--
				return nil, lerr.NewAt(lerr.MacroError, toLerrPos(l.Pos), "macro expansion nested too deeply (possible infinite recursion in %s)", sym.Name)
			}
			expanded, err := in.expandMacro(m, l.Items[1:], l.Pos)
			if err != nil {
				in.expansionDepth--
				return nil, err
			}
			result, err := in.Eval(expanded, en)
			in.expansionDepth--
			return result, err
		}
	}

	head, err := in.Eval(l.Items[0], en)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(l.Items)-1)
	for i, a := range l.Items[1:] {
		v, err := in.Eval(a, en)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return in.applyAt(head, args, l.Pos)
}
