package eval

import (
	"fmt"
	"strings"

	"github.com/nfiedler-labs/lumen/ast"
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/macro"
	"github.com/nfiedler-labs/lumen/object"
)

// expandMacro implements the four-step expansion the spec describes:
// the caller's raw argument expressions are bound to the macro's
// parameter names in a fresh expansion environment (as their quoted
// value, so the macro body's quasiquote can weave them into a template);
// the body, ordinary code, is evaluated in that environment; its result
// is converted back into an expression; that expression becomes the
// macro's expansion, evaluated next in the caller's own environment by
// evalList. Identifiers the macro's own template introduces (anything
// that isn't a parameter, a special form, an existing global, or another
// macro name) are renamed to a fresh name before any of this happens, so
// a macro that binds a local temporary can never capture or be captured
// by a same-named binding at the call site.
func (in *Interpreter) expandMacro(m *macro.Macro, callArgs []ast.Expr, pos ast.Pos) (ast.Expr, *lerr.Error) {
	if len(callArgs) != len(m.Params) {
		return nil, lerr.NewAt(lerr.ArityError, toLerrPos(pos), "%s: expected %d argument(s), got %d", m.Name, len(m.Params), len(callArgs))
	}

	renamedBody := in.hygieneRename(m)

	expEnv := in.Root.NewChild()
	for i, p := range m.Params {
		expEnv.Define(p, quoteExpr(callArgs[i]))
	}

	result, err := in.evalBody(renamedBody, expEnv)
	if err != nil {
		return nil, err
	}
	return valueToExpr(result)
}

// hygieneRename returns a copy of m.Body with every macro-introduced
// identifier replaced by a fresh name unique to this expansion. The same
// source name maps to the same fresh name everywhere it occurs within
// one expansion, and a trailing '#' (the fresh-identifier convention) is
// stripped from the generated name for readability.
func (in *Interpreter) hygieneRename(m *macro.Macro) []ast.Expr {
	params := make(map[string]bool, len(m.Params))
	for _, p := range m.Params {
		params[p] = true
	}
	generated := make(map[string]string)

	rename := func(s *ast.Symbol) ast.Expr {
		name := s.Name
		if params[name] || isSpecialForm(name) {
			return s
		}
		if _, ok := in.Root.Get(name); ok {
			return s
		}
		if name == m.Name || in.Macros.Has(name) {
			return s
		}
		if fresh, ok := generated[name]; ok {
			return &ast.Symbol{Name: fresh, Pos: s.Pos}
		}
		fresh := in.gensym(strings.TrimSuffix(name, "#"))
		generated[name] = fresh
		return &ast.Symbol{Name: fresh, Pos: s.Pos}
	}

	out := make([]ast.Expr, len(m.Body))
	for i, b := range m.Body {
		out[i] = transformSymbols(b, rename)
	}
	return out
}

func (in *Interpreter) gensym(prefix string) string {
	in.gensymCounter++
	return fmt.Sprintf("%s__gen%d", prefix, in.gensymCounter)
}

// Gensym is the implementation behind the gensym builtin: a fresh
// identifier, returned as a QuotedSymbol so that splicing it into a
// quasiquote template (to name a let binding or fn parameter, the usual
// reason to call it) round-trips back into a Symbol rather than a
// string literal.
func (in *Interpreter) Gensym(prefix string) object.Value {
	return object.QuotedSymbol(in.gensym(prefix))
}

// transformSymbols rebuilds expr, replacing every Symbol node with
// f(symbol); every other node is copied structurally so the original
// tree (owned by the macro's stored definition) is never mutated.
func transformSymbols(expr ast.Expr, f func(*ast.Symbol) ast.Expr) ast.Expr {
	switch e := expr.(type) {
	case *ast.Symbol:
		return f(e)
	case *ast.Literal:
		return e
	case *ast.List:
		items := make([]ast.Expr, len(e.Items))
		for i, it := range e.Items {
			items[i] = transformSymbols(it, f)
		}
		return &ast.List{Items: items, Pos: e.Pos}
	case *ast.Vector:
		items := make([]ast.Expr, len(e.Items))
		for i, it := range e.Items {
			items[i] = transformSymbols(it, f)
		}
		return &ast.Vector{Items: items, Pos: e.Pos}
	case *ast.Map:
		pairs := make([]ast.MapPair, len(e.Pairs))
		for i, p := range e.Pairs {
			pairs[i] = ast.MapPair{Key: transformSymbols(p.Key, f), Val: transformSymbols(p.Val, f)}
		}
		return &ast.Map{Pairs: pairs, Pos: e.Pos}
	case *ast.Quote:
		return &ast.Quote{X: transformSymbols(e.X, f), Pos: e.Pos}
	case *ast.Quasiquote:
		return &ast.Quasiquote{X: transformSymbols(e.X, f), Pos: e.Pos}
	case *ast.Unquote:
		return &ast.Unquote{X: transformSymbols(e.X, f), Pos: e.Pos}
	case *ast.Splice:
		return &ast.Splice{X: transformSymbols(e.X, f), Pos: e.Pos}
	default:
		return expr
	}
}
