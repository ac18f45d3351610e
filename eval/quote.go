package eval

import (
	"github.com/nfiedler-labs/lumen/ast"
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

// quoteExpr implements the quote conversion rules of the spec: a literal
// becomes its scalar value, a symbol becomes a QuotedSymbol (the quoted
// form of a symbol; see object.QuotedSymbol's doc comment for why this is
// not plain String), and a list/vector/map becomes the corresponding
// collection of recursively quoted elements. A quote/quasiquote/unquote/
// splice node nested inside a quote is represented the way the reader
// desugars it: a two-element list headed by the form's name, e.g. 'x
// nested in a quote becomes the list (quote x).
func quoteExpr(x ast.Expr) object.Value {
	switch e := x.(type) {
	case *ast.Literal:
		return literalValue(e)
	case *ast.Symbol:
		return object.QuotedSymbol(e.Name)
	case *ast.List:
		items := make([]object.Value, len(e.Items))
		for i, it := range e.Items {
			items[i] = quoteExpr(it)
		}
		return &object.List{Items: items}
	case *ast.Vector:
		items := make([]object.Value, len(e.Items))
		for i, it := range e.Items {
			items[i] = quoteExpr(it)
		}
		return &object.Vector{Items: items}
	case *ast.Map:
		entries := make([]object.MapEntry, len(e.Pairs))
		for i, p := range e.Pairs {
			key, _ := object.KeyText(quoteExpr(p.Key))
			entries[i] = object.MapEntry{Key: key, Val: quoteExpr(p.Val)}
		}
		return &object.Map{Entries: entries}
	case *ast.Quote:
		return taggedForm("quote", e.X)
	case *ast.Quasiquote:
		return taggedForm("quasiquote", e.X)
	case *ast.Unquote:
		return taggedForm("unquote", e.X)
	case *ast.Splice:
		return taggedForm("unquote-splicing", e.X)
	default:
		return object.Nil
	}
}

func taggedForm(tag string, inner ast.Expr) object.Value {
	return &object.List{Items: []object.Value{object.QuotedSymbol(tag), quoteExpr(inner)}}
}

// evalQuasiquote implements quasiquote evaluation: structural copying of
// x as data, except an Unquote sub-expression is evaluated in the current
// environment and its value spliced in, and a Splice sub-expression
// (valid only directly inside a list/vector) is evaluated and its
// sequence value flattened into the surrounding collection. A nested
// Quasiquote is not evaluated further; per the recorded Open Question
// decision it is re-quoted literally (one level of quasiquote only).
func (in *Interpreter) evalQuasiquote(x ast.Expr, en object.Environment) (object.Value, *lerr.Error) {
	switch e := x.(type) {
	case *ast.Unquote:
		return in.Eval(e.X, en)
	case *ast.Splice:
		return nil, lerr.NewAt(lerr.MacroError, toLerrPos(e.Pos), "splice is not valid outside a sequence")
	case *ast.List:
		items, err := in.quasiquoteSeq(e.Items, en)
		if err != nil {
			return nil, err
		}
		return &object.List{Items: items}, nil
	case *ast.Vector:
		items, err := in.quasiquoteSeq(e.Items, en)
		if err != nil {
			return nil, err
		}
		return &object.Vector{Items: items}, nil
	case *ast.Map:
		entries := make([]object.MapEntry, 0, len(e.Pairs))
		for _, p := range e.Pairs {
			kv, err := in.evalQuasiquote(p.Key, en)
			if err != nil {
				return nil, err
			}
			key, ok := object.KeyText(kv)
			if !ok {
				return nil, lerr.NewAt(lerr.TypeError, toLerrPos(p.Key.Position()), "map keys must be strings or keywords, got %s", object.TypeOf(kv))
			}
			vv, err := in.evalQuasiquote(p.Val, en)
			if err != nil {
				return nil, err
			}
			entries = append(entries, object.MapEntry{Key: key, Val: vv})
		}
		return &object.Map{Entries: entries}, nil
	case *ast.Quasiquote:
		return taggedForm("quasiquote", e.X), nil
	default:
		// Literal, Symbol, or a nested Quote: quoted as ordinary data.
		return quoteExpr(x), nil
	}
}

func (in *Interpreter) quasiquoteSeq(items []ast.Expr, en object.Environment) ([]object.Value, *lerr.Error) {
	out := make([]object.Value, 0, len(items))
	for _, it := range items {
		if sp, ok := it.(*ast.Splice); ok {
			v, err := in.Eval(sp.X, en)
			if err != nil {
				return nil, err
			}
			seq, ok := seqItems(v)
			if !ok {
				return nil, lerr.NewAt(lerr.TypeError, toLerrPos(sp.Pos), "splice requires a list or vector, got %s", object.TypeOf(v))
			}
			out = append(out, seq...)
			continue
		}
		v, err := in.evalQuasiquote(it, en)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func seqItems(v object.Value) ([]object.Value, bool) {
	switch t := v.(type) {
	case *object.List:
		return t.Items, true
	case *object.Vector:
		return t.Items, true
	default:
		return nil, false
	}
}

// valueToExpr converts a value produced by evaluating a macro body back
// into an expression, so it can be evaluated again as the macro's
// expansion. QuotedSymbol round-trips to a Symbol; every other scalar
// round-trips to the matching Literal; List/Vector/Map round-trip
// recursively. A Closure or Primitive cannot appear in expanded code.
func valueToExpr(v object.Value) (ast.Expr, *lerr.Error) {
	switch t := v.(type) {
	case object.QuotedSymbol:
		return &ast.Symbol{Name: string(t)}, nil
	case object.String:
		return &ast.Literal{Kind: ast.LitString, Str: string(t)}, nil
	case object.Number:
		return &ast.Literal{Kind: ast.LitNumber, Num: float64(t)}, nil
	case object.Bool:
		return &ast.Literal{Kind: ast.LitBool, Bool: bool(t)}, nil
	case object.NilValue:
		return &ast.Literal{Kind: ast.LitNil}, nil
	case object.Keyword:
		return &ast.Literal{Kind: ast.LitKeyword, Str: string(t)}, nil
	case *object.List:
		items, err := valuesToExprs(t.Items)
		if err != nil {
			return nil, err
		}
		return &ast.List{Items: items}, nil
	case *object.Vector:
		items, err := valuesToExprs(t.Items)
		if err != nil {
			return nil, err
		}
		return &ast.Vector{Items: items}, nil
	case *object.Map:
		pairs := make([]ast.MapPair, len(t.Entries))
		for i, e := range t.Entries {
			val, err := valueToExpr(e.Val)
			if err != nil {
				return nil, err
			}
			pairs[i] = ast.MapPair{Key: &ast.Literal{Kind: ast.LitKeyword, Str: e.Key}, Val: val}
		}
		return &ast.Map{Pairs: pairs}, nil
	default:
		return nil, lerr.New(lerr.MacroError, "cannot splice a %s into a macro expansion", object.TypeOf(v))
	}
}

func valuesToExprs(vs []object.Value) ([]ast.Expr, *lerr.Error) {
	out := make([]ast.Expr, len(vs))
	for i, v := range vs {
		e, err := valueToExpr(v)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
