// Package ast defines the expression tree produced by the parser and
// consumed by the evaluator. It is a closed sum type: every surface
// construct is one of the cases below, dispatched by a single type switch
// at each consumer (see eval.Eval and Stringify in this package), never by
// a chain of ad-hoc type assertions.
package ast

import (
	"bytes"
	"fmt"
	"strconv"
)

// Pos is a source position, 1-based on both axes.
type Pos struct {
	Line int
	Col  int
}

// Expr is any node of the parsed expression tree.
type Expr interface {
	exprNode()
	Position() Pos
}

// LitKind distinguishes the scalar literal cases.
type LitKind int

const (
	LitNumber LitKind = iota
	LitString
	LitBool
	LitNil
	LitKeyword
)

// Literal is a self-evaluating scalar: a number, string, boolean, nil, or
// a keyword (a string beginning with ':').
type Literal struct {
	Kind LitKind
	Num  float64
	Str  string // String and Keyword payload
	Bool bool
	Pos  Pos
}

// Symbol is an identifier reference.
type Symbol struct {
	Name string
	Pos  Pos
}

// List is an ordered sequence of sub-expressions written with parens.
type List struct {
	Items []Expr
	Pos   Pos
}

// Vector is an ordered sequence of sub-expressions written with brackets.
type Vector struct {
	Items []Expr
	Pos   Pos
}

// MapPair is one (key, value) entry of a Map literal, in source order.
type MapPair struct {
	Key Expr
	Val Expr
}

// Map is an ordered sequence of key/value expression pairs written with
// braces.
type Map struct {
	Pairs []MapPair
	Pos   Pos
}

// Quote prevents evaluation of its sub-expression; see the eval package's
// quote.go for the expression-to-value conversion rules.
type Quote struct {
	X   Expr
	Pos Pos
}

// Quasiquote is structural quotation with Unquote/Splice escapes.
type Quasiquote struct {
	X   Expr
	Pos Pos
}

// Unquote is only meaningful directly inside a Quasiquote.
type Unquote struct {
	X   Expr
	Pos Pos
}

// Splice is only meaningful directly inside a Quasiquote; it flattens a
// sequence value into the enclosing collection.
type Splice struct {
	X   Expr
	Pos Pos
}

func (*Literal) exprNode()    {}
func (*Symbol) exprNode()     {}
func (*List) exprNode()       {}
func (*Vector) exprNode()     {}
func (*Map) exprNode()        {}
func (*Quote) exprNode()      {}
func (*Quasiquote) exprNode() {}
func (*Unquote) exprNode()    {}
func (*Splice) exprNode()     {}

func (e *Literal) Position() Pos    { return e.Pos }
func (e *Symbol) Position() Pos     { return e.Pos }
func (e *List) Position() Pos       { return e.Pos }
func (e *Vector) Position() Pos     { return e.Pos }
func (e *Map) Position() Pos        { return e.Pos }
func (e *Quote) Position() Pos      { return e.Pos }
func (e *Quasiquote) Position() Pos { return e.Pos }
func (e *Unquote) Position() Pos    { return e.Pos }
func (e *Splice) Position() Pos     { return e.Pos }

// Stringify renders an expression the way it would appear as Lisp source,
// used in error messages that need to show the offending form.
func Stringify(x Expr) string {
	buf := new(bytes.Buffer)
	writeExpr(buf, x)
	return buf.String()
}

func writeExpr(buf *bytes.Buffer, x Expr) {
	switch e := x.(type) {
	case nil:
		buf.WriteString("nil")
	case *Literal:
		switch e.Kind {
		case LitNumber:
			buf.WriteString(strconv.FormatFloat(e.Num, 'g', -1, 64))
		case LitString:
			fmt.Fprintf(buf, "%q", e.Str)
		case LitBool:
			if e.Bool {
				buf.WriteString("true")
			} else {
				buf.WriteString("false")
			}
		case LitNil:
			buf.WriteString("nil")
		case LitKeyword:
			buf.WriteString(e.Str)
		}
	case *Symbol:
		buf.WriteString(e.Name)
	case *List:
		writeSeq(buf, "(", ")", e.Items)
	case *Vector:
		writeSeq(buf, "[", "]", e.Items)
	case *Map:
		buf.WriteString("{")
		for i, p := range e.Pairs {
			if i > 0 {
				buf.WriteString(" ")
			}
			writeExpr(buf, p.Key)
			buf.WriteString(" ")
			writeExpr(buf, p.Val)
		}
		buf.WriteString("}")
	case *Quote:
		buf.WriteString("'")
		writeExpr(buf, e.X)
	case *Quasiquote:
		buf.WriteString("`")
		writeExpr(buf, e.X)
	case *Unquote:
		buf.WriteString("~")
		writeExpr(buf, e.X)
	case *Splice:
		buf.WriteString("~@")
		writeExpr(buf, e.X)
	default:
		fmt.Fprintf(buf, "%v", e)
	}
}

func writeSeq(buf *bytes.Buffer, open, shut string, items []Expr) {
	buf.WriteString(open)
	for i, it := range items {
		if i > 0 {
			buf.WriteString(" ")
		}
		writeExpr(buf, it)
	}
	buf.WriteString(shut)
}
