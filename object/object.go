// Package object defines the runtime values produced by evaluation: the
// closed sum type described in the language spec (number, string, boolean,
// nil, keyword, list, vector, map, closure, primitive). Like package ast,
// dispatch is a single type switch per consumer (see Format and Equal in
// this package, and eval.apply), never ad-hoc type assertions scattered
// through the codebase.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nfiedler-labs/lumen/ast"
	"github.com/nfiedler-labs/lumen/lerr"
)

// Value is any runtime datum. Every case below implements it; there is no
// "unknown" value at runtime.
type Value interface {
	valueNode()
}

// Number is an IEEE-754 double.
type Number float64

// String is a text value.
type String string

// Bool is a boolean value.
type Bool bool

// NilValue is the single nil value. Use the Nil variable, not this type,
// when constructing nil values.
type NilValue struct{}

// Nil is the unique nil value.
var Nil = NilValue{}

// Keyword is a self-evaluating identifier prefixed with ':', used as a
// map key and as a self-applying accessor: (:k m) == (get m :k).
type Keyword string

// QuotedSymbol is the quoted form of an ast.Symbol: "the language has no
// first-class symbol type; quoted symbols surface as strings" (spec
// §4.4). It is observably identical to String in every user-facing
// operation (TypeOf, Truthy, Equal, Format all treat it exactly like
// String) — the distinction exists only so the macro expander can tell
// "a bare identifier the macro template wrote" apart from "a string
// literal a caller passed in" when it converts a macro's expanded value
// back into code. Without this, round-tripping a macro expansion like
// `(if ~c ~e ~t)` through the Value layer could not tell the template's
// own `if` from a caller-supplied string argument, since both would
// collapse to the same plain String. See DESIGN.md for the full account.
type QuotedSymbol string

// List is an immutable ordered sequence built with cons/car/cdr/list.
type List struct {
	Items []Value
}

// Vector is an immutable indexed sequence built with vec/the [...] reader
// syntax.
type Vector struct {
	Items []Value
}

// MapEntry is one key/value pair of a Map, preserving insertion order.
type MapEntry struct {
	Key string // the textual content of a string or keyword key
	Val Value
}

// Map is an immutable, insertion-ordered mapping from string/keyword keys
// to values.
type Map struct {
	Entries []MapEntry
}

// Environment is the subset of env.Environment's behavior a Closure (and
// the evaluator applying it) needs. Defined here, rather than importing
// package env, so object has no dependency on env; env.Environment
// satisfies this interface structurally, which is what breaks what would
// otherwise be an object<->env import cycle (env already imports object
// for Value). NewChild lets the evaluator open a fresh call scope from a
// captured closure environment without needing the concrete env type.
type Environment interface {
	Get(name string) (Value, bool)
	Define(name string, v Value)
	NewChild() Environment
}

// Closure is a user-defined function: a parameter list, a body, and the
// environment captured at the point of its creation. A closure extends
// the lifetime of that environment for as long as the closure is
// reachable.
type Closure struct {
	Name   string // empty for anonymous fn; set by defn for error messages
	Params []string
	// Variadic marks a closure declared with a single bare symbol as its
	// parameter list rather than a vector: all call arguments are bound,
	// as a List, to Params[0].
	Variadic bool
	Body     []ast.Expr
	Env      Environment
}

// Primitive is a host-supplied callable with a fixed arity policy,
// pre-populated into the root environment by package builtins.
type Primitive struct {
	Name string
	// MinArgs/MaxArgs bound the argument count; MaxArgs < 0 means
	// unbounded (variadic).
	MinArgs int
	MaxArgs int
	Fn      func(args []Value) (Value, *lerr.Error)
}

func (Number) valueNode()       {}
func (String) valueNode()       {}
func (Bool) valueNode()         {}
func (NilValue) valueNode()     {}
func (Keyword) valueNode()      {}
func (QuotedSymbol) valueNode() {}
func (*List) valueNode()        {}
func (*Vector) valueNode()      {}
func (*Map) valueNode()         {}
func (*Closure) valueNode()     {}
func (*Primitive) valueNode()   {}

// TypeOf returns the string used by the type-of primitive and by error
// messages. Keyword is reported as "keyword" as a natural extension of
// the core eight-case list (nil, number, string, boolean, list, vector,
// map, fn) the spec's type-of enumerates without mentioning keywords,
// even though keyword is one of the data model's value kinds.
func TypeOf(v Value) string {
	switch v.(type) {
	case NilValue:
		return "nil"
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "boolean"
	case Keyword:
		return "keyword"
	case QuotedSymbol:
		return "string"
	case *List:
		return "list"
	case *Vector:
		return "vector"
	case *Map:
		return "map"
	case *Closure, *Primitive:
		return "fn"
	default:
		return "unknown"
	}
}

// Truthy implements the language's truthiness rule: everything is truthy
// except false and nil.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case NilValue:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// Equal implements the language's structural equality: keywords and
// strings compare by text, numbers by value, booleans/nil by case, and
// collections recursively by structure. Map equality is order-insensitive
// (an explicit decision recorded in DESIGN.md, since the original source
// never exercised cross-order map comparison).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		if y, ok := b.(String); ok {
			return x == y
		}
		y, ok := b.(QuotedSymbol)
		return ok && string(x) == string(y)
	case QuotedSymbol:
		if y, ok := b.(QuotedSymbol); ok {
			return x == y
		}
		y, ok := b.(String)
		return ok && string(x) == string(y)
	case Keyword:
		y, ok := b.(Keyword)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case *List:
		y, ok := b.(*List)
		return ok && equalSeq(x.Items, y.Items)
	case *Vector:
		y, ok := b.(*Vector)
		return ok && equalSeq(x.Items, y.Items)
	case *Map:
		y, ok := b.(*Map)
		return ok && equalMap(x, y)
	case *Closure:
		y, ok := b.(*Closure)
		return ok && x == y
	case *Primitive:
		y, ok := b.(*Primitive)
		return ok && x == y
	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalMap(a, b *Map) bool {
	if len(a.Entries) != len(b.Entries) {
		return false
	}
	bi := make(map[string]Value, len(b.Entries))
	for _, e := range b.Entries {
		bi[e.Key] = e.Val
	}
	for _, e := range a.Entries {
		bv, ok := bi[e.Key]
		if !ok || !Equal(e.Val, bv) {
			return false
		}
	}
	return true
}

// Get performs the map key lookup used by the get primitive and by the
// keyword-as-accessor call form; a missing key yields Nil, not an error.
func (m *Map) Get(key string) Value {
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Val
		}
	}
	return Nil
}

// Assoc returns a new Map with key bound to val, replacing any existing
// entry for that key in place or appending it, per the data model's
// immutable-collection invariant.
func (m *Map) Assoc(key string, val Value) *Map {
	entries := make([]MapEntry, len(m.Entries))
	copy(entries, m.Entries)
	for i, e := range entries {
		if e.Key == key {
			entries[i].Val = val
			return &Map{Entries: entries}
		}
	}
	entries = append(entries, MapEntry{Key: key, Val: val})
	return &Map{Entries: entries}
}

// KeyText extracts the string content of a key value, as required of map
// keys and of get/assoc's key argument: a string or a keyword.
func KeyText(v Value) (string, bool) {
	switch k := v.(type) {
	case String:
		return string(k), true
	case QuotedSymbol:
		return string(k), true
	case Keyword:
		return string(k), true
	default:
		return "", false
	}
}

// Format renders a value the way print/str/the top-level value line do:
// nil, true/false, canonical numbers, lists/vectors/maps in their reader
// syntax, and quoted strings only when nested inside a larger structure
// (top==false).
func Format(v Value, top bool) string {
	var b strings.Builder
	writeValue(&b, v, top)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, top bool) {
	switch t := v.(type) {
	case NilValue:
		b.WriteString("nil")
	case Bool:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(formatNumber(float64(t)))
	case Keyword:
		b.WriteString(string(t))
	case String:
		if top {
			b.WriteString(string(t))
		} else {
			fmt.Fprintf(b, "%q", string(t))
		}
	case QuotedSymbol:
		if top {
			b.WriteString(string(t))
		} else {
			fmt.Fprintf(b, "%q", string(t))
		}
	case *List:
		writeSeq(b, "(", ")", t.Items)
	case *Vector:
		writeSeq(b, "[", "]", t.Items)
	case *Map:
		b.WriteString("{")
		for i, e := range t.Entries {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(e.Key)
			b.WriteString(" ")
			writeValue(b, e.Val, false)
		}
		b.WriteString("}")
	case *Closure:
		b.WriteString("#<fn>")
	case *Primitive:
		fmt.Fprintf(b, "#<primitive:%s>", t.Name)
	default:
		fmt.Fprintf(b, "%v", t)
	}
}

func writeSeq(b *strings.Builder, open, shut string, items []Value) {
	b.WriteString(open)
	for i, it := range items {
		if i > 0 {
			b.WriteString(" ")
		}
		writeValue(b, it, false)
	}
	b.WriteString(shut)
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) && !isNegZero(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func isNegZero(f float64) bool {
	return f == 0 && strconv.FormatFloat(f, 'g', -1, 64)[0] == '-'
}
