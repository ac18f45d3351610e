package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfiedler-labs/lumen/env"
	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

// applyPrimitivesOnly is a minimal ApplyFunc sufficient for exercising
// map/filter/reduce against primitives, without pulling in package eval
// (which would cycle back to builtins).
func applyPrimitivesOnly(fn object.Value, args []object.Value) (object.Value, *lerr.Error) {
	p, ok := fn.(*object.Primitive)
	if !ok {
		return nil, lerr.New(lerr.TypeError, "not a primitive")
	}
	return p.Fn(args)
}

func newTestRoot(t *testing.T) *env.Environment {
	t.Helper()
	root := env.New(nil)
	var written string
	Populate(root, applyPrimitivesOnly, func(prefix string) object.Value {
		return object.QuotedSymbol(prefix + "__gen1")
	}, func(s string) { written += s })
	return root
}

func call(t *testing.T, root *env.Environment, name string, args ...object.Value) object.Value {
	t.Helper()
	v, ok := root.Get(name)
	require.True(t, ok, "no such builtin: %s", name)
	p := v.(*object.Primitive)
	result, err := p.Fn(args)
	require.Nil(t, err, "%s: unexpected error: %v", name, err)
	return result
}

func TestArithmeticBuiltins(t *testing.T) {
	root := newTestRoot(t)
	assert.Equal(t, object.Number(6), call(t, root, "+", object.Number(1), object.Number(2), object.Number(3)))
	assert.Equal(t, object.Number(-4), call(t, root, "-", object.Number(1), object.Number(5)))
	assert.Equal(t, object.Number(2), call(t, root, "/", object.Number(10), object.Number(5)))
	assert.Equal(t, object.Number(1), call(t, root, "%", object.Number(7), object.Number(3)))
	assert.Equal(t, object.Bool(true), call(t, root, "<=", object.Number(1), object.Number(1), object.Number(2)))
}

func TestDivisionByZero(t *testing.T) {
	root := newTestRoot(t)
	v, _ := root.Get("/")
	_, err := v.(*object.Primitive).Fn([]object.Value{object.Number(1), object.Number(0)})
	require.NotNil(t, err)
}

func TestCollectionBuiltins(t *testing.T) {
	root := newTestRoot(t)
	lst := call(t, root, "list", object.Number(1), object.Number(2), object.Number(3))
	assert.Equal(t, object.Number(1), call(t, root, "car", lst))
	cdr := call(t, root, "cdr", lst).(*object.List)
	assert.Len(t, cdr.Items, 2)

	consed := call(t, root, "cons", object.Number(0), lst).(*object.List)
	assert.Equal(t, object.Number(0), consed.Items[0])

	rev := call(t, root, "reverse", lst).(*object.List)
	assert.Equal(t, object.Number(3), rev.Items[0])

	cat := call(t, root, "concat", lst, lst).(*object.List)
	assert.Len(t, cat.Items, 6)

	assert.Equal(t, object.Bool(true), call(t, root, "empty?", &object.List{}))
	assert.Equal(t, object.Number(3), call(t, root, "length", lst))
}

func TestMapBuiltins(t *testing.T) {
	root := newTestRoot(t)
	m := &object.Map{}
	m2 := call(t, root, "assoc", m, object.Keyword(":name"), object.String("Alice")).(*object.Map)
	assert.Equal(t, object.String("Alice"), call(t, root, "get", m2, object.Keyword(":name")))
}

func TestPredicates(t *testing.T) {
	root := newTestRoot(t)
	assert.Equal(t, object.Bool(true), call(t, root, "number?", object.Number(1)))
	assert.Equal(t, object.Bool(false), call(t, root, "number?", object.String("x")))
	assert.Equal(t, object.Bool(true), call(t, root, "nil?", object.Nil))
	assert.Equal(t, object.Bool(true), call(t, root, "not", object.Bool(false)))
	assert.Equal(t, object.String("number"), call(t, root, "type-of", object.Number(1)))
}

func TestHigherOrder(t *testing.T) {
	root := newTestRoot(t)
	double := &object.Primitive{Name: "double", MinArgs: 1, MaxArgs: 1, Fn: func(a []object.Value) (object.Value, *lerr.Error) {
		return object.Number(float64(a[0].(object.Number)) * 2), nil
	}}
	lst := call(t, root, "list", object.Number(1), object.Number(2), object.Number(3))

	mapped := call(t, root, "map", double, lst).(*object.List)
	assert.Equal(t, []object.Value{object.Number(2), object.Number(4), object.Number(6)}, mapped.Items)

	isEven := &object.Primitive{Name: "even", MinArgs: 1, MaxArgs: 1, Fn: func(a []object.Value) (object.Value, *lerr.Error) {
		n := float64(a[0].(object.Number))
		return object.Bool(int(n)%2 == 0), nil
	}}
	filtered := call(t, root, "filter", isEven, lst).(*object.List)
	assert.Equal(t, []object.Value{object.Number(2)}, filtered.Items)

	plus, _ := root.Get("+")
	reduced := call(t, root, "reduce", plus, lst)
	assert.Equal(t, object.Number(6), reduced)
}

func TestGensymIsUniquePerCall(t *testing.T) {
	root := env.New(nil)
	counter := 0
	Populate(root, applyPrimitivesOnly, func(prefix string) object.Value {
		counter++
		return object.QuotedSymbol(prefix + "__gen" + string(rune('0'+counter)))
	}, func(s string) {})
	v, _ := root.Get("gensym")
	a, _ := v.(*object.Primitive).Fn(nil)
	b, _ := v.(*object.Primitive).Fn(nil)
	assert.NotEqual(t, a, b)
}
