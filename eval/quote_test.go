package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfiedler-labs/lumen/object"
)

func TestQuoteScalarsAndSymbols(t *testing.T) {
	in := NewInterpreter()
	assert.Equal(t, object.Number(5), run(t, in, "(quote 5)"))
	assert.Equal(t, object.QuotedSymbol("foo"), run(t, in, "(quote foo)"))
	assert.Equal(t, object.QuotedSymbol("foo"), run(t, in, "'foo"))
}

func TestQuoteListIsDataNotCode(t *testing.T) {
	in := NewInterpreter()
	v := run(t, in, "'(+ 1 2)")
	lst, ok := v.(*object.List)
	assert.True(t, ok)
	assert.Equal(t, object.QuotedSymbol("+"), lst.Items[0])
	assert.Equal(t, object.Number(1), lst.Items[1])
	assert.Equal(t, object.Number(2), lst.Items[2])
}

func TestQuotedSymbolPrintsBare(t *testing.T) {
	assert.Equal(t, "foo", object.Format(object.QuotedSymbol("foo"), true))
	assert.Equal(t, "string", object.TypeOf(object.QuotedSymbol("foo")))
}

func TestQuasiquoteUnquoteAndSplice(t *testing.T) {
	in := NewInterpreter()
	run(t, in, "(def x 10)")
	v := run(t, in, "`(a ~x)")
	lst := v.(*object.List)
	assert.Equal(t, object.QuotedSymbol("a"), lst.Items[0])
	assert.Equal(t, object.Number(10), lst.Items[1])

	run(t, in, "(def xs (list 1 2 3))")
	v2 := run(t, in, "`(a ~@xs b)")
	lst2 := v2.(*object.List)
	assert.Equal(t, []object.Value{
		object.QuotedSymbol("a"), object.Number(1), object.Number(2), object.Number(3), object.QuotedSymbol("b"),
	}, lst2.Items)
}

func TestNestedQuasiquoteIsReQuotedLiterally(t *testing.T) {
	in := NewInterpreter()
	v := run(t, in, "`(a ``(b ~c))")
	lst := v.(*object.List)
	assert.Equal(t, object.QuotedSymbol("a"), lst.Items[0])
	// The inner quasiquote is not evaluated; it surfaces as a tagged
	// (quasiquote ...) list rather than attempting to resolve ~c.
	inner, ok := lst.Items[1].(*object.List)
	assert.True(t, ok)
	assert.Equal(t, object.QuotedSymbol("quasiquote"), inner.Items[0])
}
