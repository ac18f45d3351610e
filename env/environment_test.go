package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfiedler-labs/lumen/object"
)

func TestLookupMissing(t *testing.T) {
	e := New(nil)
	_, ok := e.Get("foo")
	assert.False(t, ok)
}

func TestDefineAndGet(t *testing.T) {
	e := New(nil)
	e.Define("foo", object.Number(42))
	v, ok := e.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, object.Number(42), v)
}

func TestParentChainLookup(t *testing.T) {
	root := New(nil)
	root.Define("x", object.Number(1))
	child := New(root)
	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, object.Number(1), v)
}

func TestShadowing(t *testing.T) {
	root := New(nil)
	root.Define("x", object.Number(1))
	child := New(root)
	child.Define("x", object.Number(2))

	v, _ := child.Get("x")
	assert.Equal(t, object.Number(2), v)

	v, _ = root.Get("x")
	assert.Equal(t, object.Number(1), v, "defining in a child must not affect the parent")
}
