package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfiedler-labs/lumen/ast"
)

func TestDefineAndLookup(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.Lookup("unless")
	assert.False(t, ok)

	m := &Macro{Name: "unless", Params: []string{"c", "t", "e"}, Body: []ast.Expr{&ast.Symbol{Name: "c"}}}
	tbl.Define(m)

	got, ok := tbl.Lookup("unless")
	assert.True(t, ok)
	assert.Same(t, m, got)
	assert.True(t, tbl.Has("unless"))
	assert.False(t, tbl.Has("other"))
}

func TestRedefineReplaces(t *testing.T) {
	tbl := NewTable()
	tbl.Define(&Macro{Name: "m", Params: nil, Body: nil})
	tbl.Define(&Macro{Name: "m", Params: []string{"x"}, Body: nil})

	got, _ := tbl.Lookup("m")
	assert.Equal(t, []string{"x"}, got.Params)
}
