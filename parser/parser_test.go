package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfiedler-labs/lumen/ast"
)

func TestParseAtoms(t *testing.T) {
	exprs, errs := ParseProgram(`42 -3.5 "hi" :kw true false nil sym`)
	require.Empty(t, errs)
	require.Len(t, exprs, 8)

	lit := exprs[0].(*ast.Literal)
	assert.Equal(t, ast.LitNumber, lit.Kind)
	assert.Equal(t, 42.0, lit.Num)

	assert.Equal(t, -3.5, exprs[1].(*ast.Literal).Num)
	assert.Equal(t, "hi", exprs[2].(*ast.Literal).Str)
	assert.Equal(t, ":kw", exprs[3].(*ast.Literal).Str)
	assert.True(t, exprs[4].(*ast.Literal).Bool)
	assert.False(t, exprs[5].(*ast.Literal).Bool)
	assert.Equal(t, ast.LitNil, exprs[6].(*ast.Literal).Kind)
	assert.Equal(t, "sym", exprs[7].(*ast.Symbol).Name)
}

func TestParseList(t *testing.T) {
	exprs, errs := ParseProgram(`(+ 1 2)`)
	require.Empty(t, errs)
	require.Len(t, exprs, 1)
	list := exprs[0].(*ast.List)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "+", list.Items[0].(*ast.Symbol).Name)
}

func TestParseVectorAndMap(t *testing.T) {
	exprs, errs := ParseProgram(`[1 2 3] {:a 1 :b 2}`)
	require.Empty(t, errs)
	require.Len(t, exprs, 2)

	vec := exprs[0].(*ast.Vector)
	assert.Len(t, vec.Items, 3)

	m := exprs[1].(*ast.Map)
	require.Len(t, m.Pairs, 2)
	assert.Equal(t, ":a", m.Pairs[0].Key.(*ast.Literal).Str)
}

func TestParseQuoting(t *testing.T) {
	exprs, errs := ParseProgram("'x `(a ~b ~@c)")
	require.Empty(t, errs)
	require.Len(t, exprs, 2)

	q := exprs[0].(*ast.Quote)
	assert.Equal(t, "x", q.X.(*ast.Symbol).Name)

	qq := exprs[1].(*ast.Quasiquote)
	list := qq.X.(*ast.List)
	require.Len(t, list.Items, 3)
	_, isUnquote := list.Items[1].(*ast.Unquote)
	assert.True(t, isUnquote)
	_, isSplice := list.Items[2].(*ast.Splice)
	assert.True(t, isSplice)
}

func TestParseCollectsMultipleErrorsAndContinues(t *testing.T) {
	exprs, errs := ParseProgram(`(+ 1 2) ) (+ 3 4) ]`)
	require.Len(t, errs, 2)
	require.Len(t, exprs, 2)
	assert.Equal(t, "+", exprs[0].(*ast.List).Items[0].(*ast.Symbol).Name)
	assert.Equal(t, "+", exprs[1].(*ast.List).Items[0].(*ast.Symbol).Name)
}

func TestParseUnterminatedList(t *testing.T) {
	_, errs := ParseProgram(`(+ 1 2`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message(), "unterminated list")
}

func TestParseUnterminatedMap(t *testing.T) {
	_, errs := ParseProgram(`{:a`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message(), "unterminated map")
}
