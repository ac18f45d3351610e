package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringifyScalars(t *testing.T) {
	assert.Equal(t, "nil", Stringify(&Literal{Kind: LitNil}))
	assert.Equal(t, "true", Stringify(&Literal{Kind: LitBool, Bool: true}))
	assert.Equal(t, "3", Stringify(&Literal{Kind: LitNumber, Num: 3}))
	assert.Equal(t, ":foo", Stringify(&Literal{Kind: LitKeyword, Str: ":foo"}))
}

func TestStringifyCollections(t *testing.T) {
	list := &List{Items: []Expr{&Symbol{Name: "+"}, &Literal{Kind: LitNumber, Num: 1}, &Literal{Kind: LitNumber, Num: 2}}}
	assert.Equal(t, "(+ 1 2)", Stringify(list))

	vec := &Vector{Items: []Expr{&Literal{Kind: LitNumber, Num: 1}, &Literal{Kind: LitNumber, Num: 2}}}
	assert.Equal(t, "[1 2]", Stringify(vec))

	m := &Map{Pairs: []MapPair{{Key: &Literal{Kind: LitKeyword, Str: ":a"}, Val: &Literal{Kind: LitNumber, Num: 1}}}}
	assert.Equal(t, "{:a 1}", Stringify(m))
}

func TestStringifyQuoting(t *testing.T) {
	q := &Quote{X: &Symbol{Name: "x"}}
	assert.Equal(t, "'x", Stringify(q))
}
