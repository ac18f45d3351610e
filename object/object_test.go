package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
	assert.True(t, Truthy(&List{}))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "nil", TypeOf(Nil))
	assert.Equal(t, "number", TypeOf(Number(1)))
	assert.Equal(t, "string", TypeOf(String("x")))
	assert.Equal(t, "boolean", TypeOf(Bool(true)))
	assert.Equal(t, "keyword", TypeOf(Keyword(":k")))
	assert.Equal(t, "list", TypeOf(&List{}))
	assert.Equal(t, "vector", TypeOf(&Vector{}))
	assert.Equal(t, "map", TypeOf(&Map{}))
	assert.Equal(t, "fn", TypeOf(&Closure{}))
	assert.Equal(t, "fn", TypeOf(&Primitive{}))
}

func TestEqualStructural(t *testing.T) {
	a := &List{Items: []Value{Number(1), String("x")}}
	b := &List{Items: []Value{Number(1), String("x")}}
	assert.True(t, Equal(a, b))

	m1 := &Map{Entries: []MapEntry{{"a", Number(1)}, {"b", Number(2)}}}
	m2 := &Map{Entries: []MapEntry{{"b", Number(2)}, {"a", Number(1)}}}
	assert.True(t, Equal(m1, m2), "map equality must be order-insensitive")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "nil", Format(Nil, true))
	assert.Equal(t, "6", Format(Number(6), true))
	assert.Equal(t, "3.5", Format(Number(3.5), true))
	assert.Equal(t, "hello", Format(String("hello"), true))
	assert.Equal(t, `"hello"`, Format(String("hello"), false))
	assert.Equal(t, "(1 2)", Format(&List{Items: []Value{Number(1), Number(2)}}, true))
	assert.Equal(t, "#<fn>", Format(&Closure{}, true))
}

func TestMapAssocAndGet(t *testing.T) {
	m := &Map{}
	m2 := m.Assoc("name", String("Alice"))
	assert.Equal(t, String("Alice"), m2.Get("name"))
	assert.Equal(t, Nil, m.Get("name"), "Assoc must not mutate the receiver")

	m3 := m2.Assoc("name", String("Bob"))
	assert.Len(t, m3.Entries, 1)
	assert.Equal(t, String("Bob"), m3.Get("name"))
}
