package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_LocalSetAndGet(t *testing.T) {
	e := NewEntity()
	e.Set(String{Value: "k"}, NewNumberFromInt64(1))
	got, ok := e.GetLocal(String{Value: "k"})
	require.True(t, ok)
	assert.True(t, got.(*Number).Equal(NewNumberFromInt64(1)))
}

func TestEntity_OverwriteSameKey(t *testing.T) {
	e := NewEntity()
	e.Set(String{Value: "k"}, NewNumberFromInt64(1))
	e.Set(String{Value: "k"}, NewNumberFromInt64(2))
	assert.Equal(t, 1, e.LocalSize())
	got, _ := e.GetLocal(String{Value: "k"})
	assert.True(t, got.(*Number).Equal(NewNumberFromInt64(2)))
}

func TestEntity_NumericKeysCompareByValue(t *testing.T) {
	e := NewEntity()
	e.Set(NewNumberFromInt64(2), String{Value: "two"})
	two, ok := NewNumberFromDecimalText("2.0")
	require.True(t, ok)
	got, ok := e.GetLocal(two)
	require.True(t, ok)
	assert.Equal(t, String{Value: "two"}, got)
}

func TestEntity_PrototypeLookupThreeLevels(t *testing.T) {
	grand := NewEntity()
	grand.Set(String{Value: "g"}, NewNumberFromInt64(1))
	parent := NewEntity()
	parent.Metaentity = grand
	child := NewEntity()
	child.Metaentity = parent

	got := child.Get(String{Value: "g"})
	assert.True(t, got.(*Number).Equal(NewNumberFromInt64(1)))

	// writing through the child creates a local entry, leaving the
	// grandparent untouched (§3, §8).
	child.Set(String{Value: "g"}, NewNumberFromInt64(99))
	assert.True(t, child.Get(String{Value: "g"}).(*Number).Equal(NewNumberFromInt64(99)))
	assert.True(t, grand.Get(String{Value: "g"}).(*Number).Equal(NewNumberFromInt64(1)))
}

func TestEntity_MissingKeyReturnsNone(t *testing.T) {
	e := NewEntity()
	assert.Equal(t, None{}, e.Get(String{Value: "missing"}))
}

func TestArray_ElementsAndConcatDoesNotMutate(t *testing.T) {
	a := NewArray(NewNumberFromInt64(10), NewNumberFromInt64(20))
	b := NewArray(NewNumberFromInt64(30))

	result := a.Concat(b)

	assert.Equal(t, 2, a.IndexedLen())
	assert.Equal(t, 1, b.IndexedLen())
	assert.Equal(t, 3, result.IndexedLen())

	elems := result.Elements()
	require.Len(t, elems, 3)
	assert.True(t, elems[0].(*Number).Equal(NewNumberFromInt64(10)))
	assert.True(t, elems[2].(*Number).Equal(NewNumberFromInt64(30)))
}

func TestArray_ConcatWithNonEntityAppendsSingleValue(t *testing.T) {
	a := NewArray(NewNumberFromInt64(1))
	result := a.Concat(NewNumberFromInt64(2))
	elems := result.Elements()
	require.Len(t, elems, 2)
	assert.True(t, elems[1].(*Number).Equal(NewNumberFromInt64(2)))
}

func TestEntity_OrderedKeysPreservesInsertionOrder(t *testing.T) {
	e := NewEntity()
	e.Set(String{Value: "b"}, NewNumberFromInt64(1))
	e.Set(String{Value: "a"}, NewNumberFromInt64(2))
	keys := e.OrderedKeys()
	require.Len(t, keys, 2)
	assert.Equal(t, String{Value: "b"}, keys[0])
	assert.Equal(t, String{Value: "a"}, keys[1])
}
