package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthiness(t *testing.T) {
	assert.False(t, None{}.Truthy())
	assert.False(t, Bool{Value: false}.Truthy())
	assert.True(t, Bool{Value: true}.Truthy())
	assert.True(t, NewNumberFromInt64(0).Truthy())
	assert.True(t, String{Value: ""}.Truthy())
	assert.True(t, NewEntity().Truthy())
}

func TestEqual_NoneOnlyEqualsNone(t *testing.T) {
	assert.True(t, Equal(None{}, None{}))
	assert.False(t, Equal(None{}, Bool{Value: false}))
}

func TestEqual_ValueTypesCompareByValue(t *testing.T) {
	assert.True(t, Equal(Bool{Value: true}, Bool{Value: true}))
	assert.True(t, Equal(String{Value: "x"}, String{Value: "x"}))
	assert.True(t, Equal(NewNumberFromInt64(2), NewNumberFromInt64(2)))
	assert.False(t, Equal(NewNumberFromInt64(2), NewNumberFromInt64(3)))
}

func TestEqual_EntitiesCompareByReferenceIdentity(t *testing.T) {
	a := NewEntity()
	b := NewEntity()
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b))
}

func TestString_Stringification(t *testing.T) {
	assert.Equal(t, "None", None{}.String())
	assert.Equal(t, "true", Bool{Value: true}.String())
	assert.Equal(t, "false", Bool{Value: false}.String())
	assert.Equal(t, "hi", String{Value: "hi"}.String())
}
