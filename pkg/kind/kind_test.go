package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		name     string
		k        Kind
		expected string
	}{
		{name: "null", k: Null, expected: "Null"},
		{name: "signed byte", k: SignedByte, expected: "SignedByte"},
		{name: "unsigned integer", k: UnsignedInteger, expected: "UnsignedInteger"},
		{name: "boolean", k: Boolean, expected: "Boolean"},
		{name: "single float", k: SingleFloat, expected: "SingleFloat"},
		{name: "utf8 string", k: Utf8String, expected: "Utf8String"},
		{name: "typed array", k: TypedArray, expected: "TypedArray"},
		{name: "untyped map", k: UntypedMap, expected: "UntypedMap"},
		{name: "unknown", k: Kind(200), expected: "UnknownKind(200)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.k.String())
		})
	}
}

func TestKind_Valid(t *testing.T) {
	for k := Null; k <= Utf8String; k++ {
		assert.Truef(t, k.Valid(), "kind %d should be valid", k)
	}
	assert.True(t, TypedArray.Valid())
	assert.True(t, UntypedArray.Valid())
	assert.True(t, TypedMap.Valid())
	assert.True(t, UntypedMap.Valid())

	assert.False(t, Kind(12).Valid())
	assert.False(t, Kind(127).Valid())
	assert.False(t, Kind(132).Valid())
	assert.False(t, Kind(255).Valid())
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, Value, CategoryOf(Null))
	assert.Equal(t, Value, CategoryOf(Utf8String))
	assert.Equal(t, Container, CategoryOf(TypedArray))
	assert.Equal(t, Container, CategoryOf(UntypedMap))
}

func TestIsContainerIsValue(t *testing.T) {
	assert.True(t, IsContainer(TypedMap))
	assert.False(t, IsValue(TypedMap))
	assert.True(t, IsValue(Boolean))
	assert.False(t, IsContainer(Boolean))
}

func TestSameKindSameCategory(t *testing.T) {
	assert.True(t, SameKind(SignedInteger, SignedInteger))
	assert.False(t, SameKind(SignedInteger, UnsignedInteger))

	assert.True(t, SameCategory(TypedArray, UntypedMap))
	assert.False(t, SameCategory(TypedArray, Boolean))
}
