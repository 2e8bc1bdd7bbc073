package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsAndTypes(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		typ   Type
	}{
		{"null", NewNull(), TypeNull},
		{"boolean", NewBoolean(true), TypeBoolean},
		{"number", NewNumber(3.14), TypeNumber},
		{"string", NewString("s"), TypeString},
		{"object", NewObject(), TypeObject},
		{"array", NewArray(), TypeArray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.value.Type())
		})
	}
}

func TestNilValueIsErrorType(t *testing.T) {
	var v *Value
	assert.Equal(t, TypeError, v.Type())
	assert.Equal(t, "", v.AsString())
	assert.Equal(t, 0.0, v.AsNumber())
	assert.False(t, v.AsBoolean())
	assert.Nil(t, v.AsObject())
	assert.Nil(t, v.AsArray())
	assert.Nil(t, v.DeepCopy())
}

func TestTypedGettersRejectOtherVariants(t *testing.T) {
	n := NewNumber(7)
	assert.Equal(t, "", n.AsString())
	assert.False(t, n.AsBoolean())
	assert.Nil(t, n.AsObject())

	s := NewString("7")
	assert.Equal(t, 0.0, s.AsNumber())
	assert.Equal(t, "7", s.AsString())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "null", TypeNull.String())
	assert.Equal(t, "boolean", TypeBoolean.String())
	assert.Equal(t, "number", TypeNumber.String())
	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "object", TypeObject.String())
	assert.Equal(t, "array", TypeArray.String())
	assert.Equal(t, "error", TypeError.String())
}

func TestEqualsScalars(t *testing.T) {
	assert.True(t, NewNull().Equals(NewNull()))
	assert.True(t, NewBoolean(true).Equals(NewBoolean(true)))
	assert.False(t, NewBoolean(true).Equals(NewBoolean(false)))
	assert.True(t, NewString("a").Equals(NewString("a")))
	assert.False(t, NewString("a").Equals(NewString("b")))

	// Type-sensitive: a number is never equal to a boolean or string.
	assert.False(t, NewNumber(1).Equals(NewBoolean(true)))
	assert.False(t, NewNumber(0).Equals(NewNull()))
	assert.False(t, NewString("1").Equals(NewNumber(1)))

	// Two absent values compare equal.
	var a, b *Value
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(NewNull()))
}

func TestEqualsNumberEpsilon(t *testing.T) {
	assert.True(t, NewNumber(1.0).Equals(NewNumber(1.0000001)))
	assert.False(t, NewNumber(1.0).Equals(NewNumber(1.00001)))
}

func TestEqualsContainers(t *testing.T) {
	a, err := Parse(`{"x":[1,2,{"y":"z"}],"w":null}`)
	require.NoError(t, err)
	b, err := Parse(`{"w":null,"x":[1,2,{"y":"z"}]}`)
	require.NoError(t, err)
	c, err := Parse(`{"x":[2,1,{"y":"z"}],"w":null}`)
	require.NoError(t, err)

	// Object entry order is irrelevant; array element order is not.
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))

	shorter, err := Parse(`{"x":[1,2,{"y":"z"}]}`)
	require.NoError(t, err)
	assert.False(t, a.Equals(shorter))
}

func TestDeepCopyIndependence(t *testing.T) {
	original, err := Parse(`{"user":{"name":"John","tags":["a","b"]},"n":1.5}`)
	require.NoError(t, err)

	copied := original.DeepCopy()
	require.NotNil(t, copied)
	assert.True(t, original.Equals(copied))

	// Mutating the copy must not affect the original.
	require.NoError(t, copied.AsObject().DotSetString("user.name", "Jane"))
	require.NoError(t, copied.AsObject().GetObject("user").GetArray("tags").AppendString("c"))
	assert.Equal(t, "John", original.AsObject().DotGetString("user.name"))
	assert.Equal(t, 2, original.AsObject().GetObject("user").GetArray("tags").Len())
	assert.Equal(t, "Jane", copied.AsObject().DotGetString("user.name"))

	// And the copy is insertable into another document.
	root := NewObject().AsObject()
	assert.NoError(t, root.Set("snapshot", copied))
}
