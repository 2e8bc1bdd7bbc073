package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The round-trip law: for any valid document D, Parse(Serialize(D)) is
// structurally equal to D under the epsilon-tolerant comparison.
func TestRoundTripLaw(t *testing.T) {
	docs := []string{
		`{}`,
		`[]`,
		`[[[]]]`,
		`{"a":{"b":{"c":{}}}}`,
		`{"s":"with \"quotes\" and \\ and \n","n":-0.125,"i":42,"b":false,"z":null}`,
		`["𝄞","mixed 日本語 text",0.000001,123456789]`,
		`{"list":[1,2.5,"three",true,null,{"k":"v"},[]]}`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			first, err := Parse(doc)
			require.NoError(t, err)
			text, err := first.Serialize()
			require.NoError(t, err)
			second, err := Parse(text)
			require.NoError(t, err)
			assert.True(t, first.Equals(second), "serialized form: %s", text)
		})
	}
}

// Trees built purely through constructors must always serialize to text
// the parser accepts.
func TestConstructedTreesRoundTrip(t *testing.T) {
	root := NewObject()
	obj := root.AsObject()
	require.NoError(t, obj.SetString("title", "escape \t\n\" test"))
	require.NoError(t, obj.SetNumber("count", 3))
	require.NoError(t, obj.SetNumber("ratio", 0.75))
	require.NoError(t, obj.SetBoolean("on", true))
	require.NoError(t, obj.SetNull("none"))

	list := NewArray()
	require.NoError(t, list.AsArray().AppendString("first"))
	require.NoError(t, list.AsArray().AppendNumber(-12))
	inner := NewObject()
	require.NoError(t, inner.AsObject().SetString("deep", "value"))
	require.NoError(t, list.AsArray().Append(inner))
	require.NoError(t, obj.Set("items", list))

	text, err := root.Serialize()
	require.NoError(t, err)
	back, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, root.Equals(back))
}

// Mutation through the full surface, then round-trip again.
func TestMutateThenRoundTrip(t *testing.T) {
	v, err := Parse(`{"keep":1,"drop":2,"arr":[1,2,3]}`)
	require.NoError(t, err)
	obj := v.AsObject()
	require.NoError(t, obj.Remove("drop"))
	require.NoError(t, obj.DotSetString("nested.path", "made"))
	require.NoError(t, obj.GetArray("arr").Remove(1))
	require.NoError(t, obj.GetArray("arr").ReplaceNumber(0, 9))

	text, err := v.Serialize()
	require.NoError(t, err)
	back, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, v.Equals(back))
}
