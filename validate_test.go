package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *Value {
	t.Helper()
	v, err := Parse(s)
	require.NoError(t, err)
	return v
}

func TestValidateNullIsWildcard(t *testing.T) {
	schema := mustParse(t, `{"x":null}`)
	for _, doc := range []string{
		`{"x":1}`,
		`{"x":"s"}`,
		`{"x":[1,2]}`,
		`{"x":{"nested":true}}`,
		`{"x":null}`,
	} {
		assert.NoError(t, Validate(schema, mustParse(t, doc)), "doc %s", doc)
	}
}

func TestValidateEmptyObjectSchema(t *testing.T) {
	schema := mustParse(t, `{}`)
	assert.NoError(t, Validate(schema, mustParse(t, `{}`)))
	assert.NoError(t, Validate(schema, mustParse(t, `{"x":1}`)))
	assert.ErrorIs(t, Validate(schema, mustParse(t, `[1]`)), ErrValidationFailed)
}

func TestValidateObjectRequiredKeys(t *testing.T) {
	schema := mustParse(t, `{"x":null}`)
	// Extra keys are tolerated; missing required keys are not.
	assert.NoError(t, Validate(schema, mustParse(t, `{"x":1,"y":2}`)))
	assert.ErrorIs(t, Validate(schema, mustParse(t, `{"y":2}`)), ErrValidationFailed)
}

func TestValidateArrayTemplate(t *testing.T) {
	schema := mustParse(t, `[1]`)
	assert.NoError(t, Validate(schema, mustParse(t, `[1,2,3]`)))
	assert.NoError(t, Validate(schema, mustParse(t, `[]`)))
	assert.ErrorIs(t, Validate(schema, mustParse(t, `[1,"a"]`)), ErrValidationFailed)

	// Only the first schema element is a template; the rest is ignored.
	mixed := mustParse(t, `[1,"ignored",true]`)
	assert.NoError(t, Validate(mixed, mustParse(t, `[5,6,7]`)))
	assert.ErrorIs(t, Validate(mixed, mustParse(t, `["a"]`)), ErrValidationFailed)

	// An empty array schema matches any array.
	empty := mustParse(t, `[]`)
	assert.NoError(t, Validate(empty, mustParse(t, `[1,"a",null,{}]`)))
}

func TestValidateScalarsByTypeOnly(t *testing.T) {
	schema := mustParse(t, `{"n":1,"s":"template","b":true}`)
	assert.NoError(t, Validate(schema, mustParse(t, `{"n":999,"s":"other","b":false}`)))
	assert.ErrorIs(t, Validate(schema, mustParse(t, `{"n":"not a number","s":"x","b":true}`)), ErrValidationFailed)
}

func TestValidateNestedStructure(t *testing.T) {
	schema := mustParse(t, `{"user":{"name":"","tags":[""]}}`)
	assert.NoError(t, Validate(schema, mustParse(t, `{"user":{"name":"John","tags":["a","b"],"age":30}}`)))
	assert.ErrorIs(t, Validate(schema, mustParse(t, `{"user":{"name":"John","tags":["a",1]}}`)), ErrValidationFailed)
	assert.ErrorIs(t, Validate(schema, mustParse(t, `{"user":{"tags":["a"]}}`)), ErrValidationFailed)
}

func TestValidateAbsentValues(t *testing.T) {
	var absent *Value
	doc := mustParse(t, `{}`)
	assert.ErrorIs(t, Validate(absent, doc), ErrValidationFailed)
	assert.ErrorIs(t, Validate(doc, absent), ErrValidationFailed)
}
