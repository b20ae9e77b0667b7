package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unmarshalSchema(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestStringBuilder(t *testing.T) {
	raw, err := String().
		Desc("A city name").
		MinLength(1).
		MaxLength(100).
		Build()
	require.NoError(t, err)

	out := unmarshalSchema(t, raw)
	assert.Equal(t, "string", out["type"])
	assert.Equal(t, "A city name", out["description"])
	assert.Equal(t, 1.0, out["minLength"])
	assert.Equal(t, 100.0, out["maxLength"])
}

func TestStringBuilder_Enum(t *testing.T) {
	raw, err := String().Enum("celsius", "fahrenheit").Build()
	require.NoError(t, err)

	out := unmarshalSchema(t, raw)
	assert.Equal(t, []any{"celsius", "fahrenheit"}, out["enum"])
}

func TestStringBuilder_InvalidRange(t *testing.T) {
	_, err := String().MinLength(10).MaxLength(1).Build()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestStringBuilder_InvalidPattern(t *testing.T) {
	_, err := String().Pattern("[unclosed").Build()
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestNumberBuilder(t *testing.T) {
	raw, err := Number().Min(0).Max(5).Default(2.5).Build()
	require.NoError(t, err)

	out := unmarshalSchema(t, raw)
	assert.Equal(t, "number", out["type"])
	assert.Equal(t, 0.0, out["minimum"])
	assert.Equal(t, 5.0, out["maximum"])
	assert.Equal(t, 2.5, out["default"])
}

func TestNumberBuilder_InvalidRange(t *testing.T) {
	_, err := Number().Min(10).Max(1).Build()
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Number().ExclusiveMin(5).ExclusiveMax(5).Build()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestIntBuilder(t *testing.T) {
	raw, err := Int().Min(1).Max(10).Enum(1, 5, 10).Build()
	require.NoError(t, err)

	out := unmarshalSchema(t, raw)
	assert.Equal(t, "integer", out["type"])
	assert.Len(t, out["enum"].([]any), 3)
}

func TestArrayBuilder(t *testing.T) {
	raw, err := Array(String()).MinItems(1).MaxItems(5).Build()
	require.NoError(t, err)

	out := unmarshalSchema(t, raw)
	assert.Equal(t, "array", out["type"])
	items := out["items"].(map[string]any)
	assert.Equal(t, "string", items["type"])
}

func TestArrayBuilder_InvalidItemsRange(t *testing.T) {
	_, err := Array(String()).MinItems(5).MaxItems(1).Build()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestArrayBuilder_InvalidItemSchema(t *testing.T) {
	_, err := Array(Number().Min(10).Max(1)).Build()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestObjectBuilder(t *testing.T) {
	raw, err := Object().
		Desc("A tourist place").
		Field("name", String().Required()).
		Field("rating", Number().Min(0).Max(5).Required()).
		Field("note", String()).
		AdditionalProperties(false).
		Build()
	require.NoError(t, err)

	out := unmarshalSchema(t, raw)
	assert.Equal(t, "object", out["type"])
	assert.Equal(t, "A tourist place", out["description"])
	assert.Equal(t, false, out["additionalProperties"])

	props := out["properties"].(map[string]any)
	assert.Len(t, props, 3)

	required := out["required"].([]any)
	assert.ElementsMatch(t, []any{"name", "rating"}, required)
}

func TestObjectBuilder_DuplicateRequired(t *testing.T) {
	raw, err := Object().
		Field("name", String().Required()).
		Field("name", String().Required()).
		Build()
	require.NoError(t, err)

	out := unmarshalSchema(t, raw)
	assert.Len(t, out["required"].([]any), 1)
}

func TestObjectBuilder_InvalidFieldSchema(t *testing.T) {
	_, err := Object().
		Field("rating", Number().Min(10).Max(1)).
		Build()

	var constraintErr *ConstraintError
	require.ErrorAs(t, err, &constraintErr)
	assert.Equal(t, "rating", constraintErr.Field)
}

func TestObjectBuilder_InvalidFieldType(t *testing.T) {
	assert.Panics(t, func() {
		Object().Field("bad", "not a builder")
	})
}

func TestMustBuild_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		Number().Min(10).Max(1).MustBuild()
	})
}

func TestNestedComposition(t *testing.T) {
	raw := Object().
		Field("city", String().Required()).
		Field("places", Array(
			Object().
				Field("name", String().Required()).
				Field("rating", Number().Min(0).Max(5)),
		).Required()).
		MustBuild()

	out := unmarshalSchema(t, raw)
	places := out["properties"].(map[string]any)["places"].(map[string]any)
	assert.Equal(t, "array", places["type"])

	item := places["items"].(map[string]any)
	assert.Equal(t, "object", item["type"])
	itemProps := item["properties"].(map[string]any)
	assert.Contains(t, itemProps, "rating")
}
