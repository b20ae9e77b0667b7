package agentkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFrom_SimpleTypes(t *testing.T) {
	type Args struct {
		Name    string  `json:"name"`
		Age     int     `json:"age"`
		Score   float64 `json:"score"`
		Active  bool    `json:"active"`
		Count   int64   `json:"count"`
		Rating  float32 `json:"rating"`
		SmallID uint8   `json:"small_id"`
	}

	schema := SchemaFrom[Args]().Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	assert.Equal(t, "object", result["type"])
	props := result["properties"].(map[string]any)

	assert.Equal(t, "string", props["name"].(map[string]any)["type"])
	assert.Equal(t, "integer", props["age"].(map[string]any)["type"])
	assert.Equal(t, "number", props["score"].(map[string]any)["type"])
	assert.Equal(t, "boolean", props["active"].(map[string]any)["type"])
	assert.Equal(t, "integer", props["count"].(map[string]any)["type"])
	assert.Equal(t, "number", props["rating"].(map[string]any)["type"])
	assert.Equal(t, "integer", props["small_id"].(map[string]any)["type"])
}

func TestSchemaFrom_ConstraintTags(t *testing.T) {
	type Place struct {
		Name     string  `json:"name" desc:"Name of the place" required:"true"`
		Category string  `json:"category" enum:"museum,park,monument"`
		Rating   float64 `json:"rating" minimum:"0" maximum:"5" required:"true"`
	}

	schema := SchemaFrom[Place]().Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	props := result["properties"].(map[string]any)

	name := props["name"].(map[string]any)
	assert.Equal(t, "Name of the place", name["description"])

	category := props["category"].(map[string]any)
	enum := category["enum"].([]any)
	assert.Len(t, enum, 3)
	assert.Contains(t, enum, "museum")

	rating := props["rating"].(map[string]any)
	assert.Equal(t, 0.0, rating["minimum"])
	assert.Equal(t, 5.0, rating["maximum"])

	required := result["required"].([]any)
	assert.Len(t, required, 2)
	assert.Contains(t, required, "name")
	assert.Contains(t, required, "rating")
}

func TestSchemaFrom_BuilderMethods(t *testing.T) {
	type Args struct {
		Location string `json:"location"`
		Unit     string `json:"unit"`
	}

	schema := SchemaFrom[Args]().
		Desc("location", "The city name").
		Required("location").
		Enum("unit", "celsius", "fahrenheit").
		Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	props := result["properties"].(map[string]any)
	assert.Equal(t, "The city name", props["location"].(map[string]any)["description"])

	enum := props["unit"].(map[string]any)["enum"].([]any)
	assert.Contains(t, enum, "celsius")

	required := result["required"].([]any)
	assert.Equal(t, []any{"location"}, required)
}

func TestSchemaFrom_NumericBoundsMethods(t *testing.T) {
	type Args struct {
		Rating float64 `json:"rating"`
	}

	schema := SchemaFrom[Args]().
		Min("rating", 0).
		Max("rating", 5).
		Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	rating := result["properties"].(map[string]any)["rating"].(map[string]any)
	assert.Equal(t, 0.0, rating["minimum"])
	assert.Equal(t, 5.0, rating["maximum"])
}

func TestSchemaFrom_ArrayOfStructs(t *testing.T) {
	type Item struct {
		Name   string  `json:"name" required:"true"`
		Rating float64 `json:"rating" minimum:"0" maximum:"5"`
	}

	type Args struct {
		Items []Item `json:"items"`
	}

	schema := SchemaFrom[Args]().Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	props := result["properties"].(map[string]any)
	items := props["items"].(map[string]any)
	assert.Equal(t, "array", items["type"])

	itemSchema := items["items"].(map[string]any)
	assert.Equal(t, "object", itemSchema["type"])

	itemProps := itemSchema["properties"].(map[string]any)
	assert.Equal(t, "string", itemProps["name"].(map[string]any)["type"])

	rating := itemProps["rating"].(map[string]any)
	assert.Equal(t, 0.0, rating["minimum"])
	assert.Equal(t, 5.0, rating["maximum"])

	itemRequired := itemSchema["required"].([]any)
	assert.Equal(t, []any{"name"}, itemRequired)
}

func TestSchemaFrom_NestedStruct(t *testing.T) {
	type Address struct {
		Street string `json:"street"`
		City   string `json:"city" required:"true"`
	}

	type Args struct {
		Name    string  `json:"name"`
		Address Address `json:"address"`
	}

	schema := SchemaFrom[Args]().Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	props := result["properties"].(map[string]any)
	addr := props["address"].(map[string]any)
	assert.Equal(t, "object", addr["type"])

	addrProps := addr["properties"].(map[string]any)
	assert.Equal(t, "string", addrProps["street"].(map[string]any)["type"])

	addrRequired := addr["required"].([]any)
	assert.Equal(t, []any{"city"}, addrRequired)
}

func TestSchemaFrom_JsonTagOmit(t *testing.T) {
	type Args struct {
		Public  string `json:"public"`
		Private string `json:"-"`
	}

	schema := SchemaFrom[Args]().Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	props := result["properties"].(map[string]any)
	assert.Contains(t, props, "public")
	assert.NotContains(t, props, "Private")
	assert.NotContains(t, props, "-")
}

func TestSchemaFrom_PointerFields(t *testing.T) {
	type Args struct {
		Name *string `json:"name"`
		Age  *int    `json:"age"`
	}

	schema := SchemaFrom[Args]().Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	props := result["properties"].(map[string]any)
	assert.Equal(t, "string", props["name"].(map[string]any)["type"])
	assert.Equal(t, "integer", props["age"].(map[string]any)["type"])
}

func TestSchemaFrom_EmptyStruct(t *testing.T) {
	type Args struct{}

	schema := SchemaFrom[Args]().Build()

	var result map[string]any
	err := json.Unmarshal(schema, &result)
	require.NoError(t, err)

	assert.Equal(t, "object", result["type"])
	props := result["properties"].(map[string]any)
	assert.Empty(t, props)
}

func TestSchemaFor(t *testing.T) {
	type Args struct {
		Query string `json:"query" required:"true"`
	}

	schema, err := SchemaFor[Args]()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"object","properties":{"query":{"type":"string"}},"required":["query"]}`,
		string(schema))

	assert.Equal(t, schema, MustSchemaFor[Args]())
}
