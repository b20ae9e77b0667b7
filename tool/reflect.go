package tool

import (
	"encoding/json"

	ai "github.com/nninad/agentkit"
)

// SchemaFor generates a JSON Schema from a struct type.
// This is a convenience re-export of agentkit.SchemaFor.
func SchemaFor[T any]() (json.RawMessage, error) {
	return ai.SchemaFor[T]()
}

// MustSchemaFor is like SchemaFor but panics on error.
// This is a convenience re-export of agentkit.MustSchemaFor.
func MustSchemaFor[T any]() json.RawMessage {
	return ai.MustSchemaFor[T]()
}
