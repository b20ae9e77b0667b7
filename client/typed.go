package client

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	ai "github.com/nninad/agentkit"
	"github.com/nninad/agentkit/schema"
)

// ChatTyped sends a chat request with a response schema generated from the
// struct type T and unmarshals the reply into a T:
//
//	book, err := client.ChatTyped[BookInfo](ctx, c, msgs)
//
// The reply is normalized against the generated schema before decoding, so
// numeric strings are coerced and defaults for absent optional fields are
// applied. The schema name is derived from the type name using snake_case
// conversion. All options are passed through to the underlying Chat call.
func ChatTyped[T any](ctx context.Context, c *Client, msgs []ai.Message, opts ...ai.Option) (T, error) {
	var zero T

	t := reflect.TypeOf(zero)
	if t == nil {
		return zero, fmt.Errorf("ChatTyped: cannot use nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	name := toSnakeCase(t.Name())
	if name == "" {
		name = "response"
	}
	schemaJSON, err := ai.SchemaFor[T]()
	if err != nil {
		return zero, fmt.Errorf("ChatTyped: failed to generate schema: %w", err)
	}

	allOpts := append([]ai.Option{ai.WithResponseSchema(ai.ResponseSchema{
		Name:   name,
		Schema: schemaJSON,
	})}, opts...)

	resp, err := c.Chat(ctx, msgs, allOpts...)
	if err != nil {
		return zero, err
	}

	// Best effort: fall back to the raw content when normalization rejects
	// it, so the decode error below names the actual offending payload.
	payload := json.RawMessage(resp.Content)
	if normalized, verr := schema.Validate(schemaJSON, payload); verr == nil {
		payload = normalized
	}

	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return zero, &UnmarshalError{
			Content:    resp.Content,
			TargetType: t.String(),
			Err:        err,
		}
	}
	return out, nil
}

// UnmarshalError is returned when the model response cannot be unmarshaled
// into the target type.
type UnmarshalError struct {
	Content    string
	TargetType string
	Err        error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal response into %s: %v", e.TargetType, e.Err)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// toSnakeCase converts a CamelCase string to snake_case.
func toSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
