package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	ai "github.com/nninad/agentkit"
)

// RunTyped executes a run whose output schema is generated from the struct
// type T, and unmarshals the validated output into a T.
//
// The schema name is derived from the type name using snake_case
// conversion. Struct tags control the generated schema; see
// [agentkit.SchemaFor].
//
// T must be a struct; wrap list outputs in a struct field:
//
//	type PlaceList struct {
//	    Places []TouristPlace `json:"places" required:"true"`
//	}
//
//	list, result, err := runner.RunTyped[PlaceList](ctx, r, task)
func RunTyped[T any](ctx context.Context, r *Runner, task string, opts ...Option) (T, *Result, error) {
	var zero T

	t := reflect.TypeOf(zero)
	if t == nil {
		return zero, nil, fmt.Errorf("RunTyped: cannot use nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return zero, nil, fmt.Errorf("RunTyped: output type must be a struct, got %s", t.Kind())
	}

	schemaName := toSnakeCase(t.Name())
	if schemaName == "" {
		schemaName = "response"
	}

	schemaJSON, err := ai.SchemaFor[T]()
	if err != nil {
		return zero, nil, fmt.Errorf("RunTyped: failed to generate schema: %w", err)
	}

	result, err := r.Run(ctx, task, ai.ResponseSchema{
		Name:   schemaName,
		Schema: schemaJSON,
	}, opts...)
	if err != nil {
		return zero, result, err
	}

	var out T
	if err := json.Unmarshal(result.Output, &out); err != nil {
		return zero, result, fmt.Errorf("RunTyped: failed to unmarshal output into %s: %w", t.String(), err)
	}
	return out, result, nil
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
