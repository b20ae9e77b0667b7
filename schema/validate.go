package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FieldError describes a single schema violation in an instance.
type FieldError struct {
	// Field is the path to the offending value, e.g. "places[0].rating".
	Field string
	// Message describes the violation in terms the model can act on.
	Message string
}

func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors aggregates every violation found while validating an instance.
// Its Error text is suitable for feeding back to a model as corrective input.
type FieldErrors struct {
	Errors []FieldError
}

func (e *FieldErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.String()
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// Len returns the number of field violations.
func (e *FieldErrors) Len() int { return len(e.Errors) }

func (e *FieldErrors) add(path, format string, args ...any) {
	e.Errors = append(e.Errors, FieldError{Field: path, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a JSON instance against a JSON Schema and returns the
// normalized instance: numeric strings are coerced to numbers, integral
// floats to integers, and defaults are filled in for absent optional fields.
//
// On violation it returns a *FieldErrors listing every failing field.
// Validation is field-by-field: type checks, minimum/maximum and exclusive
// bounds, enum membership, string length and pattern, array item counts and
// item schemas, nested objects and required-field presence.
func Validate(schemaJSON, instance json.RawMessage) (json.RawMessage, error) {
	var node schemaNode
	if err := json.Unmarshal(schemaJSON, &node); err != nil {
		return nil, fmt.Errorf("schema: invalid schema document: %w", err)
	}

	var value any
	if err := json.Unmarshal(instance, &value); err != nil {
		return nil, &FieldErrors{Errors: []FieldError{{
			Message: fmt.Sprintf("output is not valid JSON: %v", err),
		}}}
	}

	errs := &FieldErrors{}
	normalized := validateNode(&node, value, "", errs)
	if errs.Len() > 0 {
		return nil, errs
	}

	out, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal normalized instance: %w", err)
	}
	return out, nil
}

// validateNode validates value against node, appending violations to errs.
// It returns the normalized value (coerced numbers, defaults applied).
func validateNode(node *schemaNode, value any, path string, errs *FieldErrors) any {
	switch node.Type {
	case "string":
		return validateString(node, value, path, errs)
	case "integer":
		return validateInteger(node, value, path, errs)
	case "number":
		return validateNumber(node, value, path, errs)
	case "boolean":
		b, ok := value.(bool)
		if !ok {
			errs.add(path, "expected boolean, got %s", jsonTypeName(value))
			return value
		}
		return b
	case "array":
		return validateArray(node, value, path, errs)
	case "object":
		return validateObject(node, value, path, errs)
	case "", "null":
		return value
	default:
		errs.add(path, "unsupported schema type %q", node.Type)
		return value
	}
}

func validateString(node *schemaNode, value any, path string, errs *FieldErrors) any {
	s, ok := value.(string)
	if !ok {
		errs.add(path, "expected string, got %s", jsonTypeName(value))
		return value
	}
	if node.MinLength != nil && len(s) < *node.MinLength {
		errs.add(path, "string shorter than minLength %d", *node.MinLength)
	}
	if node.MaxLength != nil && len(s) > *node.MaxLength {
		errs.add(path, "string longer than maxLength %d", *node.MaxLength)
	}
	if node.Pattern != "" {
		if re, err := regexp.Compile(node.Pattern); err == nil && !re.MatchString(s) {
			errs.add(path, "value %q does not match pattern %q", s, node.Pattern)
		}
	}
	if len(node.Enum) > 0 && !enumContains(node.Enum, s) {
		errs.add(path, "value %q is not one of %s", s, enumList(node.Enum))
	}
	return s
}

func validateInteger(node *schemaNode, value any, path string, errs *FieldErrors) any {
	f, ok := coerceNumber(value)
	if !ok {
		errs.add(path, "expected integer, got %s", jsonTypeName(value))
		return value
	}
	if f != math.Trunc(f) {
		errs.add(path, "expected integer, got non-integral number %v", f)
		return value
	}
	checkBounds(node, f, path, errs)
	if len(node.Enum) > 0 && !enumContains(node.Enum, f) {
		errs.add(path, "value %v is not one of %s", f, enumList(node.Enum))
	}
	return int64(f)
}

func validateNumber(node *schemaNode, value any, path string, errs *FieldErrors) any {
	f, ok := coerceNumber(value)
	if !ok {
		errs.add(path, "expected number, got %s", jsonTypeName(value))
		return value
	}
	checkBounds(node, f, path, errs)
	if len(node.Enum) > 0 && !enumContains(node.Enum, f) {
		errs.add(path, "value %v is not one of %s", f, enumList(node.Enum))
	}
	return f
}

func checkBounds(node *schemaNode, f float64, path string, errs *FieldErrors) {
	if node.Minimum != nil && f < *node.Minimum {
		errs.add(path, "value %v is below minimum %v", f, *node.Minimum)
	}
	if node.Maximum != nil && f > *node.Maximum {
		errs.add(path, "value %v is above maximum %v", f, *node.Maximum)
	}
	if node.ExclusiveMinimum != nil && f <= *node.ExclusiveMinimum {
		errs.add(path, "value %v must be greater than %v", f, *node.ExclusiveMinimum)
	}
	if node.ExclusiveMaximum != nil && f >= *node.ExclusiveMaximum {
		errs.add(path, "value %v must be less than %v", f, *node.ExclusiveMaximum)
	}
}

func validateArray(node *schemaNode, value any, path string, errs *FieldErrors) any {
	arr, ok := value.([]any)
	if !ok {
		errs.add(path, "expected array, got %s", jsonTypeName(value))
		return value
	}
	if node.MinItems != nil && len(arr) < *node.MinItems {
		errs.add(path, "array has fewer than %d items", *node.MinItems)
	}
	if node.MaxItems != nil && len(arr) > *node.MaxItems {
		errs.add(path, "array has more than %d items", *node.MaxItems)
	}
	if node.Items == nil {
		return arr
	}
	normalized := make([]any, len(arr))
	for i, item := range arr {
		normalized[i] = validateNode(node.Items, item, fmt.Sprintf("%s[%d]", path, i), errs)
	}
	return normalized
}

func validateObject(node *schemaNode, value any, path string, errs *FieldErrors) any {
	obj, ok := value.(map[string]any)
	if !ok {
		errs.add(path, "expected object, got %s", jsonTypeName(value))
		return value
	}

	normalized := make(map[string]any, len(obj))
	for name, prop := range node.Properties {
		fieldPath := joinPath(path, name)
		fieldValue, present := obj[name]

		if !present || fieldValue == nil {
			if isRequired(node, name) {
				if present {
					errs.add(fieldPath, "required field must not be null")
				} else {
					errs.add(fieldPath, "required field is missing")
				}
				continue
			}
			if prop.Default != nil {
				normalized[name] = prop.Default
			} else if present {
				// Explicit null on an optional field is preserved.
				normalized[name] = nil
			}
			continue
		}

		normalized[name] = validateNode(prop, fieldValue, fieldPath, errs)
	}

	// Carry through (or reject) properties outside the schema.
	for name, fieldValue := range obj {
		if _, known := node.Properties[name]; known {
			continue
		}
		if node.AdditionalProperties != nil && !*node.AdditionalProperties {
			errs.add(joinPath(path, name), "unexpected field")
			continue
		}
		normalized[name] = fieldValue
	}

	return normalized
}

func isRequired(node *schemaNode, name string) bool {
	for _, r := range node.Required {
		if r == name {
			return true
		}
	}
	return false
}

// coerceNumber accepts JSON numbers and numeric strings.
func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func enumContains(enum []any, value any) bool {
	for _, e := range enum {
		if numE, okE := coerceNumber(e); okE {
			if numV, okV := coerceNumber(value); okV && numE == numV {
				return true
			}
			continue
		}
		if e == value {
			return true
		}
	}
	return false
}

func enumList(enum []any) string {
	parts := make([]string, len(enum))
	for i, e := range enum {
		parts[i] = fmt.Sprintf("%v", e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
