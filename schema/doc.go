// Package schema provides a fluent API for building JSON Schema objects
// and for validating JSON instances against them.
//
// Schemas describe tool parameters and the structured output a model must
// produce. Build them programmatically with compile-time type safety:
//
//	out := schema.Object().
//		Field("name", schema.String().Desc("Name of the place").Required()).
//		Field("zip_code", schema.Int().Required()).
//		Field("entry_fee", schema.Number().Desc("Entry fee in USD, if applicable")).
//		Field("rating", schema.Number().Min(0).Max(5).Required()).
//		MustBuild()
//
// # Instance Validation
//
// Validate checks a model's JSON answer field-by-field and returns the
// normalized instance, or a *FieldErrors listing every violation:
//
//	normalized, err := schema.Validate(out, resp)
//	var fieldErrs *schema.FieldErrors
//	if errors.As(err, &fieldErrs) {
//		// feed fieldErrs.Error() back to the model as corrective input
//	}
//
// Validation applies lax coercion: numeric strings become numbers, integral
// floats satisfy integer fields, and defaults fill absent optional fields.
package schema
