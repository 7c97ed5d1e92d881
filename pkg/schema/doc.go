// Package schema adapts a structural-schema capability (goskema) to the
// engine's validation outcome, for callers that need shape guarantees
// rather than, or in addition to, content sanitization.
//
// A Validator wraps a goskema schema: on success the coerced value becomes
// SanitizedData with no errors; on failure every schema issue is translated
// into a shape-invalid error of the form "path: message", preserving the
// schema engine's own path reporting.
//
//	deck, _ := dsl.Object().
//	    Field("title", dsl.StringOf[string]()).Required().
//	    Build()
//	v := schema.NewValidator(deck)
//	res := v.Validate(ctx, raw)
//
// The adapter applies no pattern stripping. Callers that need both shape
// and content safety compose the adapter's output through
// sanitize.ValidateAndSanitize.
package schema
