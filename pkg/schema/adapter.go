package schema

import (
	"context"

	goskema "github.com/reoring/goskema"

	"github.com/deckforge/inputguard/pkg/sanitize"
)

// Validator wraps a goskema schema and reports through the engine's Result.
type Validator[T any] struct {
	schema goskema.Schema[T]
}

// NewValidator builds a validator around s.
func NewValidator[T any](s goskema.Schema[T]) *Validator[T] {
	return &Validator[T]{schema: s}
}

// Validate parses data against the schema. Shape violations never escape as
// errors or panics; each one becomes a shape-invalid entry in the result.
func (v *Validator[T]) Validate(ctx context.Context, data any) sanitize.Result {
	parsed, err := v.schema.Parse(ctx, data)
	if err == nil {
		return sanitize.Result{SanitizedData: parsed}
	}
	return sanitize.Result{Errors: translate(err)}
}

// ValidatorFunc returns the validator as a plain function, for callers that
// pass validation steps around as values.
func ValidatorFunc[T any](s goskema.Schema[T]) func(context.Context, any) sanitize.Result {
	v := NewValidator(s)
	return v.Validate
}

// translate converts a goskema failure into shape-invalid issues, one per
// violation, keeping the schema engine's JSON Pointer paths.
func translate(err error) []sanitize.Issue {
	iss, ok := goskema.AsIssues(err)
	if !ok {
		return []sanitize.Issue{{
			Path:    "$",
			Kind:    sanitize.IssueShapeInvalid,
			Message: err.Error(),
		}}
	}

	out := make([]sanitize.Issue, 0, len(iss))
	for _, is := range iss {
		path := is.Path
		if path == "" {
			path = "/"
		}
		msg := is.Message
		if msg == "" {
			msg = is.Code
		}
		out = append(out, sanitize.Issue{
			Path:    path,
			Kind:    sanitize.IssueShapeInvalid,
			Message: msg,
		})
	}
	return out
}
