package sanitize

import (
	"errors"
	"strings"
)

// IssueKind classifies a validation issue. Kinds are outcome categories,
// not Go error types: the engine reports everything through the Result.
type IssueKind string

const (
	// IssueSizeExceeded means the total serialized size is over the bound.
	// Fatal for the call; reported before any traversal.
	IssueSizeExceeded IssueKind = "size_exceeded"
	// IssueDepthExceeded means container nesting, objects and arrays
	// alike, went past the configured maximum. The affected subtree is
	// rejected.
	IssueDepthExceeded IssueKind = "depth_exceeded"
	// IssueElementInvalid means a specific member failed sanitization and
	// was excluded; siblings are unaffected.
	IssueElementInvalid IssueKind = "element_invalid"
	// IssueShapeInvalid means a schema validator reported a structural
	// mismatch.
	IssueShapeInvalid IssueKind = "shape_invalid"
	// IssueSerializationFailure means the input could not be measured or
	// serialized at all.
	IssueSerializationFailure IssueKind = "serialization_failure"

	// IssueTruncation records a string or array clipped to its bound.
	IssueTruncation IssueKind = "truncation"
	// IssueDangerousKey records a denylisted object key dropped with its
	// value.
	IssueDangerousKey IssueKind = "dangerous_key_dropped"
	// IssueKeyCollision records two raw keys sanitizing to the same clean
	// key; the later entry in sorted raw-key order overwrites the earlier.
	IssueKeyCollision IssueKind = "key_collision"
	// IssueResidualPattern records a catalog pattern or structural
	// identifier still present after sanitization.
	IssueResidualPattern IssueKind = "residual_pattern"
)

// Issue is a single error or warning, located by a human-readable path
// ("$", "$.slides[2].title"). Every issue renders to a non-empty,
// independently meaningful string.
type Issue struct {
	Path    string
	Kind    IssueKind
	Message string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// Result is the outcome of one validation call. SanitizedData is non-nil
// if and only if Errors is empty. Errors block the result; Warnings are
// informational and leave the result usable.
type Result struct {
	SanitizedData any
	Errors        []Issue
	Warnings      []Issue
}

// IsValid reports whether the result carries usable sanitized data.
func (r Result) IsValid() bool { return len(r.Errors) == 0 }

// Err returns nil for a valid result, or an error summarizing every
// blocking issue.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	parts := make([]string, len(r.Errors))
	for i, iss := range r.Errors {
		parts[i] = iss.String()
	}
	return errors.New("validation failed: " + strings.Join(parts, "; "))
}

// ErrorStrings renders each blocking issue as "path: message".
func (r Result) ErrorStrings() []string {
	out := make([]string, len(r.Errors))
	for i, iss := range r.Errors {
		out[i] = iss.String()
	}
	return out
}

// WarningStrings renders each warning as "path: message".
func (r Result) WarningStrings() []string {
	out := make([]string, len(r.Warnings))
	for i, iss := range r.Warnings {
		out[i] = iss.String()
	}
	return out
}

// HasError reports whether any blocking issue has the given kind.
func (r Result) HasError(kind IssueKind) bool {
	for _, iss := range r.Errors {
		if iss.Kind == kind {
			return true
		}
	}
	return false
}

// HasWarning reports whether any warning has the given kind.
func (r Result) HasWarning(kind IssueKind) bool {
	for _, iss := range r.Warnings {
		if iss.Kind == kind {
			return true
		}
	}
	return false
}
