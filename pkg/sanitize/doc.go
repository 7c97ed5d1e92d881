// Package sanitize implements the input validation and sanitization engine
// used for every user- or AI-supplied tree before it is persisted or
// rendered: free text, CSV-derived structures and JSON configuration blobs.
//
// ValidateAndSanitize walks an arbitrary JSON-shaped tree and produces a
// bounded, structurally valid copy. During a single traversal it enforces
// the configured limits (string length, array length, container nesting
// depth, total serialized size), strips every dangerous-content pattern from the
// catalog, applies a context-specific transform to string leaves, and drops
// structurally dangerous object keys. A second, read-only pass over the
// sanitized result scans for residual indicators as a health signal.
//
//	res := sanitize.ValidateAndSanitize(data,
//	    sanitize.WithLimits(limits.Partial{MaxArrayLength: limits.IntPtr(500)}),
//	    sanitize.WithContext(sanitize.ContextMarkup),
//	)
//	if !res.IsValid() {
//	    return res.Err()
//	}
//	store(res.SanitizedData)
//
// Malformed input never panics: every violation is expressed in the Result.
// Blocking issues (size, depth, invalid elements) are errors and suppress
// SanitizedData; recoverable issues (truncation, dropped keys, residual
// patterns) degrade to best-effort output plus warnings. Panics are
// reserved for misconfiguration, such as invalid limit overrides.
//
// The engine holds no mutable shared state; the pattern catalog and limits
// are read-only, so concurrent validations need no coordination.
package sanitize
