// Package patterns holds the catalog of dangerous-content rules used by the
// sanitization engine.
//
// A Rule pairs a compiled matcher with a category from a fixed taxonomy
// (code injection, markup injection, URL-scheme injection, control
// characters, path traversal, query injection, command execution, prototype
// pollution, generic tag stripping). A Catalog is an ordered, immutable
// collection of rules: it is built once and never written afterwards, so a
// single catalog is safe to share across concurrent validations without
// coordination.
//
// Default returns the production catalog shared for the process lifetime.
// Tests and special-purpose callers can build a minimal catalog with New
// instead of touching the production rules:
//
//	cat := patterns.New(
//	    patterns.NewRule(patterns.CategoryTagStrip, `<[^>]*>`),
//	)
//	clean := cat.StripAll(userInput)
//
// The package also owns the exact-match denylist of structurally dangerous
// object keys (see DangerousKeys and IsDangerousKey).
package patterns
