package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/inputguard/pkg/sanitize"
)

func sanitizeIn(t *testing.T, ctx sanitize.Context, input string) string {
	t.Helper()
	res := sanitize.ValidateAndSanitize(input, sanitize.WithContext(ctx))
	require.True(t, res.IsValid())
	out, ok := res.SanitizedData.(string)
	require.True(t, ok)
	return out
}

func TestGeneralContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"keeps inner newlines", "line one\nline two", "line one\nline two"},
		{"strips control characters", "a\x00b\x1bc", "abc"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeIn(t, sanitize.ContextGeneral, tt.input))
		})
	}
}

func TestFilenameContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips traversal and separators", "../../etc/passwd", "etcpasswd"},
		{"strips leading dots", " ..hidden.csv ", "hidden.csv"},
		{"strips reserved characters", `q3:report|final?.csv`, "q3reportfinal.csv"},
		{"plain name unchanged", "revenue-2026.csv", "revenue-2026.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeIn(t, sanitize.ContextFilename, tt.input))
		})
	}
}

func TestQueryContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"doubles single quotes", "O'Brien", "O''Brien"},
		{"removes terminators", "name; --comment", "name comment"},
		{"strips injection keywords at pattern stage", "1 union select secret", "1  secret"},
		{"plain value unchanged", "deck_42", "deck_42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeIn(t, sanitize.ContextQuery, tt.input))
		})
	}
}

func TestQueryContextNotIdempotent(t *testing.T) {
	t.Parallel()

	// Quote doubling compounds on repeated passes. The query context is
	// the documented exception to re-sanitization being a no-op, so query
	// strings must be sanitized exactly once.
	once := sanitizeIn(t, sanitize.ContextQuery, "O'Brien")
	assert.Equal(t, "O''Brien", once)

	twice := sanitizeIn(t, sanitize.ContextQuery, once)
	assert.Equal(t, "O''''Brien", twice)
	assert.NotEqual(t, once, twice)
}

func TestURLContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"https accepted", "https://example.com/deck/42", "https://example.com/deck/42"},
		{"http accepted", "http://example.com", "http://example.com"},
		{"ftp rejected", "ftp://example.com/file", ""},
		{"javascript scheme rejected", "javascript:alert(1)", ""},
		{"relative reference rejected", "/assets/logo.png", ""},
		{"garbage rejected", "not a url at all", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeIn(t, sanitize.ContextURL, tt.input))
		})
	}
}

func TestMarkupContextDelegation(t *testing.T) {
	t.Parallel()

	t.Run("custom collaborator receives the stripped string", func(t *testing.T) {
		var seen string
		res := sanitize.ValidateAndSanitize("<script>x</script>title",
			sanitize.WithContext(sanitize.ContextMarkup),
			sanitize.WithMarkupSanitizer(func(s string) string {
				seen = s
				return s
			}),
		)
		require.True(t, res.IsValid())
		assert.Equal(t, "title", seen, "catalog stripping runs before the context transform")
	})

	t.Run("default collaborator is idempotent", func(t *testing.T) {
		once := sanitize.DefaultMarkupSanitizer(`text onclick="x" javascript: more`)
		twice := sanitize.DefaultMarkupSanitizer(once)
		assert.Equal(t, once, twice)
	})
}
