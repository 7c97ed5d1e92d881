package sanitize

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// Context selects which transform applies to string leaves in addition to
// the universal pattern stripping.
type Context string

const (
	// ContextGeneral strips control characters and trims whitespace.
	ContextGeneral Context = "general"
	// ContextMarkup delegates to the markup-sanitization collaborator.
	ContextMarkup Context = "markup"
	// ContextFilename strips path separators, leading dots and control
	// characters, and clips to a filesystem-safe length.
	ContextFilename Context = "filename"
	// ContextQuery escapes quote and terminator characters. This is a
	// defense-in-depth measure only: parameterized queries remain the real
	// defense, and this transform never makes a string safe to interpolate
	// into SQL. Unlike every other context, the transform is not
	// idempotent: quote doubling compounds, so "O'" becomes "O''" and a
	// second pass yields "O''''". Sanitize query strings exactly once.
	ContextQuery Context = "query-string"
	// ContextURL accepts only http and https URLs; everything else is
	// replaced with the empty string.
	ContextURL Context = "url"
)

func (c Context) valid() bool {
	switch c {
	case ContextGeneral, ContextMarkup, ContextFilename, ContextQuery, ContextURL:
		return true
	}
	return false
}

// Pre-compiled expressions for the default markup sanitizer.
var (
	scriptTagRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	jsEventRegex   = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*')`)
	jsSchemeRegex  = regexp.MustCompile(`(?i)javascript\s*:`)
	exprStyleRegex = regexp.MustCompile(`(?i)\s*style\s*=\s*["'][^"']*expression[^"']*["']`)

	unsafeFilenameRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)

// DefaultMarkupSanitizer is the built-in markup collaborator. It removes
// script blocks with their bodies, inline event handlers, javascript:
// references and CSS expression attributes. It does not escape entities, so
// re-sanitizing already-clean markup is a no-op.
func DefaultMarkupSanitizer(s string) string {
	s = scriptTagRegex.ReplaceAllString(s, "")
	s = jsEventRegex.ReplaceAllString(s, "")
	s = jsSchemeRegex.ReplaceAllString(s, "")
	s = exprStyleRegex.ReplaceAllString(s, "")
	return s
}

func sanitizeGeneral(s string) string {
	return strings.TrimSpace(removeControlChars(s))
}

// removeControlChars drops control characters except tab, newline and
// carriage return.
func removeControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

const maxFilenameLength = 255

func sanitizeFilename(s string) string {
	s = unsafeFilenameRegex.ReplaceAllString(s, "")
	s = removeControlChars(s)
	s = strings.Trim(s, " ")
	s = strings.TrimLeft(s, ".")
	runes := []rune(s)
	if len(runes) > maxFilenameLength {
		s = string(runes[:maxFilenameLength])
	}
	return s
}

// escapeQuery doubles single quotes and removes statement terminators.
// Defense in depth only; see ContextQuery.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, "'", "''")
	s = strings.ReplaceAll(s, ";", "")
	s = strings.ReplaceAll(s, "--", "")
	return s
}

// sanitizeURL parses s and keeps it only when the scheme is http or https.
// Relative references, opaque schemes and unparseable input all collapse to
// the empty string.
func sanitizeURL(s string) string {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https":
		return u.String()
	default:
		return ""
	}
}
