package patterns

import (
	"regexp"
	"slices"
	"strings"
)

// Category classifies what a rule detects.
type Category string

const (
	CategoryCodeInjection      Category = "code_injection"
	CategoryMarkupInjection    Category = "markup_injection"
	CategorySchemeInjection    Category = "scheme_injection"
	CategoryControlChars       Category = "control_chars"
	CategoryPathTraversal      Category = "path_traversal"
	CategoryQueryInjection     Category = "query_injection"
	CategoryCommandExecution   Category = "command_execution"
	CategoryPrototypePollution Category = "prototype_pollution"
	CategoryTagStrip           Category = "tag_strip"
)

// Rule pairs a compiled matcher with its category.
type Rule struct {
	category Category
	re       *regexp.Regexp
}

// NewRule compiles expr into a rule. It panics on an invalid expression to
// enforce fail-fast initialization, the same way package-level regex tables
// do.
func NewRule(category Category, expr string) Rule {
	return Rule{category: category, re: regexp.MustCompile(expr)}
}

// Category returns the rule's taxonomy tag.
func (r Rule) Category() Category { return r.category }

// Match reports whether s contains the rule's pattern.
func (r Rule) Match(s string) bool { return r.re.MatchString(s) }

// Strip removes every match of the rule's pattern from s.
func (r Rule) Strip(s string) string { return r.re.ReplaceAllString(s, "") }

// Catalog is an ordered, immutable set of rules. The zero value is unusable;
// construct catalogs with New or use Default.
type Catalog struct {
	rules []Rule
}

// New builds a catalog from rules, preserving order. The input slice is
// copied so later mutation by the caller cannot alias into the catalog.
func New(rules ...Rule) *Catalog {
	return &Catalog{rules: slices.Clone(rules)}
}

// Len returns the number of rules in the catalog.
func (c *Catalog) Len() int { return len(c.rules) }

// Rules returns a copy of the catalog's rules in order.
func (c *Catalog) Rules() []Rule { return slices.Clone(c.rules) }

// StripAll removes every match of every rule from s, in catalog order.
func (c *Catalog) StripAll(s string) string {
	for _, r := range c.rules {
		s = r.Strip(s)
	}
	return s
}

// Scan returns the categories whose rules match s, deduplicated, in catalog
// order. It never modifies s.
func (c *Catalog) Scan(s string) []Category {
	var hits []Category
	seen := make(map[Category]bool)
	for _, r := range c.rules {
		if seen[r.category] {
			continue
		}
		if r.Match(s) {
			seen[r.category] = true
			hits = append(hits, r.category)
		}
	}
	return hits
}

// defaultCatalog is shared for the process lifetime. It is safe for
// concurrent readers because it is never written after construction.
//
// Order matters: script blocks are removed with their body before the
// generic tag rule runs, so "<script>payload</script>" never degrades into
// a bare "payload".
var defaultCatalog = New(
	NewRule(CategoryCodeInjection, `\{\{[\s\S]*?\}\}`),
	NewRule(CategoryCodeInjection, `<%[\s\S]*?%>`),
	NewRule(CategoryCodeInjection, `\$\{[^}]*\}`),
	NewRule(CategoryMarkupInjection, `(?is)<script\b[^>]*>.*?</script\s*>`),
	NewRule(CategoryMarkupInjection, `(?is)<(?:iframe|object|embed|style)\b[^>]*>.*?</(?:iframe|object|embed|style)\s*>`),
	NewRule(CategoryMarkupInjection, `(?i)\son\w+\s*=\s*("[^"]*"|'[^']*')`),
	NewRule(CategorySchemeInjection, `(?i)(?:javascript|vbscript|data|file)\s*:`),
	NewRule(CategoryControlChars, "[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]"),
	NewRule(CategoryPathTraversal, `\.\.[\\/]`),
	NewRule(CategoryQueryInjection, `(?i)\b(?:union\s+(?:all\s+)?select|insert\s+into|delete\s+from|drop\s+table|truncate\s+table|exec(?:ute)?\s+\w+)\b`),
	NewRule(CategoryCommandExecution, "`[^`]*`"),
	NewRule(CategoryCommandExecution, `\$\([^)]*\)`),
	NewRule(CategoryCommandExecution, `(?i)[;&|]\s*(?:rm|curl|wget|nc|sh|bash|cmd|powershell)\b`),
	NewRule(CategoryPrototypePollution, `(?i)__proto__`),
	NewRule(CategoryPrototypePollution, `(?i)\bconstructor\s*(?:\.|\[)\s*['"]?prototype\b`),
	NewRule(CategoryTagStrip, `<[^>]*>`),
)

// Default returns the shared production catalog.
func Default() *Catalog { return defaultCatalog }

// dangerousKeys is the exact-match set of object keys that can remap object
// behavior at a later processing stage. Matching is by normalized identity,
// never by pattern.
var dangerousKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
	"eval":        {},
	"exec":        {},
	"execute":     {},
	"system":      {},
	"shell":       {},
	"command":     {},
	"script":      {},
	"spawn":       {},
	"fork":        {},
	"require":     {},
	"import":      {},
	"include":     {},
}

// pollutionKeys is the subset of the denylist that indicates
// structural-identifier remapping (prototype pollution). The post-hoc scan
// looks for these anywhere in the serialized output, including as values.
var pollutionKeys = []string{"__proto__", "constructor", "prototype"}

// IsDangerousKey reports whether key, after normalization, is in the
// denylist. Normalization lowercases and maps hyphens to underscores so
// cosmetic spellings of the same identifier do not slip through.
func IsDangerousKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(key, "-", "_"))
	_, ok := dangerousKeys[normalized]
	return ok
}

// DangerousKeys returns a copy of the denylist.
func DangerousKeys() []string {
	keys := make([]string, 0, len(dangerousKeys))
	for k := range dangerousKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// PollutionIndicators returns the identifiers the post-validation scan
// searches for in serialized output.
func PollutionIndicators() []string {
	return slices.Clone(pollutionKeys)
}
