package sanitize

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/deckforge/inputguard/pkg/patterns"
)

// postValidate runs the defense-in-depth second pass over the already
// sanitized result: a serialized scan for structural-identifier remapping
// and a per-leaf rescan against the full catalog. Both checks are
// read-only and report warnings only; a hit is a health signal pointing at
// a transformation-order bug, not proof of an exploit.
func (w *walker) postValidate(sanitized any) []Issue {
	var warns []Issue

	raw, err := json.Marshal(sanitized)
	if err != nil {
		// The sanitized tree is built from JSON-shaped values, so this
		// indicates an engine bug rather than bad input. Still a warning:
		// the primary pass already accepted the data.
		return []Issue{{
			Path:    rootPath,
			Kind:    IssueSerializationFailure,
			Message: fmt.Sprintf("post-validation serialization failed: %v", err),
		}}
	}

	serialized := strings.ToLower(string(raw))
	for _, ind := range patterns.PollutionIndicators() {
		if strings.Contains(serialized, ind) {
			warns = append(warns, Issue{
				Path:    rootPath,
				Kind:    IssueResidualPattern,
				Message: fmt.Sprintf("structural identifier %q present in sanitized output", ind),
			})
		}
	}

	w.rescanStrings(sanitized, rootPath, &warns)
	return warns
}

// rescanStrings collects every string leaf and tests it against the full
// catalog again, naming the offending category per hit.
func (w *walker) rescanStrings(v any, path string, warns *[]Issue) {
	switch KindOf(v) {
	case KindString:
		for _, cat := range w.cfg.catalog.Scan(v.(string)) {
			*warns = append(*warns, Issue{
				Path:    path,
				Kind:    IssueResidualPattern,
				Message: fmt.Sprintf("residual %s pattern detected after sanitization", cat),
			})
		}
	case KindArray:
		for i, elem := range v.([]any) {
			w.rescanStrings(elem, fmt.Sprintf("%s[%d]", path, i), warns)
		}
	case KindObject:
		obj := v.(map[string]any)
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			w.rescanStrings(obj[key], path+"."+key, warns)
		}
	case KindNull, KindBool, KindNumber, KindInvalid:
		// No string content to rescan.
	}
}
