package sanitize

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	"golang.org/x/text/unicode/norm"

	"github.com/deckforge/inputguard/pkg/patterns"
)

// rootPath locates the top of the input tree in issue messages.
const rootPath = "$"

// ValidateAndSanitize walks data once, enforcing the configured bounds and
// stripping dangerous content, and returns the outcome. See the package
// documentation for the traversal rules and failure semantics.
func ValidateAndSanitize(data any, opts ...Option) Result {
	cfg := newConfig(opts...)
	w := &walker{cfg: cfg}

	// Size guard: measure before traversing so pathological inputs are
	// rejected without paying for a walk.
	raw, err := json.Marshal(data)
	if err != nil {
		return Result{Errors: []Issue{{
			Path:    rootPath,
			Kind:    IssueSerializationFailure,
			Message: fmt.Sprintf("input could not be serialized for size check: %v", err),
		}}}
	}
	if int64(len(raw)) > cfg.limits.MaxFileSize() {
		return Result{Errors: []Issue{{
			Path:    rootPath,
			Kind:    IssueSizeExceeded,
			Message: fmt.Sprintf("serialized size %d exceeds limit %d bytes", len(raw), cfg.limits.MaxFileSize()),
		}}}
	}

	node := w.walk(data, rootPath, 1)
	if len(node.errors) > 0 || !node.ok {
		return Result{Errors: node.errors, Warnings: node.warnings}
	}

	warnings := append(node.warnings, w.postValidate(node.value)...)
	return Result{SanitizedData: node.value, Warnings: warnings}
}

type walker struct {
	cfg config
}

// nodeResult is the immutable outcome of sanitizing one subtree. Issues are
// merged upward at each level instead of accumulating into shared slices,
// so sibling branches can never alias each other's state.
type nodeResult struct {
	value    any
	ok       bool
	errors   []Issue
	warnings []Issue
}

func errorNode(path string, kind IssueKind, msg string) nodeResult {
	return nodeResult{errors: []Issue{{Path: path, Kind: kind, Message: msg}}}
}

// walk dispatches on the node's shape. depth counts container nesting
// levels, objects and arrays alike: the root container is depth 1, and
// depth MaxObjectDepth is the last level accepted. Checking the bound at
// every container keeps recursion depth bounded no matter how the input
// nests.
func (w *walker) walk(v any, path string, depth int) nodeResult {
	kind := KindOf(v)
	if kind == KindInvalid {
		return errorNode(path, IssueElementInvalid, fmt.Sprintf("unsupported value type %T", v))
	}
	if !w.cfg.limits.Allows(kind.TypeName()) {
		return errorNode(path, IssueElementInvalid, fmt.Sprintf("type %s is not allowed", kind))
	}

	switch kind {
	case KindNull, KindBool, KindNumber:
		// These shapes cannot carry the sanitized categories; pass through.
		return nodeResult{value: v, ok: true}
	case KindString:
		s, warns := w.sanitizeString(v.(string), path, w.cfg.context)
		return nodeResult{value: s, ok: true, warnings: warns}
	case KindArray:
		return w.walkArray(v.([]any), path, depth)
	case KindObject:
		return w.walkObject(v.(map[string]any), path, depth)
	default:
		return errorNode(path, IssueElementInvalid, fmt.Sprintf("unsupported value type %T", v))
	}
}

// sanitizeString runs the universal pipeline on one string leaf: Unicode
// normalization, catalog stripping in catalog order, the context transform,
// then length clipping. Truncation is a warning, never an error.
func (w *walker) sanitizeString(s, path string, ctx Context) (string, []Issue) {
	s = norm.NFC.String(s)
	s = w.cfg.catalog.StripAll(s)

	switch ctx {
	case ContextMarkup:
		s = w.cfg.markup(s)
	case ContextFilename:
		s = sanitizeFilename(s)
	case ContextQuery:
		s = escapeQuery(s)
	case ContextURL:
		s = sanitizeURL(s)
	default:
		s = sanitizeGeneral(s)
	}

	var warns []Issue
	if runes := []rune(s); len(runes) > w.cfg.limits.MaxStringLength() {
		s = string(runes[:w.cfg.limits.MaxStringLength()])
		warns = append(warns, Issue{
			Path:    path,
			Kind:    IssueTruncation,
			Message: fmt.Sprintf("string truncated from %d to %d characters", len(runes), w.cfg.limits.MaxStringLength()),
		})
	}
	return s, warns
}

// walkArray truncates over-long arrays with a warning (the dropped tail is
// never validated) and sanitizes the remaining elements independently: an
// invalid element is excluded without aborting its siblings. Arrays count
// toward the nesting bound like objects; otherwise a tree of pure arrays
// would recurse without limit.
func (w *walker) walkArray(arr []any, path string, depth int) nodeResult {
	if depth > w.cfg.limits.MaxObjectDepth() {
		return errorNode(path, IssueDepthExceeded,
			fmt.Sprintf("array nesting depth %d exceeds maximum %d", depth, w.cfg.limits.MaxObjectDepth()))
	}

	res := nodeResult{ok: true}

	if len(arr) > w.cfg.limits.MaxArrayLength() {
		res.warnings = append(res.warnings, Issue{
			Path:    path,
			Kind:    IssueTruncation,
			Message: fmt.Sprintf("array truncated from %d to %d elements", len(arr), w.cfg.limits.MaxArrayLength()),
		})
		arr = arr[:w.cfg.limits.MaxArrayLength()]
	}

	out := make([]any, 0, len(arr))
	for i, elem := range arr {
		child := w.walk(elem, fmt.Sprintf("%s[%d]", path, i), depth+1)
		res.errors = append(res.errors, child.errors...)
		res.warnings = append(res.warnings, child.warnings...)
		if child.ok {
			out = append(out, child.value)
		}
	}
	res.value = out
	return res
}

// walkObject rejects the whole subtree when nesting goes past the depth
// bound, sanitizes each key as a general-context string, drops denylisted
// keys with a warning, and recurses into values one level deeper.
func (w *walker) walkObject(obj map[string]any, path string, depth int) nodeResult {
	if depth > w.cfg.limits.MaxObjectDepth() {
		return errorNode(path, IssueDepthExceeded,
			fmt.Sprintf("object nesting depth %d exceeds maximum %d", depth, w.cfg.limits.MaxObjectDepth()))
	}

	// Deterministic key order keeps issue ordering stable across runs.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := nodeResult{ok: true}
	out := make(map[string]any, len(obj))
	for _, key := range keys {
		keyPath := path + "." + key

		// The raw key is checked first: the catalog itself strips
		// identifiers like __proto__, and the denylist must see the key
		// before stripping erases the evidence.
		if patterns.IsDangerousKey(key) {
			res.warnings = append(res.warnings, Issue{
				Path:    keyPath,
				Kind:    IssueDangerousKey,
				Message: fmt.Sprintf("dangerous key %q dropped", key),
			})
			continue
		}

		cleanKey, keyWarns := w.sanitizeString(key, keyPath, ContextGeneral)
		res.warnings = append(res.warnings, keyWarns...)
		if cleanKey == "" {
			res.warnings = append(res.warnings, Issue{
				Path:    keyPath,
				Kind:    IssueDangerousKey,
				Message: fmt.Sprintf("key %q empty after sanitization; entry dropped", key),
			})
			continue
		}
		// Checked again after sanitization: control characters or cosmetic
		// spellings may have hidden a denylisted identifier.
		if patterns.IsDangerousKey(cleanKey) {
			res.warnings = append(res.warnings, Issue{
				Path:    keyPath,
				Kind:    IssueDangerousKey,
				Message: fmt.Sprintf("dangerous key %q dropped", cleanKey),
			})
			continue
		}

		child := w.walk(obj[key], keyPath, depth+1)
		res.errors = append(res.errors, child.errors...)
		res.warnings = append(res.warnings, child.warnings...)
		if child.ok {
			// Sorted raw-key iteration makes the overwrite deterministic:
			// the later raw key wins.
			if _, taken := out[cleanKey]; taken {
				res.warnings = append(res.warnings, Issue{
					Path:    keyPath,
					Kind:    IssueKeyCollision,
					Message: fmt.Sprintf("key %q sanitizes to %q, replacing an earlier entry", key, cleanKey),
				})
			}
			out[cleanKey] = child.value
		}
	}
	res.value = out
	return res
}
