package sanitize

import (
	"encoding/json"

	"github.com/deckforge/inputguard/pkg/limits"
)

// Kind is the closed classification of node shapes the engine understands.
// Every consumer switches over Kind exhaustively; KindInvalid is an explicit
// branch, so an unhandled shape surfaces as an issue instead of passing
// through silently.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// KindOf classifies a JSON-shaped value. Trees are expected in the form
// produced by JSON decoding: map[string]any objects, []any arrays, and
// primitive leaves. Any other concrete type is KindInvalid.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}

// TypeName maps a Kind onto the limits type-allowlist vocabulary.
func (k Kind) TypeName() limits.TypeName {
	switch k {
	case KindNull:
		return limits.TypeNull
	case KindBool:
		return limits.TypeBoolean
	case KindNumber:
		return limits.TypeNumber
	case KindString:
		return limits.TypeString
	case KindArray:
		return limits.TypeArray
	case KindObject:
		return limits.TypeObject
	default:
		return "invalid"
	}
}

func (k Kind) String() string { return string(k.TypeName()) }
