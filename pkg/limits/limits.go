package limits

import (
	"fmt"
	"maps"
)

// Documented defaults, merged under any caller-supplied override.
const (
	DefaultMaxStringLength = 10_000
	DefaultMaxArrayLength  = 1_000
	DefaultMaxObjectDepth  = 10
	DefaultMaxFileSize     = 10 << 20 // 10 MiB
)

// TypeName identifies a value shape permitted in input trees.
type TypeName string

const (
	TypeString  TypeName = "string"
	TypeNumber  TypeName = "number"
	TypeBoolean TypeName = "boolean"
	TypeArray   TypeName = "array"
	TypeObject  TypeName = "object"
	TypeNull    TypeName = "null"
)

// knownTypes guards Merge against typos in overrides.
var knownTypes = map[TypeName]struct{}{
	TypeString:  {},
	TypeNumber:  {},
	TypeBoolean: {},
	TypeArray:   {},
	TypeObject:  {},
	TypeNull:    {},
}

// Limits holds the bounds for one validation call. Values are reached only
// through accessors and Merge returns a fresh value, so a Limits can be
// shared between concurrent validations without coordination.
type Limits struct {
	maxStringLength int
	maxArrayLength  int
	maxObjectDepth  int
	maxFileSize     int64
	allowedTypes    map[TypeName]struct{}
}

// Partial is a caller-supplied override. Nil fields keep the defaults; an
// empty AllowedTypes slice keeps the default allow-all set.
type Partial struct {
	MaxStringLength *int
	MaxArrayLength  *int
	MaxObjectDepth  *int
	MaxFileSize     *int64
	AllowedTypes    []TypeName
}

// Default returns the documented default bounds with all types allowed.
func Default() Limits {
	return Limits{
		maxStringLength: DefaultMaxStringLength,
		maxArrayLength:  DefaultMaxArrayLength,
		maxObjectDepth:  DefaultMaxObjectDepth,
		maxFileSize:     DefaultMaxFileSize,
		allowedTypes:    maps.Clone(knownTypes),
	}
}

// Merge returns a new Limits with p applied over l. The receiver is never
// modified. Non-positive bounds and unknown type names are configuration
// mistakes and are returned as errors rather than validation outcomes.
func (l Limits) Merge(p Partial) (Limits, error) {
	out := l
	out.allowedTypes = maps.Clone(l.allowedTypes)

	if p.MaxStringLength != nil {
		if *p.MaxStringLength <= 0 {
			return Limits{}, fmt.Errorf("%w: max string length %d", ErrInvalidBound, *p.MaxStringLength)
		}
		out.maxStringLength = *p.MaxStringLength
	}
	if p.MaxArrayLength != nil {
		if *p.MaxArrayLength <= 0 {
			return Limits{}, fmt.Errorf("%w: max array length %d", ErrInvalidBound, *p.MaxArrayLength)
		}
		out.maxArrayLength = *p.MaxArrayLength
	}
	if p.MaxObjectDepth != nil {
		if *p.MaxObjectDepth <= 0 {
			return Limits{}, fmt.Errorf("%w: max object depth %d", ErrInvalidBound, *p.MaxObjectDepth)
		}
		out.maxObjectDepth = *p.MaxObjectDepth
	}
	if p.MaxFileSize != nil {
		if *p.MaxFileSize <= 0 {
			return Limits{}, fmt.Errorf("%w: max file size %d", ErrInvalidBound, *p.MaxFileSize)
		}
		out.maxFileSize = *p.MaxFileSize
	}
	if len(p.AllowedTypes) > 0 {
		allowed := make(map[TypeName]struct{}, len(p.AllowedTypes))
		for _, t := range p.AllowedTypes {
			if _, ok := knownTypes[t]; !ok {
				return Limits{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
			}
			allowed[t] = struct{}{}
		}
		out.allowedTypes = allowed
	}
	return out, nil
}

// MaxStringLength returns the maximum string length in runes.
func (l Limits) MaxStringLength() int { return l.maxStringLength }

// MaxArrayLength returns the maximum number of array elements.
func (l Limits) MaxArrayLength() int { return l.maxArrayLength }

// MaxObjectDepth returns the deepest container nesting level accepted;
// objects and arrays both consume a level. Depth MaxObjectDepth is the
// last level accepted; one past it is rejected.
func (l Limits) MaxObjectDepth() int { return l.maxObjectDepth }

// MaxFileSize returns the maximum total serialized size in bytes.
func (l Limits) MaxFileSize() int64 { return l.maxFileSize }

// Allows reports whether values of type t are permitted.
func (l Limits) Allows(t TypeName) bool {
	_, ok := l.allowedTypes[t]
	return ok
}

// AllowedTypes returns a copy of the permitted type set.
func (l Limits) AllowedTypes() []TypeName {
	out := make([]TypeName, 0, len(l.allowedTypes))
	for t := range l.allowedTypes {
		out = append(out, t)
	}
	return out
}

// IntPtr is a convenience for building Partial literals.
func IntPtr(v int) *int { return &v }

// Int64Ptr is a convenience for building Partial literals.
func Int64Ptr(v int64) *int64 { return &v }
