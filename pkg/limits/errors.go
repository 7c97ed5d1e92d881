package limits

import "errors"

var (
	// ErrInvalidBound indicates a non-positive bound in an override.
	ErrInvalidBound = errors.New("limits: invalid bound")
	// ErrUnknownType indicates an allowed-types entry outside the known set.
	ErrUnknownType = errors.New("limits: unknown type name")
	// ErrInvalidProfile indicates a validation profile that could not be parsed.
	ErrInvalidProfile = errors.New("limits: invalid profile")
)
