// Package limits defines the immutable bounds applied to a single
// validation call: maximum string length, array length, object nesting
// depth, total serialized size, and the set of permitted value types.
//
// A Limits value is constructed at call entry by merging a caller-supplied
// Partial over the documented defaults and is never mutated afterwards, so
// every component of the pipeline observes identical bounds for one call:
//
//	l, err := limits.Default().Merge(limits.Partial{
//	    MaxArrayLength: limits.IntPtr(500),
//	})
//
// Platform-wide defaults can be sourced from the environment with FromEnv
// (INPUTGUARD_* variables, optionally via a .env file), and per-tenant
// validation profiles can be declared in YAML and loaded with
// ParseProfiles.
package limits
