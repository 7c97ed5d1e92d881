package sanitize

import (
	"fmt"

	"github.com/deckforge/inputguard/pkg/limits"
	"github.com/deckforge/inputguard/pkg/patterns"
)

// Option configures a single validation call.
type Option func(*config)

type config struct {
	limits  limits.Limits
	context Context
	catalog *patterns.Catalog
	markup  func(string) string
}

func newConfig(opts ...Option) config {
	cfg := config{
		limits:  limits.Default(),
		context: ContextGeneral,
		catalog: patterns.Default(),
		markup:  DefaultMarkupSanitizer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLimits merges a partial override over the defaults for this call.
// Panics on an invalid override to enforce fail-fast initialization:
// misconfigured bounds are programming errors, not validation outcomes.
func WithLimits(p limits.Partial) Option {
	return func(c *config) {
		merged, err := c.limits.Merge(p)
		if err != nil {
			panic(fmt.Errorf("sanitize: %w", err))
		}
		c.limits = merged
	}
}

// WithResolvedLimits uses an already-merged Limits, e.g. one loaded from a
// tenant validation profile.
func WithResolvedLimits(l limits.Limits) Option {
	return func(c *config) { c.limits = l }
}

// WithContext sets the sanitization context for string leaves. Panics on an
// unknown context.
func WithContext(ctx Context) Option {
	return func(c *config) {
		if !ctx.valid() {
			panic(fmt.Errorf("sanitize: unknown context %q", ctx))
		}
		c.context = ctx
	}
}

// WithCatalog substitutes the pattern catalog, letting tests supply a
// minimal rule set. Nil catalogs are ignored for safety.
func WithCatalog(cat *patterns.Catalog) Option {
	return func(c *config) {
		if cat != nil {
			c.catalog = cat
		}
	}
}

// WithMarkupSanitizer substitutes the markup-sanitization collaborator used
// by ContextMarkup. Nil functions are ignored for safety.
func WithMarkupSanitizer(fn func(string) string) Option {
	return func(c *config) {
		if fn != nil {
			c.markup = fn
		}
	}
}
