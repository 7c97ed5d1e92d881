package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/deckforge/inputguard/pkg/limits"
	"github.com/deckforge/inputguard/pkg/patterns"
	"github.com/deckforge/inputguard/pkg/sanitize"
)

// DefaultBatchSize is the chunk size used when no override is given.
const DefaultBatchSize = 100

// Option configures one batch run.
type Option func(*config)

type config struct {
	batchSize    int
	pacing       Pacing
	logger       *slog.Logger
	sanitizeOpts []sanitize.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		batchSize: DefaultBatchSize,
		pacing:    PacingFixed(10 * time.Millisecond),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBatchSize sets how many items run concurrently per chunk. Panics on a
// non-positive size to enforce fail-fast initialization.
func WithBatchSize(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic(fmt.Errorf("batch: invalid batch size %d", n))
		}
		c.batchSize = n
	}
}

// WithPacing sets the inter-chunk pause strategy. Nil pacing is ignored.
func WithPacing(p Pacing) Option {
	return func(c *config) {
		if p != nil {
			c.pacing = p
		}
	}
}

// WithLogger attaches a logger for per-run debug records. Nil keeps
// logging off.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithLimits forwards a bounds override to every item's validation.
func WithLimits(p limits.Partial) Option {
	return func(c *config) {
		c.sanitizeOpts = append(c.sanitizeOpts, sanitize.WithLimits(p))
	}
}

// WithResolvedLimits forwards an already-merged Limits, e.g. a tenant
// profile, to every item's validation.
func WithResolvedLimits(l limits.Limits) Option {
	return func(c *config) {
		c.sanitizeOpts = append(c.sanitizeOpts, sanitize.WithResolvedLimits(l))
	}
}

// WithContext forwards the sanitization context to every item's validation.
func WithContext(sc sanitize.Context) Option {
	return func(c *config) {
		c.sanitizeOpts = append(c.sanitizeOpts, sanitize.WithContext(sc))
	}
}

// WithCatalog forwards a pattern catalog to every item's validation.
func WithCatalog(cat *patterns.Catalog) Option {
	return func(c *config) {
		c.sanitizeOpts = append(c.sanitizeOpts, sanitize.WithCatalog(cat))
	}
}

// ValidateLargeDataset runs every item through the full single-item
// pipeline, chunk by chunk. The returned slice always has len(items)
// results in input order: items share no mutable state, and each result is
// written to its own pre-indexed slot, so intra-chunk completion order
// never shows through.
//
// ctx is checked between chunks only; a chunk that has started runs to
// completion. Items never processed because of cancellation carry a
// blocking issue instead of sanitized data.
func ValidateLargeDataset(ctx context.Context, items []any, opts ...Option) []sanitize.Result {
	cfg := newConfig(opts...)
	results := make([]sanitize.Result, len(items))

	var runID string
	start := time.Now()
	if cfg.logger != nil {
		runID = uuid.NewString()
		cfg.logger.DebugContext(ctx, "batch validation started",
			slog.String("batch_id", runID),
			slog.Int("items", len(items)),
			slog.Int("batch_size", cfg.batchSize),
		)
	}

	for lo := 0; lo < len(items); lo += cfg.batchSize {
		if err := ctx.Err(); err != nil {
			markCanceled(results, lo, err)
			break
		}

		hi := min(lo+cfg.batchSize, len(items))
		chunkStart := time.Now()

		g := new(errgroup.Group)
		for i := lo; i < hi; i++ {
			g.Go(func() error {
				results[i] = sanitize.ValidateAndSanitize(items[i], cfg.sanitizeOpts...)
				return nil
			})
		}
		// Item failures live in their Result; the group only joins the
		// chunk.
		_ = g.Wait()

		if hi < len(items) {
			cfg.pacing.Pause(ctx, time.Since(chunkStart))
		}
	}

	if cfg.logger != nil {
		invalid := 0
		for _, r := range results {
			if !r.IsValid() {
				invalid++
			}
		}
		cfg.logger.DebugContext(ctx, "batch validation finished",
			slog.String("batch_id", runID),
			slog.Int("items", len(items)),
			slog.Int("invalid", invalid),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
	return results
}

// markCanceled fills the slots of never-processed items so the one-result-
// per-item invariant survives cancellation.
func markCanceled(results []sanitize.Result, from int, err error) {
	for i := from; i < len(results); i++ {
		results[i] = sanitize.Result{Errors: []sanitize.Issue{{
			Path:    "$",
			Kind:    sanitize.IssueElementInvalid,
			Message: fmt.Sprintf("validation not performed: %v", err),
		}}}
	}
}
