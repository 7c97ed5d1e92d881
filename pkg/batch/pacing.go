package batch

import (
	"context"
	"time"
)

// Pacing decides how long to pause between chunks. The pause exists purely
// to yield the host scheduler on very large collections.
type Pacing interface {
	// Pause blocks between chunks. lastChunk is the wall time the previous
	// chunk took. Implementations return early when ctx is done.
	Pause(ctx context.Context, lastChunk time.Duration)
}

// PacingNone disables the inter-chunk pause.
func PacingNone() Pacing { return pacingNone{} }

type pacingNone struct{}

func (pacingNone) Pause(context.Context, time.Duration) {}

// PacingFixed pauses for a fixed delay between chunks.
func PacingFixed(d time.Duration) Pacing { return pacingFixed{d: d} }

type pacingFixed struct {
	d time.Duration
}

func (p pacingFixed) Pause(ctx context.Context, _ time.Duration) {
	sleep(ctx, p.d)
}

// PacingAdaptive pauses proportionally to the previous chunk's duration:
// slow chunks mean the host is busy, so the engine backs off harder. The
// pause is half the chunk duration, clamped to [1ms, 100ms].
func PacingAdaptive() Pacing { return pacingAdaptive{} }

type pacingAdaptive struct{}

func (pacingAdaptive) Pause(ctx context.Context, lastChunk time.Duration) {
	d := lastChunk / 2
	if d < time.Millisecond {
		d = time.Millisecond
	}
	if d > 100*time.Millisecond {
		d = 100 * time.Millisecond
	}
	sleep(ctx, d)
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
