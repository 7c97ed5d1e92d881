// Package batch validates large collections through the sanitization
// pipeline in consecutive chunks, yielding the scheduler between chunks so
// a big import cannot monopolize the host process.
//
// Items within one chunk run concurrently; each goes independently through
// the full single-item pipeline. The output always has one result per input
// item, in input order, regardless of intra-chunk completion order:
//
//	results := batch.ValidateLargeDataset(ctx, rows,
//	    batch.WithBatchSize(100),
//	    batch.WithLimits(limits.Partial{MaxStringLength: limits.IntPtr(2000)}),
//	)
//
// The inter-chunk pause is a backpressure courtesy, not a correctness
// requirement; its strategy is configurable via WithPacing (none, fixed
// delay, or adaptive). Cancelling the context stops the run between
// chunks, never mid-chunk; unprocessed items receive a blocking issue so
// the length invariant still holds.
package batch
