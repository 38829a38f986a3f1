// Package batch counts how many reports in a batch are safe, validating
// them concurrently with package monotone.
//
// What:
//
//   - Evaluate: strict and tolerant counts for a whole batch in one Report.
//   - Count:    the count for a single mode.
//   - Report.Lines renders "Part 1: N" / "Part 2: M" result lines.
//
// Concurrency:
//
//	Reports are independent, so the batch is split into contiguous shards and
//	validated on an errgroup bounded by Options.Workers. Every shard keeps
//	private counters and publishes them once; the totals never depend on
//	scheduling order. All goroutines are joined before Evaluate returns.
//
// Options:
//
//   - WithStepRange: accepted delta magnitudes (default [1, 3]).
//   - WithWorkers:   shard/goroutine bound (default GOMAXPROCS).
//   - WithLogger:    debug-log every unsafe report (default silent).
//
// Errors:
//
//   - ErrInvalidWorkers: WithWorkers(n) with n < 1.
//   - monotone.ErrInvalidStepRange: unusable step range.
//   - ctx.Err(): the context was cancelled mid-batch.
package batch
