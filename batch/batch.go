package batch

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepwise/monotone"
)

// checkEvery is how many reports a shard validates between context checks.
const checkEvery = 256

// Evaluate validates every report of seqs in both modes and returns the
// aggregate counts.
//
// Complexity: O(N) total work over the summed report lengths N, split over
// at most Options.Workers goroutines.
func Evaluate(ctx context.Context, seqs [][]int, opts ...Option) (Report, error) {
	return run(ctx, seqs, []monotone.Mode{monotone.ModeStrict, monotone.ModeTolerant}, opts)
}

// Count returns how many reports of seqs pass mode m.
func Count(ctx context.Context, seqs [][]int, m monotone.Mode, opts ...Option) (int, error) {
	rep, err := run(ctx, seqs, []monotone.Mode{m}, opts)
	if err != nil {
		return 0, err
	}

	return rep.Count(m), nil
}

func run(ctx context.Context, seqs [][]int, modes []monotone.Mode, opts []Option) (Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Report{}, err
	}

	var strict, tolerant atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	for _, sh := range shards(len(seqs), o.Workers) {
		sh := sh
		g.Go(func() error {
			var s, t int64
			for i := sh.lo; i < sh.hi; i++ {
				if (i-sh.lo)%checkEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				for _, m := range modes {
					if !monotone.Check(seqs[i], m, o.Range) {
						logUnsafe(o.Logger, i, m)
						continue
					}
					if m == monotone.ModeTolerant {
						t++
					} else {
						s++
					}
				}
			}
			strict.Add(s)
			tolerant.Add(t)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return Report{
		Total:    len(seqs),
		Strict:   int(strict.Load()),
		Tolerant: int(tolerant.Load()),
	}, nil
}

// shard is the half-open index range [lo, hi) handled by one goroutine.
type shard struct {
	lo, hi int
}

// shards splits n items into at most k contiguous, near-equal ranges.
func shards(n, k int) []shard {
	if n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	out := make([]shard, 0, k)
	size, extra := n/k, n%k
	lo := 0
	for i := 0; i < k; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		out = append(out, shard{lo: lo, hi: hi})
		lo = hi
	}

	return out
}

func logUnsafe(l logrus.FieldLogger, index int, m monotone.Mode) {
	if l == nil {
		return
	}
	l.WithFields(logrus.Fields{
		"report": index,
		"mode":   m.String(),
	}).Debug("unsafe report")
}
