// core/align/parallel.go
package align

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"helixalign-core/match"
)

// AlignAll fans the shared index out across all queries on a bounded worker
// group and returns one anchor set per query, in submission order no matter
// how the tasks complete. Tasks are pure functions of (index, query,
// options) with no shared mutable state, so the only coordination point is
// result collection.
//
// The error return exists for context cancellation only; alignment itself
// cannot fail.
func (a *Aligner) AlignAll(ctx context.Context, queries [][]byte) ([][]match.Match, error) {
	results := make([][]match.Match, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers())

	var done atomic.Int64
	total := len(queries)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.Align(q)
			if fn := a.opts.Progress; fn != nil {
				fn(int(done.Add(1)), total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *Aligner) workers() int {
	if a.opts.Workers > 0 {
		return a.opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}
