package canny

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// pool runs data parallel loops on a fixed number of workers.
// Every loop is split into contiguous, equally sized chunks, one per worker,
// and the call returns only after all chunks have finished.
type pool struct {
	workers int
}

func newPool(workers int) *pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &pool{workers: workers}
}

// parallelFor calls fn over the [start, end) chunks covering [0, n).
// It returns the context error if ctx is cancelled before a chunk starts.
func (p *pool) parallelFor(ctx context.Context, n int, fn func(start, end int)) error {
	if n <= 0 {
		return ctx.Err()
	}
	workers := Min(p.workers, n)
	if workers == 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(0, n)
		return nil
	}
	chunkSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		start := start // per-iteration copy (pre-Go 1.22 loop semantics)
		end := Min(start+chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(start, end)
			return nil
		})
	}
	return g.Wait()
}
