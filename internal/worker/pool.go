// Package worker provides a small bounded fan-out helper for CPU-bound
// simulation batches.
package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map runs fn over n indices with at most limit goroutines and collects
// results in index order, so the output never depends on scheduling. A
// limit <= 0 uses GOMAXPROCS. The first error cancels the batch.
func Map[T any](ctx context.Context, n, limit int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	out := make([]T, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			v, err := fn(ctx, i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
