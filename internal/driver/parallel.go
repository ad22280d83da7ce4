package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forEachFile runs fn for every file with at most jobs goroutines. fn writes
// its own slot of a result slice, so no locking is needed. Cancellation stops
// scheduling of the remaining files.
func forEachFile(ctx context.Context, files []string, jobs int, fn func(ctx context.Context, i int, path string)) error {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		i, path := i, path
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fn(gctx, i, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
