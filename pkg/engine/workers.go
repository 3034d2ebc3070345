package engine

import (
	"context"
	"sync"
)

// fanOut calls fn for every index in [0, n) on the configured number of
// workers and waits for all of them. Once ctx is cancelled the remaining
// indexes are drained without being processed.
func (e *Engine) fanOut(ctx context.Context, n int, fn func(idx int)) error {
	workers := e.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int, n)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					continue
				default:
				}
				fn(idx)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return ctx.Err()
}
