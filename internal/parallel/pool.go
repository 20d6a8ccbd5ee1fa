// Package parallel provides a small bounded-concurrency fan-out helper
// used by package toddcox to scan relations in parallel during one
// Learner pass.
//
// It is a scaled-down cousin of gitrdm/gokanlogic's internal/parallel
// WorkerPool: that pool is long-lived and channel-fed for an open-ended
// stream of goal evaluations, while a Learner pass has a small, known,
// fixed set of tasks (one per relation slot) that all need to finish
// before the Driver can run the Definer. Run() captures exactly that:
// a one-shot, work-stealing fan-out over n tasks, bounded to `workers`
// concurrent goroutines, joined with a sync.WaitGroup before it returns —
// that join is the memory fence the Driver depends on.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Run executes task(i) for every i in [0, n), using up to workers
// goroutines pulled dynamically from a shared counter (work-stealing: a
// goroutine that finishes an index immediately claims the next one,
// rather than owning a fixed static slice up front).
//
// workers <= 0 means runtime.NumCPU(). workers == 1 (or n == 1, or a
// NumCPU of 1) runs sequentially in the calling goroutine, with no
// goroutines spawned at all — the common case for small presentations
// where pool setup would outweigh the work. n <= 0 returns immediately.
func Run(n, workers int, task func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			task(i)
		}
		return
	}

	var next int64 = -1
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := atomic.AddInt64(&next, 1)
				if i >= int64(n) {
					return
				}
				task(int(i))
			}
		}()
	}
	wg.Wait()
}
