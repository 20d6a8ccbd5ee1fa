// SPDX-License-Identifier: MIT
// Package toddcox: functional options for Solve.

package toddcox

import "context"

// options holds the resolved configuration for one Solve call.
type options struct {
	workers   int
	maxCosets int // 0 = unbounded
	ctx       context.Context
}

func defaultOptions() options {
	return options{
		workers:   1, // sequential by default; WithWorkers(0) opts into NumCPU
		maxCosets: 0,
		ctx:       context.Background(),
	}
}

// Option configures a Solve call.
type Option func(*options)

// WithWorkers sets how many goroutines the Learner may use per pass, one
// relation per task, work-stolen from a shared counter (package
// internal/parallel). 0 means runtime.NumCPU(); 1 (the default) runs the
// Learner sequentially, which is the right choice for small presentations
// where the pool's setup cost would dominate the work.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithMaxCosets bounds the coset count the engine will allocate before
// giving up with ErrCosetLimitExceeded. The engine itself cannot
// distinguish an infinite-index presentation from one still in progress,
// so callers enforcing a bound must do it externally — this is that hook.
// 0 (the default) means unbounded.
func WithMaxCosets(n int) Option {
	return func(o *options) { o.maxCosets = n }
}

// WithContext sets a context whose cancellation aborts Solve between
// Learner/Definer phases, returning ctx.Err().
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("toddcox: WithContext(nil)")
	}
	return func(o *options) { o.ctx = ctx }
}
