// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs sample sweeps over fastmath evaluators on a fixed
// set of goroutines.
//
// A Pool is created once and reused for every sweep, so the cost of
// spawning goroutines is not paid per call:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.Map(out, xs, fastmath.Sin)
//	err := pool.Go(ctx, len(funcs), func(ctx context.Context, i int) error {
//	    return check(ctx, funcs[i])
//	})
//
// Calls must not be nested: a task running on the pool must not submit
// work to the same pool.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent worker goroutines.
type Pool struct {
	workers int
	tasks   chan task

	// mu guards closed and the sends on tasks against Close.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of n workers, or GOMAXPROCS workers if n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		tasks:   make(chan task, 2*n),
	}
	for range n {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers of p.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close stops the workers once queued work has run. It is safe to call
// more than once. A closed pool runs every call on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
}

// dispatch runs body on up to k workers and waits for all of them. It
// reports false, running nothing, when the pool is closed.
func (p *Pool) dispatch(k int, body func(worker int)) bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	var wg sync.WaitGroup
	wg.Add(k)
	for w := range k {
		p.tasks <- task{run: func() { body(w) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
	return true
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It returns when every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	k := min(p.workers, n)
	if k == 1 {
		fn(0, n)
		return
	}
	chunk := (n + k - 1) / k
	ok := p.dispatch(k, func(w int) {
		start := w * chunk
		if start < n {
			fn(start, min(start+chunk, n))
		}
	})
	if !ok {
		fn(0, n)
	}
}

// ParallelForAtomic hands out [0, n) in batches of batch indices, from a
// shared counter, to whichever worker is free. It balances load better than
// ParallelFor when the cost per index varies, as it does for evaluators
// whose slow paths depend on the argument. batch <= 0 means 1.
func (p *Pool) ParallelForAtomic(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	batches := (n + batch - 1) / batch
	k := min(p.workers, batches)
	if k == 1 {
		fn(0, n)
		return
	}
	var next atomic.Int64
	ok := p.dispatch(k, func(int) {
		for {
			start := int(next.Add(1)-1) * batch
			if start >= n {
				return
			}
			fn(start, min(start+batch, n))
		}
	})
	if !ok {
		fn(0, n)
	}
}

// Map sets dst[i] = f(src[i]) for every i below min(len(dst), len(src)).
func (p *Pool) Map(dst, src []float64, f func(float64) float64) {
	n := min(len(dst), len(src))
	p.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	})
}

// Go calls fn for every i in [0, n) and returns the first error. After an
// error, or once ctx is done, no further index is started and the context
// passed to running calls is canceled.
func (p *Pool) Go(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var next atomic.Int64
	body := func(int) {
		for ctx.Err() == nil {
			i := int(next.Add(1) - 1)
			if i >= n {
				return
			}
			if err := fn(ctx, i); err != nil {
				cancel(err)
				return
			}
		}
	}
	if !p.dispatch(min(p.workers, n), body) {
		body(0)
	}
	return context.Cause(ctx)
}
