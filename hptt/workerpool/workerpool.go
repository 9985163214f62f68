// Copyright 2025 The go-hptt Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for running the blocks
// of a transpose. A Pool is created once and shared by many transposes (and
// many plans), so no goroutines are spawned per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	opts := hptt.Options{NumThreads: pool.NumWorkers(), Pool: pool}
//	for _, batch := range batches {
//	    out, err := hptt.Transpose(perm, 1.0, batch, shape, opts)
//	    ...
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one worker's share of a ParallelFor call.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan task, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool once queued work completes. Calling Close
// multiple times is safe. A closed pool runs ParallelFor sequentially on the
// calling goroutine. Close must not be called concurrently with ParallelFor.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into at most maxWorkers contiguous ranges and
// runs fn on each range on a pool worker. maxWorkers <= 0 means all workers.
// Range i always covers the same indices for the same (n, workers), so the
// assignment of items to ranges is deterministic.
//
// ParallelFor blocks until every range completes.
func (p *Pool) ParallelFor(n, maxWorkers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := p.numWorkers
	if maxWorkers > 0 {
		workers = min(workers, maxWorkers)
	}
	workers = min(workers, n)

	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
