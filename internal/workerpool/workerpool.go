// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs range-partitioned work on a fixed set of
// goroutines that live as long as the Pool.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	pool.Split(len(points), 256, func(start, end int) {
//		transform(points[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers. A Pool is safe for concurrent use,
// including Close racing Split or Batches; calls made after Close run on
// the calling goroutine.
type Pool struct {
	workers int
	tasks   chan task

	// mu is held shared while tasks are enqueued and exclusively by Close.
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
		tasks:   make(chan task, n*2),
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

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once queued work has drained. It is idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
}

// acquire locks the queue for enqueueing. It reports false, without
// holding the lock, if the pool is closed.
func (p *Pool) acquire() bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}
	return true
}

// Split calls fn over disjoint ranges covering [0, n) and waits for all of
// them. Ranges hold at least minChunk items, except possibly the last, so
// small inputs run inline.
func (p *Pool) Split(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	minChunk = max(minChunk, 1)
	parts := min(p.workers, (n+minChunk-1)/minChunk)
	if parts <= 1 || !p.acquire() {
		fn(0, n)
		return
	}

	chunk := (n + parts - 1) / parts
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{run: func() { fn(start, end) }, done: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Batches calls fn over consecutive batches of size batch covering [0, n).
// Workers claim batches as they finish, which balances uneven work.
func (p *Pool) Batches(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	numBatches := (n + batch - 1) / batch
	workers := min(p.workers, numBatches)
	if workers <= 1 || !p.acquire() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batch
					if start >= n {
						return
					}
					fn(start, min(start+batch, n))
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
