// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkers(t *testing.T) {
	pool := New(3)
	defer pool.Close()
	if pool.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", pool.Workers())
	}

	def := New(0)
	defer def.Close()
	if def.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers() = %d, want %d", def.Workers(), runtime.GOMAXPROCS(0))
	}
}

// coverage records how often each index was visited.
func coverage(t *testing.T, n int, run func(fn func(start, end int))) {
	t.Helper()
	hits := make([]atomic.Int32, n)
	run(func(start, end int) {
		if start < 0 || end > n || start >= end {
			t.Errorf("bad range [%d,%d) for n=%d", start, end, n)
			return
		}
		for i := start; i < end; i++ {
			hits[i].Add(1)
		}
	})
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestSplit(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 2, 7, 100, 1001} {
		for _, minChunk := range []int{0, 1, 16, 5000} {
			coverage(t, n, func(fn func(start, end int)) { pool.Split(n, minChunk, fn) })
		}
	}
}

func TestSplitSmallRunsInline(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	calls := 0
	pool.Split(10, 64, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("got [%d,%d), want [0,10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBatches(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 64, 999} {
		for _, batch := range []int{-1, 1, 10, 2000} {
			coverage(t, n, func(fn func(start, end int)) { pool.Batches(n, batch, fn) })
		}
	}
}

func TestZeroItems(t *testing.T) {
	pool := New(2)
	defer pool.Close()
	pool.Split(0, 1, func(int, int) { t.Error("called for n=0") })
	pool.Batches(-3, 1, func(int, int) { t.Error("called for n<0") })
}

func TestClosed(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	coverage(t, 100, func(fn func(start, end int)) { pool.Split(100, 1, fn) })
	coverage(t, 100, func(fn func(start, end int)) { pool.Batches(100, 7, fn) })
}

func TestConcurrentCallers(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var wg sync.WaitGroup
	sums := make([]int64, 8)
	for g := range sums {
		wg.Go(func() {
			var sum atomic.Int64
			pool.Split(1000, 10, func(start, end int) {
				for i := start; i < end; i++ {
					sum.Add(int64(i))
				}
			})
			sums[g] = sum.Load()
		})
	}
	wg.Wait()
	for g, s := range sums {
		if s != 999*1000/2 {
			t.Errorf("caller %d: sum = %d, want %d", g, s, 999*1000/2)
		}
	}
}

func TestCloseDuringSplit(t *testing.T) {
	for range 50 {
		pool := New(4)
		var wg sync.WaitGroup
		sums := make([]int64, 8)
		for g := range sums {
			wg.Go(func() {
				var sum atomic.Int64
				add := func(start, end int) {
					for i := start; i < end; i++ {
						sum.Add(int64(i))
					}
				}
				if g%2 == 0 {
					pool.Split(1000, 1, add)
				} else {
					pool.Batches(1000, 3, add)
				}
				sums[g] = sum.Load()
			})
		}
		pool.Close()
		wg.Wait()
		for g, s := range sums {
			if s != 999*1000/2 {
				t.Fatalf("caller %d: sum = %d, want %d", g, s, 999*1000/2)
			}
		}
	}
}

func BenchmarkSplit(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.Split(len(data), 1024, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
