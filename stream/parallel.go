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

package stream

import (
	"github.com/ajroetker/go-ml/internal/workerpool"
	"github.com/ajroetker/go-ml/ml"
)

// DefaultGrain is the smallest number of vectors handed to one worker.
const DefaultGrain = 1024

// Parallel runs the per-vector operations of this package on a pool of
// goroutines. Results are identical to the sequential functions.
type Parallel struct {
	pool  *workerpool.Pool
	grain int
}

// NewParallel starts workers goroutines, or GOMAXPROCS if workers <= 0.
// Call Close to stop them.
func NewParallel(workers int) *Parallel {
	return &Parallel{pool: workerpool.New(workers), grain: DefaultGrain}
}

// WithGrain sets the minimum number of vectors per task.
func (p *Parallel) WithGrain(grain int) *Parallel {
	p.grain = max(grain, 1)
	return p
}

func (p *Parallel) Workers() int { return p.pool.Workers() }

func (p *Parallel) Close() { p.pool.Close() }

func (p *Parallel) Transform(m ml.Mat4x4, vs []ml.Vec4) {
	p.pool.Split(len(vs), p.grain, func(start, end int) {
		Transform(m, vs[start:end])
	})
}

func (p *Parallel) Project(m ml.Mat4x4, vs []ml.Vec4) {
	p.pool.Split(len(vs), p.grain, func(start, end int) {
		Project(m, vs[start:end])
	})
}

func (p *Parallel) Normalize(vs []ml.Vec4) {
	p.pool.Split(len(vs), p.grain, func(start, end int) {
		Normalize(vs[start:end])
	})
}

// Dots is the parallel form of the package-level Dots.
func (p *Parallel) Dots(out []float32, a, b []ml.Vec4) {
	checkLen(len(a), len(b))
	checkLen(len(out), len(a))
	p.pool.Batches(len(out), p.grain, func(start, end int) {
		Dots(out[start:end], a[start:end], b[start:end])
	})
}
