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

package crosscheck

import (
	"math/rand/v2"
	"slices"

	"github.com/chewxy/math32"
	"github.com/samber/lo"

	"github.com/ajroetker/go-ml/ml"
	"github.com/ajroetker/go-ml/scalar"
	"github.com/ajroetker/go-ml/simd"
)

type op struct {
	name  string
	exact bool
	trial func(r *rand.Rand, c *checker)
}

var ops = []op{
	{"add", true, binary(simd.Vec4.Add, scalar.Vec4.Add)},
	{"sub", true, binary(simd.Vec4.Sub, scalar.Vec4.Sub)},
	{"mul", true, binary(simd.Vec4.Mul, scalar.Vec4.Mul)},
	{"div", true, binary(simd.Vec4.Div, scalar.Vec4.Div)},
	{"neg", true, unary(simd.Vec4.Neg, scalar.Vec4.Neg)},
	{"clamp01", true, clampTrial},
	{"dot", false, dotTrial},
	{"normalized", false, unary(simd.Vec4.Normalized, scalar.Vec4.Normalized)},
	{"mat_mul", false, matMulTrial},
	{"mat_mulvec", false, matMulVecTrial},
	{"transposed", true, transposedTrial},
	{"int_mat_mul", true, intMatMulTrial},
}

// OpNames lists the operations Run knows, in run order.
func OpNames() []string {
	return lo.Map(ops, func(o op, _ int) string { return o.name })
}

// Run validates cfg and executes its trials. A non-nil report with
// mismatches is not an error; call Report.Err for that.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	report := &Report{
		Backend:       ml.Backend,
		Level:         ml.CurrentName(),
		HardwareLanes: simd.HardwareAccelerated(),
		Config:        cfg,
	}
	for _, o := range ops {
		if len(cfg.Ops) > 0 && !slices.Contains(cfg.Ops, o.name) {
			continue
		}
		st := OpStats{Op: o.name, Exact: o.exact, FirstFailedTrial: -1}
		for i := range cfg.Trials {
			c := checker{tolerance: cfg.Tolerance, stats: &st}
			o.trial(rng, &c)
			st.Trials++
			if c.failed {
				st.Mismatches++
				if st.FirstFailedTrial < 0 {
					st.FirstFailedTrial = i
				}
			}
		}
		report.Ops = append(report.Ops, st)
	}
	return report, nil
}

// checker records the outcome of one trial.
type checker struct {
	tolerance float64
	stats     *OpStats
	failed    bool
}

func (c *checker) record(rel float64, ok bool) {
	c.stats.MaxRelErr = max(c.stats.MaxRelErr, rel)
	if !ok {
		c.failed = true
	}
}

func relErr(want, got, scale float32) float64 {
	scale = max(scale, math32.Abs(want), math32.Abs(got), 1)
	return float64(math32.Abs(want-got) / scale)
}

// exact requires identical values. NaN matches NaN.
func (c *checker) exact(want, got [4]float32) {
	for i := range want {
		w, g := want[i], got[i]
		same := w == g || (math32.IsNaN(w) && math32.IsNaN(g))
		rel := 0.0
		if !same {
			rel = relErr(w, g, 0)
		}
		c.record(rel, same)
	}
}

func (c *checker) near(want, got, scale float32) {
	rel := relErr(want, got, scale)
	c.record(rel, rel <= c.tolerance)
}

func randomArray(r *rand.Rand) [4]float32 {
	return [4]float32{signed(r), signed(r), signed(r), signed(r)}
}

func signed(r *rand.Rand) float32 {
	return 2*r.Float32() - 1
}

func randomPair(r *rand.Rand) (simd.Vec4, scalar.Vec4) {
	a := randomArray(r)
	return simd.Vec4FromArray(a), scalar.Vec4FromArray(a)
}

func randomMatPair(r *rand.Rand) (simd.Mat4x4, scalar.Mat4x4) {
	var a [16]float32
	for i := range a {
		a[i] = signed(r)
	}
	return simd.Mat4x4FromArray(a), scalar.Mat4x4FromArray(a)
}

// absDot is the sum of the magnitudes of the products in a.Dot(b).
func absDot(a, b [4]float32) float32 {
	var s float32
	for i := range a {
		s += math32.Abs(a[i] * b[i])
	}
	return s
}

func column(m [16]float32, j int) [4]float32 {
	return [4]float32{m[j], m[4+j], m[8+j], m[12+j]}
}

func row(m [16]float32, i int) [4]float32 {
	return [4]float32(m[4*i : 4*i+4])
}

func binary(fs func(simd.Vec4, simd.Vec4) simd.Vec4, fc func(scalar.Vec4, scalar.Vec4) scalar.Vec4) func(*rand.Rand, *checker) {
	return func(r *rand.Rand, c *checker) {
		a, sa := randomPair(r)
		b, sb := randomPair(r)
		c.exact(fc(sa, sb).Array(), fs(a, b).Array())
	}
}

func unary(fs func(simd.Vec4) simd.Vec4, fc func(scalar.Vec4) scalar.Vec4) func(*rand.Rand, *checker) {
	return func(r *rand.Rand, c *checker) {
		a, sa := randomPair(r)
		c.exactOrNear(fc(sa).Array(), fs(a).Array())
	}
}

// exactOrNear compares exactly for exact ops and within the tolerance
// relative to 1 otherwise.
func (c *checker) exactOrNear(want, got [4]float32) {
	if c.stats.Exact {
		c.exact(want, got)
		return
	}
	for i := range want {
		c.near(want[i], got[i], 1)
	}
}

func clampTrial(r *rand.Rand, c *checker) {
	a, sa := randomPair(r)
	c.exact(sa.Scale(2).Clamp01().Array(), a.Scale(2).Clamp01().Array())
}

func dotTrial(r *rand.Rand, c *checker) {
	a, sa := randomPair(r)
	b, sb := randomPair(r)
	c.near(sa.Dot(sb), a.Dot(b), absDot(a.Array(), b.Array()))
}

func matMulTrial(r *rand.Rand, c *checker) {
	a, sa := randomMatPair(r)
	b, sb := randomMatPair(r)
	want, got := sa.Mul(sb).Array(), a.Mul(b).Array()
	am, bm := a.Array(), b.Array()
	for k := range want {
		c.near(want[k], got[k], absDot(row(am, k/4), column(bm, k%4)))
	}
}

func matMulVecTrial(r *rand.Rand, c *checker) {
	a, sa := randomMatPair(r)
	v, sv := randomPair(r)
	want, got := sa.MulVec(sv).Array(), a.MulVec(v).Array()
	am := a.Array()
	for k := range want {
		c.near(want[k], got[k], absDot(row(am, k), v.Array()))
	}
}

func transposedTrial(r *rand.Rand, c *checker) {
	a, sa := randomMatPair(r)
	want, got := sa.Transposed().Array(), a.Transposed().Array()
	for i := range 4 {
		c.exact(row(want, i), row(got, i))
	}
}

// intMatMulTrial multiplies matrices of small integers, whose products and
// partial sums are exact in float32 in any order.
func intMatMulTrial(r *rand.Rand, c *checker) {
	var a, b [16]float32
	for i := range a {
		a[i] = float32(r.IntN(17) - 8)
		b[i] = float32(r.IntN(17) - 8)
	}
	want := scalar.Mat4x4FromArray(a).Mul(scalar.Mat4x4FromArray(b)).Array()
	got := simd.Mat4x4FromArray(a).Mul(simd.Mat4x4FromArray(b)).Array()
	for i := range 4 {
		c.exact(row(want, i), row(got, i))
	}
}
