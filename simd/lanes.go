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

package simd

import "unsafe"

// f32x4 models one 128-bit register of four float32 lanes. The helpers
// below follow the lane semantics of the SSE instructions they are named
// after, so results are bit-identical whichever backend computes the
// arithmetic.
type f32x4 [4]float32

// Vec4 and f32x4 share their layout.
var _ [unsafe.Sizeof(Vec4{}) - unsafe.Sizeof(f32x4{})]struct{}
var _ [unsafe.Sizeof(f32x4{}) - unsafe.Sizeof(Vec4{})]struct{}

func load(v *Vec4) f32x4 {
	return *(*f32x4)(unsafe.Pointer(v))
}

func (a f32x4) vec4() Vec4 {
	return *(*Vec4)(unsafe.Pointer(&a))
}

// set1 broadcasts s to all lanes.
func set1(s float32) f32x4 {
	return f32x4{s, s, s, s}
}

// shuffle returns (a[i0], a[i1], b[i2], b[i3]), like _mm_shuffle_ps.
func (a f32x4) shuffle(b f32x4, i0, i1, i2, i3 int) f32x4 {
	return f32x4{a[i0], a[i1], b[i2], b[i3]}
}

// splat broadcasts lane i.
func (a f32x4) splat(i int) f32x4 {
	return a.shuffle(a, i, i, i, i)
}

// movehl returns (b[2], b[3], a[2], a[3]).
func movehl(a, b f32x4) f32x4 {
	return f32x4{b[2], b[3], a[2], a[3]}
}

// addSS adds lane 0 only and passes the other lanes of a through.
func (a f32x4) addSS(b f32x4) f32x4 {
	a[0] = a[0] + b[0]
	return a
}

// hsum reduces the lanes as (a0+a1)+(a2+a3).
func (a f32x4) hsum() float32 {
	shuf := a.shuffle(a, 1, 0, 3, 2)
	sums := a.add(shuf)
	shuf = movehl(shuf, sums)
	sums = sums.addSS(shuf)
	return sums[0]
}

// eqMask returns the movemask of a lanewise ==, one bit per lane.
func (a f32x4) eqMask(b f32x4) int {
	m := 0
	for i := range a {
		if a[i] == b[i] {
			m |= 1 << i
		}
	}
	return m
}

// max and min pick b when the comparison is false, so a NaN in a yields b.
func (a f32x4) max(b f32x4) f32x4 {
	for i := range a {
		if !(a[i] > b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

func (a f32x4) min(b f32x4) f32x4 {
	for i := range a {
		if !(a[i] < b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

// transpose4 is _MM_TRANSPOSE4_PS.
func transpose4(r0, r1, r2, r3 *f32x4) {
	t0 := r0.shuffle(*r1, 0, 1, 0, 1)
	t2 := r0.shuffle(*r1, 2, 3, 2, 3)
	t1 := r2.shuffle(*r3, 0, 1, 0, 1)
	t3 := r2.shuffle(*r3, 2, 3, 2, 3)
	*r0 = t0.shuffle(t1, 0, 2, 0, 2)
	*r1 = t0.shuffle(t1, 1, 3, 1, 3)
	*r2 = t2.shuffle(t3, 0, 2, 0, 2)
	*r3 = t2.shuffle(t3, 1, 3, 1, 3)
}
