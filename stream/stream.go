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

// Package stream applies Vec4 and Mat4x4 operations to slices of vectors.
//
// Element-wise arithmetic runs on the flattened float32 view of a slice
// with the vector kernels of github.com/viterin/vek when the CPU supports
// them, and on plain loops otherwise or when ML_NO_SIMD is set.
package stream

import (
	"unsafe"

	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-ml/ml"
)

var (
	scaleKernel func(x []float32, s float32)
	addKernel   func(dst, src []float32)
	subKernel   func(dst, src []float32)
	dotKernel   func(a, b []float32) float32
)

func init() {
	if ml.CurrentLevel() == ml.DispatchScalar {
		scaleKernel = scaleGeneric
		addKernel = addGeneric
		subKernel = subGeneric
		dotKernel = dotGeneric
		return
	}
	scaleKernel = vek32.MulNumber_Inplace
	addKernel = vek32.Add_Inplace
	subKernel = vek32.Sub_Inplace
	dotKernel = vek32.Dot
}

// Flatten returns the components of vs as one float32 slice sharing vs's
// memory, in x, y, z, w order.
func Flatten(vs []ml.Vec4) []float32 {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice(&vs[0].X, 4*len(vs))
}

func checkLen(a, b int) {
	if a != b {
		panic("stream: length mismatch")
	}
}

// Scale multiplies every vector in vs by s.
func Scale(vs []ml.Vec4, s float32) {
	if len(vs) == 0 {
		return
	}
	scaleKernel(Flatten(vs), s)
}

// Add sets dst[i] += src[i]. It panics if the lengths differ.
func Add(dst, src []ml.Vec4) {
	checkLen(len(dst), len(src))
	if len(dst) == 0 {
		return
	}
	addKernel(Flatten(dst), Flatten(src))
}

// Sub sets dst[i] -= src[i]. It panics if the lengths differ.
func Sub(dst, src []ml.Vec4) {
	checkLen(len(dst), len(src))
	if len(dst) == 0 {
		return
	}
	subKernel(Flatten(dst), Flatten(src))
}

// Lerp sets dst[i] to ml.LerpVec4(t, a[i], b[i]). dst may alias a or b.
func Lerp(dst, a, b []ml.Vec4, t float32) {
	checkLen(len(dst), len(a))
	checkLen(len(a), len(b))
	for i := range dst {
		dst[i] = ml.LerpVec4(t, a[i], b[i])
	}
}

// ClampToUnitInterval clamps every component to [0, 1]; NaN becomes 0.
func ClampToUnitInterval(vs []ml.Vec4) {
	for i := range vs {
		vs[i] = vs[i].Clamp01()
	}
}

// Dots sets out[i] to a[i].Dot(b[i]).
func Dots(out []float32, a, b []ml.Vec4) {
	checkLen(len(a), len(b))
	checkLen(len(out), len(a))
	for i := range out {
		out[i] = a[i].Dot(b[i])
	}
}

// DotAll returns the sum of a[i].Dot(b[i]) over all i, accumulated over the
// flattened components.
func DotAll(a, b []ml.Vec4) float32 {
	checkLen(len(a), len(b))
	if len(a) == 0 {
		return 0
	}
	return dotKernel(Flatten(a), Flatten(b))
}

// Normalize scales every vector to unit length. Zero vectors are left
// unchanged.
func Normalize(vs []ml.Vec4) {
	for i := range vs {
		vs[i].Normalize()
	}
}

// Transform replaces every vector v with m.MulVec(v).
func Transform(m ml.Mat4x4, vs []ml.Vec4) {
	for i := range vs {
		vs[i] = m.MulVec(vs[i])
	}
}

// Project transforms every vector by m and divides by the resulting w. As
// with Vec4.DivideByW, w holds 1/w afterwards and must not be zero.
func Project(m ml.Mat4x4, vs []ml.Vec4) {
	for i := range vs {
		vs[i] = m.MulVec(vs[i])
		vs[i].DivideByW()
	}
}

func scaleGeneric(x []float32, s float32) {
	for i := range x {
		x[i] *= s
	}
}

func addGeneric(dst, src []float32) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func subGeneric(dst, src []float32) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

func dotGeneric(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
