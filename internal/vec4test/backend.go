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

// Package vec4test is the conformance suite shared by the Vec4/Mat4x4
// implementations. Each implementation package runs Run from its own tests,
// and the cross-implementation checks compare two backends directly.
package vec4test

import (
	"fmt"

	"github.com/ajroetker/go-ml/vec"
)

// Vec4 is the value method set every Vec4 implementation provides.
type Vec4[V any] interface {
	comparable
	fmt.Stringer
	Get(i int) float32
	Array() [4]float32
	XY() vec.Vec2
	XYZ() vec.Vec3
	IsZero() bool
	Dot(V) float32
	LengthSquared() float32
	Length() float32
	OneOverLength() float32
	Scale(float32) V
	Normalized() V
	Add(V) V
	AddScalar(float32) V
	Sub(V) V
	SubScalar(float32) V
	Neg() V
	Mul(V) V
	Div(V) V
	DivScalar(float32) V
	Clamp01() V
	Equal(V) bool
	NotEqual(V) bool
}

// Vec4Ptr is the pointer method set of a Vec4 implementation.
type Vec4Ptr[V any] interface {
	*V
	Set(i int, s float32)
	Normalize()
	DivideByW()
}

// Mat4x4 is the value method set every Mat4x4 implementation provides.
type Mat4x4[M, V any] interface {
	comparable
	fmt.Stringer
	Row(i int) V
	Array() [16]float32
	Add(M) M
	Sub(M) M
	Neg() M
	Mul(M) M
	MulVec(V) V
	Scale(float32) M
	DivScalar(float32) M
	Transposed() M
	Equal(M) bool
	NotEqual(M) bool
}

// Mat4x4Ptr is the pointer method set of a Mat4x4 implementation.
type Mat4x4Ptr[M, V any] interface {
	*M
	SetRow(i int, r V)
	Transpose()
}

// Backend bundles the constructors of one implementation.
type Backend[V Vec4[V], M Mat4x4[M, V]] struct {
	Name            string
	NewVec4         func(x, y, z, w float32) V
	NewVec4XYZ      func(x, y, z float32) V
	Vec4FromVec3    func(v vec.Vec3) V
	Vec4FromVec3W   func(v vec.Vec3, w float32) V
	Vec4FromArray   func(a [4]float32) V
	OriginVec4      func() V
	ZeroVec4        func() V
	OneVec4         func() V
	NewMat4x4       func(r0, r1, r2, r3 V) M
	Mat4x4FromArray func(a [16]float32) M
	Identity        func() M
	ZeroMat4x4      func() M
	OneMat4x4       func() M
}
