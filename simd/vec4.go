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

// Package simd implements Vec4 and Mat4x4 on a four-lane float32 register.
//
// Every operation is written as the sequence of packed register steps a
// 128-bit SIMD unit would execute: lanewise arithmetic, broadcasts,
// shuffles and horizontal reductions. On amd64 builds with
// GOEXPERIMENT=simd and an AVX capable CPU the lanewise arithmetic runs on
// vector instructions; elsewhere the lanes are computed one at a time with
// the same IEEE-754 rounding, so the results never depend on the host.
//
// The types are drop-in replacements for the ones in package scalar. Dot
// products reduce as (p0+p1)+(p2+p3) instead of left to right, so the two
// packages agree exactly on exactly representable inputs and within float
// rounding otherwise.
package simd

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-ml/internal/assert"
	"github.com/ajroetker/go-ml/vec"
	"github.com/chewxy/math32"
)

//go:generate go run ../cmd/swizzlegen -type Vec4 -components 4 -vec github.com/ajroetker/go-ml/vec -skip xy,xyz -output swizzle_gen.go

// Vec4 is a four-component vector laid out as one 16-byte register.
//
// The zero value is (0,0,0,0). Use OriginVec4 for the homogeneous default
// (0,0,0,1). R,G,B,A and S,T,P,Q read the same components as X,Y,Z,W.
type Vec4 struct {
	X, Y, Z, W float32
}

// HardwareAccelerated reports whether register arithmetic is executed by
// vector instructions on this host.
func HardwareAccelerated() bool {
	return hardwareLanes
}

// NewVec4 returns (x, y, z, w).
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// NewVec4XYZ returns (x, y, z, 1).
func NewVec4XYZ(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}

// Vec4FromVec3 returns (v.X, v.Y, v.Z, 1).
func Vec4FromVec3(v vec.Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// Vec4FromVec3W returns (v.X, v.Y, v.Z, w).
func Vec4FromVec3W(v vec.Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec4FromArray loads four consecutive components.
func Vec4FromArray(a [4]float32) Vec4 {
	return f32x4(a).vec4()
}

// OriginVec4 returns (0,0,0,1).
func OriginVec4() Vec4 { return Vec4{W: 1} }

// ZeroVec4 returns (0,0,0,0).
func ZeroVec4() Vec4 { return set1(0).vec4() }

// OneVec4 returns (1,1,1,1).
func OneVec4() Vec4 { return set1(1).vec4() }

func (v Vec4) R() float32 { return v.X }
func (v Vec4) G() float32 { return v.Y }
func (v Vec4) B() float32 { return v.Z }
func (v Vec4) A() float32 { return v.W }
func (v Vec4) S() float32 { return v.X }
func (v Vec4) T() float32 { return v.Y }
func (v Vec4) P() float32 { return v.Z }
func (v Vec4) Q() float32 { return v.W }

// Get returns component i in [0,4).
func (v Vec4) Get(i int) float32 {
	assert.Index(i, 4, "vec4")
	return load(&v)[i&3]
}

// Set assigns component i in [0,4).
func (v *Vec4) Set(i int, s float32) {
	assert.Index(i, 4, "vec4")
	(*f32x4)(unsafe.Pointer(v))[i&3] = s
}

// Array returns the components in register order.
func (v Vec4) Array() [4]float32 {
	return load(&v)
}

func (v Vec4) XY() vec.Vec2  { return vec.Vec2{X: v.X, Y: v.Y} }
func (v Vec4) XYZ() vec.Vec3 { return vec.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// IsZero reports whether all four lanes compare equal to 0.
func (v Vec4) IsZero() bool {
	return load(&v).eqMask(set1(0)) == 0xF
}

// Dot multiplies lanewise and reduces horizontally.
func (v Vec4) Dot(o Vec4) float32 {
	return load(&v).mul(load(&o)).hsum()
}

func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// OneOverLength returns 1/Length, or 1 for the zero vector.
func (v Vec4) OneOverLength() float32 {
	if v.IsZero() {
		return 1
	}
	return 1 / v.Length()
}

func (v Vec4) Scale(s float32) Vec4 {
	return load(&v).mul(set1(s)).vec4()
}

// Normalize scales v to unit length. The zero vector is left unchanged.
func (v *Vec4) Normalize() {
	*v = v.Normalized()
}

func (v Vec4) Normalized() Vec4 {
	return v.Scale(v.OneOverLength())
}

func (v Vec4) Add(o Vec4) Vec4 {
	return load(&v).add(load(&o)).vec4()
}

func (v Vec4) AddScalar(s float32) Vec4 {
	return load(&v).add(set1(s)).vec4()
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return load(&v).sub(load(&o)).vec4()
}

func (v Vec4) SubScalar(s float32) Vec4 {
	return load(&v).sub(set1(s)).vec4()
}

// Neg computes 0 - v, so +0 lanes stay +0.
func (v Vec4) Neg() Vec4 {
	return set1(0).sub(load(&v)).vec4()
}

// Mul multiplies componentwise.
func (v Vec4) Mul(o Vec4) Vec4 {
	return load(&v).mul(load(&o)).vec4()
}

// Div divides componentwise.
func (v Vec4) Div(o Vec4) Vec4 {
	return load(&v).div(load(&o)).vec4()
}

// DivScalar multiplies by 1/s.
func (v Vec4) DivScalar(s float32) Vec4 {
	return v.Scale(1 / s)
}

// DivideByW divides all lanes by w, leaving 1/w in W. W must be non-zero.
func (v *Vec4) DivideByW() {
	assert.Precondition(v.W != 0, "divide by w = 0")
	oneOverW := 1 / v.W
	*v = v.Scale(oneOverW)
	v.W = oneOverW
}

// Clamp01 clamps every lane to [0,1]. NaN lanes become 0.
func (v Vec4) Clamp01() Vec4 {
	return load(&v).max(set1(0)).min(set1(1)).vec4()
}

// Equal compares all lanes exactly.
func (v Vec4) Equal(o Vec4) bool {
	return load(&v).eqMask(load(&o)) == 0xF
}

// NotEqual reports whether any lane differs (NaN lanes always differ).
func (v Vec4) NotEqual(o Vec4) bool {
	return !v.Equal(o)
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
