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

// Package scalar implements Vec4 and Mat4x4 with one float32 operation per
// component.
//
// It is the reference for package simd: both expose the same API and are
// checked against each other. Products are rounded to float32 before they
// are accumulated, and sums are taken left to right.
package scalar

import (
	"fmt"

	"github.com/ajroetker/go-ml/internal/assert"
	"github.com/ajroetker/go-ml/vec"
	"github.com/chewxy/math32"
)

//go:generate go run ../cmd/swizzlegen -type Vec4 -components 4 -vec github.com/ajroetker/go-ml/vec -skip xy,xyz -output swizzle_gen.go

// Vec4 is a four-component vector.
//
// The zero value is (0,0,0,0). Use OriginVec4 for the homogeneous default
// (0,0,0,1). R,G,B,A and S,T,P,Q read the same components as X,Y,Z,W.
type Vec4 struct {
	X, Y, Z, W float32
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

func Vec4FromArray(a [4]float32) Vec4 {
	return Vec4{a[0], a[1], a[2], a[3]}
}

// OriginVec4 returns (0,0,0,1).
func OriginVec4() Vec4 { return Vec4{W: 1} }

// ZeroVec4 returns (0,0,0,0).
func ZeroVec4() Vec4 { return Vec4{} }

// OneVec4 returns (1,1,1,1).
func OneVec4() Vec4 { return Vec4{1, 1, 1, 1} }

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
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// Set assigns component i in [0,4).
func (v *Vec4) Set(i int, s float32) {
	assert.Index(i, 4, "vec4")
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	default:
		v.W = s
	}
}

func (v Vec4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) XY() vec.Vec2  { return vec.Vec2{X: v.X, Y: v.Y} }
func (v Vec4) XYZ() vec.Vec3 { return vec.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// IsZero reports whether all components are exactly 0.
func (v Vec4) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

// Dot sums the componentwise products left to right.
func (v Vec4) Dot(o Vec4) float32 {
	return float32(v.X*o.X) + float32(v.Y*o.Y) + float32(v.Z*o.Z) + float32(v.W*o.W)
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
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Normalize scales v to unit length. The zero vector is left unchanged.
func (v *Vec4) Normalize() {
	*v = v.Normalized()
}

func (v Vec4) Normalized() Vec4 {
	return v.Scale(v.OneOverLength())
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) AddScalar(s float32) Vec4 {
	return Vec4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4) SubScalar(s float32) Vec4 {
	return Vec4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Mul multiplies componentwise.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div divides componentwise.
func (v Vec4) Div(o Vec4) Vec4 {
	return Vec4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// DivScalar multiplies by 1/s.
func (v Vec4) DivScalar(s float32) Vec4 {
	return v.Scale(1 / s)
}

// DivideByW divides X, Y and Z by W and stores 1/W in W. W must be
// non-zero.
func (v *Vec4) DivideByW() {
	assert.Precondition(v.W != 0, "divide by w = 0")
	oneOverW := 1 / v.W
	v.X *= oneOverW
	v.Y *= oneOverW
	v.Z *= oneOverW
	v.W = oneOverW
}

// Clamp01 clamps every component to [0,1]. NaN becomes 0.
func (v Vec4) Clamp01() Vec4 {
	return Vec4{clamp01(v.X), clamp01(v.Y), clamp01(v.Z), clamp01(v.W)}
}

func clamp01(s float32) float32 {
	if !(s > 0) {
		return 0
	}
	if !(s < 1) {
		return 1
	}
	return s
}

// Equal compares componentwise without tolerance.
func (v Vec4) Equal(o Vec4) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

func (v Vec4) NotEqual(o Vec4) bool {
	return !v.Equal(o)
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
