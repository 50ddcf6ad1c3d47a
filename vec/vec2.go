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

// Package vec provides the two- and three-component float32 vectors that
// the 4D types project into.
//
// Both types are plain values: every operation returns a new vector except
// Normalize, which updates the receiver in place. Products are rounded to
// float32 before they are summed so results do not depend on whether the
// compiler fuses multiply-add.
package vec

import (
	"fmt"

	"github.com/ajroetker/go-ml/internal/assert"
	"github.com/chewxy/math32"
)

//go:generate go run ../cmd/swizzlegen -type Vec2 -components 2 -output swizzle_vec2_gen.go

// Vec2 is a two-component vector. U and V name the same components for
// texture coordinates.
type Vec2 struct {
	X, Y float32
}

// NewVec2 returns (x, y).
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// ZeroVec2 returns (0, 0).
func ZeroVec2() Vec2 { return Vec2{} }

// OneVec2 returns (1, 1).
func OneVec2() Vec2 { return Vec2{1, 1} }

func (v Vec2) U() float32 { return v.X }
func (v Vec2) V() float32 { return v.Y }

// Get returns component i, 0 for X and 1 for Y.
func (v Vec2) Get(i int) float32 {
	assert.Index(i, 2, "vec2")
	if i == 0 {
		return v.X
	}
	return v.Y
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Dot(o Vec2) float32 {
	return float32(v.X*o.X) + float32(v.Y*o.Y)
}

func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// OneOverLength returns 1/Length, or 1 for the zero vector.
func (v Vec2) OneOverLength() float32 {
	if v.IsZero() {
		return 1
	}
	return 1 / v.Length()
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Normalize scales v to unit length. The zero vector is left unchanged.
func (v *Vec2) Normalize() {
	*v = v.Normalized()
}

func (v Vec2) Normalized() Vec2 {
	return v.Scale(v.OneOverLength())
}

// Area returns the signed area of the parallelogram spanned by v and o,
// i.e. the z component of their 3D cross product.
func (v Vec2) Area(o Vec2) float32 {
	return float32(v.X*o.Y) - float32(v.Y*o.X)
}

// AreaSign returns -1, 0 or 1 according to the sign of Area.
func (v Vec2) AreaSign(o Vec2) int {
	return sign(v.Area(o))
}

func (v Vec2) Add(o Vec2) Vec2          { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) AddScalar(s float32) Vec2 { return Vec2{v.X + s, v.Y + s} }
func (v Vec2) Sub(o Vec2) Vec2          { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) SubScalar(s float32) Vec2 { return Vec2{v.X - s, v.Y - s} }
func (v Vec2) Neg() Vec2                { return Vec2{-v.X, -v.Y} }
func (v Vec2) Mul(o Vec2) Vec2          { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Div(o Vec2) Vec2          { return Vec2{v.X / o.X, v.Y / o.Y} }

// DivScalar multiplies by 1/s.
func (v Vec2) DivScalar(s float32) Vec2 { return v.Scale(1 / s) }

// Equal compares componentwise without tolerance.
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func sign(a float32) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}
