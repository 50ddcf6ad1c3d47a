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

package vec

import (
	"fmt"

	"github.com/ajroetker/go-ml/internal/assert"
	"github.com/chewxy/math32"
)

//go:generate go run ../cmd/swizzlegen -type Vec3 -components 3 -skip xy -output swizzle_vec3_gen.go

// Vec3 is a three-component vector. U, V and W name the same components.
type Vec3 struct {
	X, Y, Z float32
}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3FromVec2 extends v with the given z.
func Vec3FromVec2(v Vec2, z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}

func ZeroVec3() Vec3 { return Vec3{} }
func OneVec3() Vec3  { return Vec3{1, 1, 1} }

func (v Vec3) U() float32 { return v.X }
func (v Vec3) V() float32 { return v.Y }
func (v Vec3) W() float32 { return v.Z }

func (v Vec3) Get(i int) float32 {
	assert.Index(i, 3, "vec3")
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vec3) Dot(o Vec3) float32 {
	return float32(v.X*o.X) + float32(v.Y*o.Y) + float32(v.Z*o.Z)
}

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		float32(v.Y*o.Z) - float32(v.Z*o.Y),
		float32(v.Z*o.X) - float32(v.X*o.Z),
		float32(v.X*o.Y) - float32(v.Y*o.X),
	}
}

func (v Vec3) LengthSquared() float32 { return v.Dot(v) }
func (v Vec3) Length() float32        { return math32.Sqrt(v.LengthSquared()) }

// OneOverLength returns 1/Length, or 1 for the zero vector.
func (v Vec3) OneOverLength() float32 {
	if v.IsZero() {
		return 1
	}
	return 1 / v.Length()
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Normalize scales v to unit length. The zero vector is left unchanged.
func (v *Vec3) Normalize() {
	*v = v.Normalized()
}

func (v Vec3) Normalized() Vec3 {
	return v.Scale(v.OneOverLength())
}

func (v Vec3) Add(o Vec3) Vec3          { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) AddScalar(s float32) Vec3 { return Vec3{v.X + s, v.Y + s, v.Z + s} }
func (v Vec3) Sub(o Vec3) Vec3          { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) SubScalar(s float32) Vec3 { return Vec3{v.X - s, v.Y - s, v.Z - s} }
func (v Vec3) Neg() Vec3                { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Mul(o Vec3) Vec3          { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Div(o Vec3) Vec3          { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }
func (v Vec3) DivScalar(s float32) Vec3 { return v.Scale(1 / s) }

func (v Vec3) Equal(o Vec3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
