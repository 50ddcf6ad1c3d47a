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

package fixed

import (
	"github.com/ajroetker/go-ml/internal/assert"
	"github.com/chewxy/math32"
)

// Vec2 is a two-component vector of signed 32-bit fixed-point numbers in
// format F, the integer counterpart of vec.Vec2 for rasterization.
type Vec2[F Format] struct {
	X, Y Number[int32, F]
}

// NewVec2 converts x and y into format F.
func NewVec2[F Format](x, y float32) Vec2[F] {
	return Vec2[F]{X: FromFloat[int32, F](float64(x)), Y: FromFloat[int32, F](float64(y))}
}

// ConvertVec2 changes the format of both components.
func ConvertVec2[G Format, F Format](v Vec2[F]) Vec2[G] {
	return Vec2[G]{X: Convert[G](v.X), Y: Convert[G](v.Y)}
}

func (v Vec2[F]) U() Number[int32, F] { return v.X }
func (v Vec2[F]) V() Number[int32, F] { return v.Y }

func (v Vec2[F]) Get(i int) Number[int32, F] {
	assert.Index(i, 2, "fixed vec2")
	if i == 0 {
		return v.X
	}
	return v.Y
}

func (v Vec2[F]) Dot(o Vec2[F]) Number[int32, F] {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

func (v Vec2[F]) LengthSquared() Number[int32, F] {
	return v.Dot(v)
}

// Length is computed in floating point and converted back.
func (v Vec2[F]) Length() Number[int32, F] {
	return FromFloat[int32, F](float64(math32.Sqrt(ToFloat(v.LengthSquared()))))
}

// Area returns the signed parallelogram area spanned by v and o.
func (v Vec2[F]) Area(o Vec2[F]) Number[int32, F] {
	return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X))
}

// AreaSign returns -1, 0 or 1 according to the sign of Area.
func (v Vec2[F]) AreaSign(o Vec2[F]) int {
	return v.Area(o).Sign()
}

func (v Vec2[F]) Add(o Vec2[F]) Vec2[F] { return Vec2[F]{v.X.Add(o.X), v.Y.Add(o.Y)} }
func (v Vec2[F]) Sub(o Vec2[F]) Vec2[F] { return Vec2[F]{v.X.Sub(o.X), v.Y.Sub(o.Y)} }
func (v Vec2[F]) Neg() Vec2[F]          { return Vec2[F]{v.X.Neg(), v.Y.Neg()} }

// Scale multiplies both components by s in floating point.
func (v Vec2[F]) Scale(s float32) Vec2[F] {
	return Vec2[F]{
		FromFloat[int32, F](v.X.Float64() * float64(s)),
		FromFloat[int32, F](v.Y.Float64() * float64(s)),
	}
}

// DivScalar divides both components by s in floating point.
func (v Vec2[F]) DivScalar(s float32) Vec2[F] {
	return Vec2[F]{
		FromFloat[int32, F](v.X.Float64() / float64(s)),
		FromFloat[int32, F](v.Y.Float64() / float64(s)),
	}
}

func (v Vec2[F]) Equal(o Vec2[F]) bool {
	return v.X == o.X && v.Y == o.Y
}
