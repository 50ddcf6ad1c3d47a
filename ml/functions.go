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

package ml

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Lerpable is any vector type that can be scaled and summed.
type Lerpable[T any] interface {
	Scale(s float32) T
	Add(o T) T
}

// Lerp interpolates between a and b as a*(1-t) + b*t. It works for every
// vector type in the library.
func Lerp[T Lerpable[T]](t float32, a, b T) T {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// LerpVec4 interpolates each component of a and b with LerpFloat32.
func LerpVec4(t float32, a, b Vec4) Vec4 {
	return NewVec4(
		LerpFloat32(t, a.X, b.X),
		LerpFloat32(t, a.Y, b.Y),
		LerpFloat32(t, a.Z, b.Z),
		LerpFloat32(t, a.W, b.W),
	)
}

// LerpFloat32 computes t*b + (a - t*a) with two fused multiply-adds, each
// rounded once to float32.
func LerpFloat32(t, a, b float32) float32 {
	return fma32(t, b, fma32(-t, a, a))
}

// fma32 returns x*y + z with a single rounding to float32.
//
// The product is exact in float64. The sum is rounded to odd at float64
// precision, which keeps the final rounding to float32 from landing on a
// spurious tie.
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	s := p + float64(z)
	bv := s - p
	lo := (p - (s - bv)) + (float64(z) - bv)
	if lo != 0 && !math.IsNaN(lo) {
		bits := math.Float64bits(s)
		if bits&1 == 0 {
			if (lo > 0) == (s > 0) {
				bits++
			} else {
				bits--
			}
			s = math.Float64frombits(bits)
		}
	}
	return float32(s)
}

// LerpFloat64 is LerpFloat32 for float64.
func LerpFloat64(t, a, b float64) float64 {
	return math.FMA(t, b, math.FMA(-t, a, a))
}

// Dot returns the dot product of a and b.
func Dot[T interface{ Dot(T) float32 }](a, b T) float32 {
	return a.Dot(b)
}

// ClampToUnitInterval clamps each component of v to [0, 1]. NaN components
// become 0.
func ClampToUnitInterval(v Vec4) Vec4 {
	return v.Clamp01()
}

// ClampFloat32 clamps v to [0, 1]. NaN becomes 0.
func ClampFloat32(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToRadians converts degrees to radians.
func ToRadians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// TruncateUnchecked converts f to an integer, rounding toward zero. The
// result is unspecified when f is out of range for T.
func TruncateUnchecked[T constraints.Integer](f float32) T {
	return T(f)
}
