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

import "github.com/chewxy/math32"

// Transformation builders. All matrices act on column vectors, so
// m.MulVec(p) transforms p and a.Mul(b) applies b first.

// PerspectiveProjection returns a right-handed projection with a vertical
// field of view of fovY radians, mapping depth [near, far] to [-1, 1].
func PerspectiveProjection(aspect, fovY, near, far float32) Mat4x4 {
	zRange := near - far
	oot := 1 / math32.Tan(fovY/2)
	return NewMat4x4(
		NewVec4(oot/aspect, 0, 0, 0),
		NewVec4(0, oot, 0, 0),
		NewVec4(0, 0, (far+near)/zRange, 2*near*far/zRange),
		NewVec4(0, 0, -1, 0),
	)
}

// OrthographicProjection maps the box [left,right]x[bottom,top]x[near,far]
// to the cube [-1,1]^3.
func OrthographicProjection(left, right, bottom, top, near, far float32) Mat4x4 {
	w := right - left
	h := top - bottom
	d := far - near
	return NewMat4x4(
		NewVec4(2/w, 0, 0, -(right+left)/w),
		NewVec4(0, 2/h, 0, -(top+bottom)/h),
		NewVec4(0, 0, 2/d, -(far+near)/d),
		NewVec4(0, 0, 0, 1),
	)
}

func Translation(x, y, z float32) Mat4x4 {
	return NewMat4x4(
		NewVec4(1, 0, 0, x),
		NewVec4(0, 1, 0, y),
		NewVec4(0, 0, 1, z),
		NewVec4(0, 0, 0, 1),
	)
}

func Diagonal(x, y, z, w float32) Mat4x4 {
	return NewMat4x4(
		NewVec4(x, 0, 0, 0),
		NewVec4(0, y, 0, 0),
		NewVec4(0, 0, z, 0),
		NewVec4(0, 0, 0, w),
	)
}

// Scaling scales x, y and z uniformly by s and keeps w.
func Scaling(s float32) Mat4x4 {
	return Diagonal(s, s, s, 1)
}

// RotationX rotates by angle radians around the x axis.
func RotationX(angle float32) Mat4x4 {
	s, c := math32.Sincos(angle)
	return NewMat4x4(
		NewVec4(1, 0, 0, 0),
		NewVec4(0, c, -s, 0),
		NewVec4(0, s, c, 0),
		NewVec4(0, 0, 0, 1),
	)
}

func RotationY(angle float32) Mat4x4 {
	s, c := math32.Sincos(angle)
	return NewMat4x4(
		NewVec4(c, 0, s, 0),
		NewVec4(0, 1, 0, 0),
		NewVec4(-s, 0, c, 0),
		NewVec4(0, 0, 0, 1),
	)
}

func RotationZ(angle float32) Mat4x4 {
	s, c := math32.Sincos(angle)
	return NewMat4x4(
		NewVec4(c, -s, 0, 0),
		NewVec4(s, c, 0, 0),
		NewVec4(0, 0, 1, 0),
		NewVec4(0, 0, 0, 1),
	)
}
