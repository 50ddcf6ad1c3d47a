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

import "golang.org/x/image/math/f32"

// Conversions to and from the golang.org/x/image/math/f32 types. f32.Mat4
// is row major, matching Mat4x4.Array.

func ToF32Vec4(v Vec4) f32.Vec4 {
	return f32.Vec4(v.Array())
}

func FromF32Vec4(v f32.Vec4) Vec4 {
	return Vec4FromArray(v)
}

func ToF32Mat4(m Mat4x4) f32.Mat4 {
	return f32.Mat4(m.Array())
}

func FromF32Mat4(m f32.Mat4) Mat4x4 {
	return Mat4x4FromArray(m)
}
