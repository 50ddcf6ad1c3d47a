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

//go:build !ml_nosimd

package ml

import (
	"github.com/ajroetker/go-ml/simd"
	"github.com/ajroetker/go-ml/vec"
)

// Backend names the package backing Vec4 and Mat4x4.
const Backend = "simd"

type (
	Vec4   = simd.Vec4
	Mat4x4 = simd.Mat4x4
)

func NewVec4(x, y, z, w float32) Vec4          { return simd.NewVec4(x, y, z, w) }
func NewVec4XYZ(x, y, z float32) Vec4          { return simd.NewVec4XYZ(x, y, z) }
func Vec4FromVec3(v vec.Vec3) Vec4             { return simd.Vec4FromVec3(v) }
func Vec4FromVec3W(v vec.Vec3, w float32) Vec4 { return simd.Vec4FromVec3W(v, w) }
func Vec4FromArray(a [4]float32) Vec4          { return simd.Vec4FromArray(a) }
func OriginVec4() Vec4                         { return simd.OriginVec4() }
func ZeroVec4() Vec4                           { return simd.ZeroVec4() }
func OneVec4() Vec4                            { return simd.OneVec4() }
func NewMat4x4(r0, r1, r2, r3 Vec4) Mat4x4     { return simd.NewMat4x4(r0, r1, r2, r3) }
func Mat4x4FromArray(a [16]float32) Mat4x4     { return simd.Mat4x4FromArray(a) }
func Identity() Mat4x4                         { return simd.Identity() }
func ZeroMat4x4() Mat4x4                       { return simd.ZeroMat4x4() }
func OneMat4x4() Mat4x4                        { return simd.OneMat4x4() }

func hardwareLanes() bool { return simd.HardwareAccelerated() }
