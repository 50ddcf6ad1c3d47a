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

//go:build amd64 && goexperiment.simd

package simd

import "simd/archsimd"

// hardwareLanes reports whether register arithmetic runs on vector
// instructions. The 128-bit forms need AVX.
var hardwareLanes = archsimd.X86.AVX()

func (a f32x4) add(b f32x4) f32x4 {
	if !hardwareLanes {
		return f32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
	}
	var r f32x4
	archsimd.LoadFloat32x4Slice(a[:]).Add(archsimd.LoadFloat32x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func (a f32x4) sub(b f32x4) f32x4 {
	if !hardwareLanes {
		return f32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
	}
	var r f32x4
	archsimd.LoadFloat32x4Slice(a[:]).Sub(archsimd.LoadFloat32x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func (a f32x4) mul(b f32x4) f32x4 {
	if !hardwareLanes {
		return f32x4{float32(a[0] * b[0]), float32(a[1] * b[1]), float32(a[2] * b[2]), float32(a[3] * b[3])}
	}
	var r f32x4
	archsimd.LoadFloat32x4Slice(a[:]).Mul(archsimd.LoadFloat32x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func (a f32x4) div(b f32x4) f32x4 {
	if !hardwareLanes {
		return f32x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
	}
	var r f32x4
	archsimd.LoadFloat32x4Slice(a[:]).Div(archsimd.LoadFloat32x4Slice(b[:])).StoreSlice(r[:])
	return r
}
