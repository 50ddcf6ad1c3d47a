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

// Package ml is the entry point of the library: it exposes Vec4 and Mat4x4
// from the implementation selected at build time together with the helpers
// built on top of them.
//
// By default Vec4 and Mat4x4 are the register-oriented types of package
// simd. Building with the ml_nosimd tag switches them to package scalar.
// Both implementations produce the same results up to float rounding, and
// code written against package ml compiles unchanged with either.
//
// Precondition checks (zero w in DivideByW, out-of-range indices) panic
// unless the ml_noassert tag is set.
package ml
