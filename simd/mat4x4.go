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

package simd

import (
	"fmt"

	"github.com/ajroetker/go-ml/internal/assert"
)

// Mat4x4 is a row-major 4x4 matrix. The zero value is the zero matrix.
type Mat4x4 struct {
	Rows [4]Vec4
}

// NewMat4x4 builds a matrix from its rows.
func NewMat4x4(r0, r1, r2, r3 Vec4) Mat4x4 {
	return Mat4x4{Rows: [4]Vec4{r0, r1, r2, r3}}
}

// Mat4x4FromArray reads 16 values in row-major order.
func Mat4x4FromArray(a [16]float32) Mat4x4 {
	var m Mat4x4
	for i := range m.Rows {
		m.Rows[i] = Vec4FromArray([4]float32(a[4*i : 4*i+4]))
	}
	return m
}

func Identity() Mat4x4 {
	return Mat4x4{Rows: [4]Vec4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func ZeroMat4x4() Mat4x4 {
	z := ZeroVec4()
	return NewMat4x4(z, z, z, z)
}

// OneMat4x4 returns the matrix with every entry 1.
func OneMat4x4() Mat4x4 {
	o := OneVec4()
	return NewMat4x4(o, o, o, o)
}

// Row returns row i in [0,4).
func (m Mat4x4) Row(i int) Vec4 {
	assert.Index(i, 4, "mat4x4 row")
	return m.Rows[i&3]
}

// SetRow replaces row i in [0,4).
func (m *Mat4x4) SetRow(i int, r Vec4) {
	assert.Index(i, 4, "mat4x4 row")
	m.Rows[i&3] = r
}

// Array returns the entries in row-major order.
func (m Mat4x4) Array() [16]float32 {
	var a [16]float32
	for i := range m.Rows {
		row := load(&m.Rows[i])
		copy(a[4*i:], row[:])
	}
	return a
}

func (m Mat4x4) Add(o Mat4x4) Mat4x4 {
	return NewMat4x4(m.Rows[0].Add(o.Rows[0]), m.Rows[1].Add(o.Rows[1]), m.Rows[2].Add(o.Rows[2]), m.Rows[3].Add(o.Rows[3]))
}

func (m Mat4x4) Sub(o Mat4x4) Mat4x4 {
	return NewMat4x4(m.Rows[0].Sub(o.Rows[0]), m.Rows[1].Sub(o.Rows[1]), m.Rows[2].Sub(o.Rows[2]), m.Rows[3].Sub(o.Rows[3]))
}

func (m Mat4x4) Neg() Mat4x4 {
	return NewMat4x4(m.Rows[0].Neg(), m.Rows[1].Neg(), m.Rows[2].Neg(), m.Rows[3].Neg())
}

// Mul returns the matrix product m × o.
//
// Each result row is a linear combination of the rows of o: the lanes of
// the source row are broadcast, multiplied with the rows of o and summed
// pairwise as (x+z)+(y+w).
func (m Mat4x4) Mul(o Mat4x4) Mat4x4 {
	b0, b1, b2, b3 := load(&o.Rows[0]), load(&o.Rows[1]), load(&o.Rows[2]), load(&o.Rows[3])

	var res Mat4x4
	for i := range m.Rows {
		a := load(&m.Rows[i])
		vX := a.splat(0).mul(b0)
		vY := a.splat(1).mul(b1)
		vZ := a.splat(2).mul(b2)
		vW := a.splat(3).mul(b3)
		vX = vX.add(vZ)
		vY = vY.add(vW)
		res.Rows[i] = vX.add(vY).vec4()
	}
	return res
}

// MulVec returns m × v with v treated as a column.
func (m Mat4x4) MulVec(v Vec4) Vec4 {
	return Vec4{m.Rows[0].Dot(v), m.Rows[1].Dot(v), m.Rows[2].Dot(v), m.Rows[3].Dot(v)}
}

func (m Mat4x4) Scale(s float32) Mat4x4 {
	return NewMat4x4(m.Rows[0].Scale(s), m.Rows[1].Scale(s), m.Rows[2].Scale(s), m.Rows[3].Scale(s))
}

// DivScalar multiplies by 1/s.
func (m Mat4x4) DivScalar(s float32) Mat4x4 {
	return m.Scale(1 / s)
}

// Transpose swaps rows and columns in place.
func (m *Mat4x4) Transpose() {
	r0, r1, r2, r3 := load(&m.Rows[0]), load(&m.Rows[1]), load(&m.Rows[2]), load(&m.Rows[3])
	transpose4(&r0, &r1, &r2, &r3)
	m.Rows = [4]Vec4{r0.vec4(), r1.vec4(), r2.vec4(), r3.vec4()}
}

func (m Mat4x4) Transposed() Mat4x4 {
	m.Transpose()
	return m
}

// Equal compares all entries exactly.
func (m Mat4x4) Equal(o Mat4x4) bool {
	return m.Rows[0].Equal(o.Rows[0]) && m.Rows[1].Equal(o.Rows[1]) && m.Rows[2].Equal(o.Rows[2]) && m.Rows[3].Equal(o.Rows[3])
}

func (m Mat4x4) NotEqual(o Mat4x4) bool {
	return !m.Equal(o)
}

func (m Mat4x4) String() string {
	return fmt.Sprintf("[%v %v %v %v]", m.Rows[0], m.Rows[1], m.Rows[2], m.Rows[3])
}
