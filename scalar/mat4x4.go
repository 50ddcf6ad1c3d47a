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

package scalar

import (
	"fmt"

	"github.com/ajroetker/go-ml/internal/assert"
)

// Mat4x4 is a row-major 4x4 matrix. The zero value is the zero matrix.
type Mat4x4 struct {
	Rows [4]Vec4
}

func NewMat4x4(r0, r1, r2, r3 Vec4) Mat4x4 {
	return Mat4x4{Rows: [4]Vec4{r0, r1, r2, r3}}
}

// Mat4x4FromArray reads 16 values in row-major order.
func Mat4x4FromArray(a [16]float32) Mat4x4 {
	return NewMat4x4(
		Vec4{a[0], a[1], a[2], a[3]},
		Vec4{a[4], a[5], a[6], a[7]},
		Vec4{a[8], a[9], a[10], a[11]},
		Vec4{a[12], a[13], a[14], a[15]},
	)
}

func Identity() Mat4x4 {
	return NewMat4x4(
		Vec4{1, 0, 0, 0},
		Vec4{0, 1, 0, 0},
		Vec4{0, 0, 1, 0},
		Vec4{0, 0, 0, 1},
	)
}

func ZeroMat4x4() Mat4x4 { return Mat4x4{} }

// OneMat4x4 returns the matrix with every entry 1.
func OneMat4x4() Mat4x4 {
	return NewMat4x4(OneVec4(), OneVec4(), OneVec4(), OneVec4())
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

func (m Mat4x4) Array() [16]float32 {
	r := m.Rows
	return [16]float32{
		r[0].X, r[0].Y, r[0].Z, r[0].W,
		r[1].X, r[1].Y, r[1].Z, r[1].W,
		r[2].X, r[2].Y, r[2].Z, r[2].W,
		r[3].X, r[3].Y, r[3].Z, r[3].W,
	}
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
// The columns of o are dotted with the rows of m to form the columns of the
// result, which is then transposed into rows.
func (m Mat4x4) Mul(o Mat4x4) Mat4x4 {
	var cols Mat4x4
	for j := range 4 {
		c := Vec4{o.Rows[0].Get(j), o.Rows[1].Get(j), o.Rows[2].Get(j), o.Rows[3].Get(j)}
		cols.Rows[j] = m.MulVec(c)
	}
	return cols.Transposed()
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
	r := m.Rows
	m.Rows = [4]Vec4{
		{r[0].X, r[1].X, r[2].X, r[3].X},
		{r[0].Y, r[1].Y, r[2].Y, r[3].Y},
		{r[0].Z, r[1].Z, r[2].Z, r[3].Z},
		{r[0].W, r[1].W, r[2].W, r[3].W},
	}
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
