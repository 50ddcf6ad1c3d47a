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

package vec4test

import (
	"math"
	"math/rand/v2"
	"testing"
	"unsafe"

	"github.com/ajroetker/go-ml/internal/assert"
	"github.com/ajroetker/go-ml/vec"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run executes the conformance suite against b.
func Run[V Vec4[V], PV Vec4Ptr[V], M Mat4x4[M, V], PM Mat4x4Ptr[M, V]](t *testing.T, b Backend[V, M]) {
	t.Run(b.Name+"/Layout", func(t *testing.T) {
		var v V
		tassert.Equal(t, uintptr(16), unsafe.Sizeof(v))
		var m M
		tassert.Equal(t, uintptr(64), unsafe.Sizeof(m))
	})
	t.Run(b.Name+"/Construction", func(t *testing.T) { testConstruction(t, b) })
	t.Run(b.Name+"/Access", func(t *testing.T) { testAccess[V, PV](t, b) })
	t.Run(b.Name+"/Compare", func(t *testing.T) { testCompare(t, b) })
	t.Run(b.Name+"/Arithmetic", func(t *testing.T) { testArithmetic(t, b) })
	t.Run(b.Name+"/Dot", func(t *testing.T) { testDot(t, b) })
	t.Run(b.Name+"/Normalize", func(t *testing.T) { testNormalize[V, PV](t, b) })
	t.Run(b.Name+"/DivideByW", func(t *testing.T) { testDivideByW[V, PV](t, b) })
	t.Run(b.Name+"/MatrixConstruction", func(t *testing.T) { testMatrixConstruction[V, M, PM](t, b) })
	t.Run(b.Name+"/MatrixArithmetic", func(t *testing.T) { testMatrixArithmetic(t, b) })
	t.Run(b.Name+"/MatrixMul", func(t *testing.T) { testMatrixMul(t, b) })
	t.Run(b.Name+"/Transpose", func(t *testing.T) { testTranspose[V, M, PM](t, b) })
}

func testConstruction[V Vec4[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	tassert.Equal(t, [4]float32{1, 2, 3, 4}, b.NewVec4(1, 2, 3, 4).Array())
	tassert.Equal(t, [4]float32{1, 2, 3, 1}, b.NewVec4XYZ(1, 2, 3).Array(), "w defaults to one")
	tassert.Equal(t, [4]float32{1, 2, 3, 1}, b.Vec4FromVec3(vec.NewVec3(1, 2, 3)).Array())
	tassert.Equal(t, [4]float32{1, 2, 3, 4}, b.Vec4FromVec3W(vec.NewVec3(1, 2, 3), 4).Array())
	tassert.Equal(t, [4]float32{1, 2, 3, 4}, b.Vec4FromArray([4]float32{1, 2, 3, 4}).Array())
	tassert.Equal(t, [4]float32{0, 0, 0, 1}, b.OriginVec4().Array())
	tassert.Equal(t, [4]float32{0, 0, 0, 0}, b.ZeroVec4().Array())
	tassert.Equal(t, [4]float32{1, 1, 1, 1}, b.OneVec4().Array())

	var zero V
	tassert.Equal(t, b.ZeroVec4(), zero)
}

func testAccess[V Vec4[V], PV Vec4Ptr[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	v := b.NewVec4(1, 2, 3, 4)
	for i := range 4 {
		tassert.Equal(t, float32(i+1), v.Get(i))
	}
	tassert.Equal(t, vec.NewVec2(1, 2), v.XY())
	tassert.Equal(t, vec.NewVec3(1, 2, 3), v.XYZ())

	PV(&v).Set(2, 9)
	tassert.Equal(t, [4]float32{1, 2, 9, 4}, v.Array())
	tassert.Equal(t, "(1, 2, 9, 4)", v.String())

	if assert.Enabled {
		tassert.Panics(t, func() { v.Get(4) })
		tassert.Panics(t, func() { v.Get(-1) })
		tassert.Panics(t, func() { PV(&v).Set(4, 0) })
	}
}

func testCompare[V Vec4[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	tassert.True(t, b.NewVec4(1, 2, 3, 4).Equal(b.NewVec4(1, 2, 3, 4)))
	tassert.False(t, b.NewVec4(1, 2, 3, 4).Equal(b.NewVec4(1, 2, 3, 0)))
	tassert.False(t, b.NewVec4(1, 2, 3, 4).NotEqual(b.NewVec4(1, 2, 3, 4)))
	tassert.True(t, b.NewVec4(1, 2, 3, 4).NotEqual(b.NewVec4(1, 2, 3, 0)))

	nan := float32(math.NaN())
	tassert.False(t, b.NewVec4(nan, 0, 0, 0).Equal(b.NewVec4(nan, 0, 0, 0)))
	tassert.True(t, b.NewVec4(nan, 0, 0, 0).NotEqual(b.NewVec4(nan, 0, 0, 0)))

	negZero := float32(math.Copysign(0, -1))
	tassert.True(t, b.NewVec4(negZero, 0, 0, 0).Equal(b.ZeroVec4()))

	tassert.False(t, b.NewVec4(0, 0, 0, 1).IsZero())
	tassert.True(t, b.NewVec4(0, 0, 0, 0).IsZero())
	tassert.True(t, b.NewVec4(negZero, negZero, 0, 0).IsZero())
	tassert.False(t, b.NewVec4(1e-30, 0, 0, 0).IsZero())
}

func testArithmetic[V Vec4[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	products := []struct{ a, b, want [4]float32 }{
		{[4]float32{1, 2, 3, 4}, [4]float32{4, 3, 2, 1}, [4]float32{4, 6, 6, 4}},
		{[4]float32{0, 1, 0, 1}, [4]float32{-1, 0, -1, 0}, [4]float32{0, 0, 0, 0}},
		{[4]float32{-2, -3, 3, 2}, [4]float32{-1, 0, 4, -4}, [4]float32{2, 0, 12, -8}},
	}
	for _, p := range products {
		got := b.Vec4FromArray(p.a).Mul(b.Vec4FromArray(p.b))
		tassert.True(t, got.Equal(b.Vec4FromArray(p.want)), "%v * %v = %v", p.a, p.b, got)
	}

	x := b.NewVec4(1, 2, 3, 4)
	y := b.NewVec4(8, 4, 2, 1)
	tassert.Equal(t, [4]float32{9, 6, 5, 5}, x.Add(y).Array())
	tassert.Equal(t, [4]float32{-7, -2, 1, 3}, x.Sub(y).Array())
	tassert.Equal(t, [4]float32{0.125, 0.5, 1.5, 4}, x.Div(y).Array())
	tassert.Equal(t, [4]float32{2, 4, 6, 8}, x.Scale(2).Array())
	tassert.Equal(t, [4]float32{4, 2, 1, 0.5}, y.DivScalar(2).Array())
	tassert.Equal(t, [4]float32{2, 3, 4, 5}, x.AddScalar(1).Array())
	tassert.Equal(t, [4]float32{0, 1, 2, 3}, x.SubScalar(1).Array())
	tassert.True(t, x.Neg().Equal(b.NewVec4(-1, -2, -3, -4)))
	tassert.True(t, x.Add(x.Neg()).IsZero())

	nan := float32(math.NaN())
	tassert.Equal(t, [4]float32{0, 0.5, 1, 0}, b.NewVec4(-2, 0.5, 7, nan).Clamp01().Array())
}

func testDot[V Vec4[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	tests := []struct {
		a, b [4]float32
		want float32
	}{
		{[4]float32{1, -1, 1, -1}, [4]float32{1, -1, 1, -1}, 4},
		{[4]float32{1, 2, 3, 4}, [4]float32{4, 3, 2, 1}, 20},
		{[4]float32{1, 2, 3, 4}, [4]float32{-2, 1, -4, 3}, 0},
	}
	for _, tt := range tests {
		tassert.Equal(t, tt.want, b.Vec4FromArray(tt.a).Dot(b.Vec4FromArray(tt.b)))
	}

	v := b.NewVec4(1, 2, 2, 4)
	tassert.Equal(t, float32(25), v.LengthSquared())
	tassert.Equal(t, float32(5), v.Length())
	tassert.Equal(t, float32(0.2), v.OneOverLength())
	tassert.Equal(t, float32(1), b.ZeroVec4().OneOverLength())
}

func testNormalize[V Vec4[V], PV Vec4Ptr[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	v := b.NewVec4(3, 0, 4, 0)
	n := v.Normalized()
	tassert.InDelta(t, 1, n.Length(), 1e-6)
	tassert.InDelta(t, 0.6, n.Get(0), 1e-6)
	tassert.InDelta(t, 0.8, n.Get(2), 1e-6)

	PV(&v).Normalize()
	tassert.Equal(t, n, v)

	z := b.ZeroVec4()
	PV(&z).Normalize()
	tassert.True(t, z.IsZero(), "normalizing the zero vector is a no-op")
}

func testDivideByW[V Vec4[V], PV Vec4Ptr[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	v := b.NewVec4(2, 4, 8, 2)
	PV(&v).DivideByW()
	tassert.Equal(t, [4]float32{1, 2, 4, 0.5}, v.Array(), "w holds 1/w")

	u := b.NewVec4(2, 4, 8, 1)
	PV(&u).DivideByW()
	tassert.Equal(t, [4]float32{2, 4, 8, 1}, u.Array())

	if assert.Enabled {
		z := b.NewVec4(1, 1, 1, 0)
		tassert.Panics(t, func() { PV(&z).DivideByW() })
	}
}

var sample = [16]float32{
	1, 2, 3, 4,
	2, 4, 3, 1,
	3, 1, 4, 2,
	4, 2, 1, 3,
}

func testMatrixConstruction[V Vec4[V], M Mat4x4[M, V], PM Mat4x4Ptr[M, V]](t *testing.T, b Backend[V, M]) {
	var zero M
	tassert.Equal(t, b.ZeroMat4x4(), zero, "zero value is the zero matrix")
	for i := range 4 {
		tassert.True(t, zero.Row(i).IsZero())
		tassert.Equal(t, b.OneVec4(), b.OneMat4x4().Row(i))
		want := [4]float32{}
		want[i] = 1
		tassert.Equal(t, want, b.Identity().Row(i).Array())
	}

	m := b.Mat4x4FromArray(sample)
	tassert.Equal(t, sample, m.Array())
	tassert.Equal(t, [4]float32{3, 1, 4, 2}, m.Row(2).Array())
	tassert.Equal(t, m, b.NewMat4x4(m.Row(0), m.Row(1), m.Row(2), m.Row(3)))

	PM(&m).SetRow(1, b.OneVec4())
	tassert.Equal(t, b.OneVec4(), m.Row(1))

	if assert.Enabled {
		tassert.Panics(t, func() { m.Row(4) })
		tassert.Panics(t, func() { PM(&m).SetRow(-1, b.OneVec4()) })
	}
}

func testMatrixArithmetic[V Vec4[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	m := b.Mat4x4FromArray(sample)
	one := b.OneMat4x4()

	var plusOne, twice [16]float32
	for i, s := range sample {
		plusOne[i] = s + 1
		twice[i] = 2 * s
	}
	tassert.Equal(t, plusOne, m.Add(one).Array())
	tassert.Equal(t, m, m.Add(one).Sub(one))
	tassert.Equal(t, twice, m.Scale(2).Array())
	tassert.Equal(t, m, m.Scale(2).DivScalar(2))
	tassert.True(t, m.Add(m.Neg()).Equal(b.ZeroMat4x4()))
	tassert.True(t, m.NotEqual(one))
	tassert.False(t, m.NotEqual(m))

	v := b.NewVec4(1, 0, -1, 2)
	tassert.Equal(t, [4]float32{6, 1, 3, 9}, m.MulVec(v).Array())
	tassert.Equal(t, v, b.Identity().MulVec(v))
}

func testMatrixMul[V Vec4[V], M Mat4x4[M, V]](t *testing.T, b Backend[V, M]) {
	m := b.Mat4x4FromArray(sample)
	want := [16]float32{
		30, 21, 25, 24,
		23, 25, 31, 21,
		25, 18, 30, 27,
		23, 23, 25, 29,
	}
	tassert.Equal(t, want, m.Mul(m).Array())
	tassert.Equal(t, m, m.Mul(b.Identity()))
	tassert.Equal(t, m, b.Identity().Mul(m))
	tassert.True(t, m.Mul(b.ZeroMat4x4()).Equal(b.ZeroMat4x4()))

	r := rand.New(rand.NewPCG(7, 11))
	for range 1000 {
		rm := RandomMat4x4(r, b)
		require.Equal(t, rm, rm.Mul(b.Identity()))
		require.Equal(t, rm, rm.Transposed().Transposed())
	}
}

func testTranspose[V Vec4[V], M Mat4x4[M, V], PM Mat4x4Ptr[M, V]](t *testing.T, b Backend[V, M]) {
	m := b.Mat4x4FromArray([16]float32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})
	want := [16]float32{
		0, 4, 8, 12,
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
	}
	tassert.Equal(t, want, m.Transposed().Array())

	c := m
	PM(&c).Transpose()
	tassert.Equal(t, want, c.Array())
	PM(&c).Transpose()
	tassert.Equal(t, m, c)
	tassert.Equal(t, b.Identity(), b.Identity().Transposed())
}

// RandomVec4 returns a vector with components uniform in [-1, 1).
func RandomVec4[V Vec4[V], M Mat4x4[M, V]](r *rand.Rand, b Backend[V, M]) V {
	return b.NewVec4(signed(r), signed(r), signed(r), signed(r))
}

// RandomMat4x4 returns a matrix with components uniform in [-1, 1).
func RandomMat4x4[V Vec4[V], M Mat4x4[M, V]](r *rand.Rand, b Backend[V, M]) M {
	return b.NewMat4x4(RandomVec4(r, b), RandomVec4(r, b), RandomVec4(r, b), RandomVec4(r, b))
}

// RandomIntegerMat4x4 returns a matrix of small integers whose products
// and sums are exact in float32: x, y, z in [-5, 3] and w in [1, 9].
func RandomIntegerMat4x4[V Vec4[V], M Mat4x4[M, V]](r *rand.Rand, b Backend[V, M]) M {
	row := func() V {
		return b.NewVec4(float32(r.IntN(9)-5), float32(r.IntN(9)-5), float32(r.IntN(9)-5), float32(r.IntN(9)+1))
	}
	return b.NewMat4x4(row(), row(), row(), row())
}

func signed(r *rand.Rand) float32 {
	return 2*r.Float32() - 1
}
