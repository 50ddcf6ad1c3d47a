package simd_test

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-ml/internal/vec4test"
	"github.com/ajroetker/go-ml/scalar"
	"github.com/ajroetker/go-ml/simd"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	trials    = 1000
	tolerance = 1e-6
)

func toScalar(v simd.Vec4) scalar.Vec4 {
	return scalar.Vec4FromArray(v.Array())
}

func toScalarMat(m simd.Mat4x4) scalar.Mat4x4 {
	return scalar.Mat4x4FromArray(m.Array())
}

// near compares a and b relative to scale, the magnitude of the terms that
// were summed to produce them.
func near(t *testing.T, a, b, scale float32, msgAndArgs ...any) {
	t.Helper()
	scale = max(scale, math32.Abs(a), math32.Abs(b), 1)
	require.LessOrEqual(t, math32.Abs(a-b), tolerance*scale, msgAndArgs...)
}

func absDot(a, b [4]float32) float32 {
	var s float32
	for i := range a {
		s += math32.Abs(a[i] * b[i])
	}
	return s
}

func TestEquivalenceVector(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range trials {
		a := vec4test.RandomVec4(r, backend)
		b := vec4test.RandomVec4(r, backend)
		sa, sb := toScalar(a), toScalar(b)

		near(t, sa.Dot(sb), a.Dot(b), absDot(a.Array(), b.Array()), "trial %d dot", i)
		require.Equal(t, sa.Mul(sb).Array(), a.Mul(b).Array(), "trial %d mul", i)
		require.Equal(t, sa.Add(sb).Array(), a.Add(b).Array(), "trial %d add", i)
		require.Equal(t, sa.Div(sb).Array(), a.Div(b).Array(), "trial %d div", i)
		require.True(t, sa.Neg().Equal(toScalar(a.Neg())), "trial %d neg", i)

		sn, n := sa.Normalized().Array(), a.Normalized().Array()
		for k := range 4 {
			near(t, sn[k], n[k], 1, "trial %d normalized[%d]", i, k)
		}
	}
}

func TestEquivalenceMatrix(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := range trials {
		a := vec4test.RandomMat4x4(r, backend)
		b := vec4test.RandomMat4x4(r, backend)
		v := vec4test.RandomVec4(r, backend)
		sa, sb, sv := toScalarMat(a), toScalarMat(b), toScalar(v)

		got, want := a.Mul(b).Array(), sa.Mul(sb).Array()
		for k := range 16 {
			col := [4]float32{b.Rows[0].Get(k % 4), b.Rows[1].Get(k % 4), b.Rows[2].Get(k % 4), b.Rows[3].Get(k % 4)}
			near(t, want[k], got[k], absDot(a.Rows[k/4].Array(), col), "trial %d mul[%d]", i, k)
		}

		gv, wv := a.MulVec(v).Array(), sa.MulVec(sv).Array()
		for k := range 4 {
			near(t, wv[k], gv[k], absDot(a.Rows[k].Array(), v.Array()), "trial %d mulvec[%d]", i, k)
		}

		require.Equal(t, sa.Transposed().Array(), a.Transposed().Array(), "trial %d transpose", i)
	}
}

func TestEquivalenceIntegerMatrices(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := range trials {
		a := vec4test.RandomIntegerMat4x4(r, backend)
		b := vec4test.RandomIntegerMat4x4(r, backend)
		require.Equal(t, toScalarMat(a).Mul(toScalarMat(b)).Array(), a.Mul(b).Array(), "trial %d", i)
	}
}

func TestEquivalenceSample(t *testing.T) {
	m := [16]float32{1, 2, 3, 4, 2, 4, 3, 1, 3, 1, 4, 2, 4, 2, 1, 3}
	s := scalar.Mat4x4FromArray(m)
	v := simd.Mat4x4FromArray(m)

	s = s.Mul(s)
	v = v.Mul(v)
	assert.Equal(t, s.Array(), v.Array())

	s.Transpose()
	v.Transpose()
	assert.Equal(t, s.Array(), v.Array())
}
