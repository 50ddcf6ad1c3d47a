package ml

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-ml/vec"
)

func assertVec4InEpsilon(t *testing.T, want, got Vec4, eps float64) {
	t.Helper()
	w, g := want.Array(), got.Array()
	for i := range w {
		assert.InEpsilon(t, w[i], g[i], eps, "component %d of %v", i, got)
	}
}

func assertVec4InDelta(t *testing.T, want, got Vec4, delta float64) {
	t.Helper()
	w, g := want.Array(), got.Array()
	for i := range w {
		assert.InDelta(t, w[i], g[i], delta, "component %d of %v", i, got)
	}
}

func TestLerpVec4(t *testing.T) {
	a := NewVec4(1.1, 2.2, 3.3, 4.4)
	b := NewVec4(-9.3, -10.4, -11.5, -12.6)
	want := NewVec4(-3.06, -2.84, -2.62, -2.4)

	assertVec4InEpsilon(t, want, LerpVec4(0.4, a, b), 1e-6)
	assertVec4InEpsilon(t, want, Lerp(0.4, a, b), 1e-6)

	assert.Equal(t, a, LerpVec4(0, a, b))
	assert.Equal(t, b, LerpVec4(1, a, b))
	assert.Equal(t, a, Lerp(0, a, b))
	assert.Equal(t, b, Lerp(1, a, b))

	for i := range 100 {
		f := float32(i) / 100
		got := Lerp(f, a, b)
		assertVec4InDelta(t, LerpVec4(f, a, b), got, 1e-5)
	}
}

func TestLerpEndpoints(t *testing.T) {
	for _, ab := range [][2]float32{{1, 2}, {-3.5, 7.25}, {0, 0}, {1e6, -1e-6}} {
		assert.Equal(t, ab[0], LerpFloat32(0, ab[0], ab[1]))
		assert.Equal(t, ab[1], LerpFloat32(1, ab[0], ab[1]))
		assert.Equal(t, float64(ab[0]), LerpFloat64(0, float64(ab[0]), float64(ab[1])))
		assert.Equal(t, float64(ab[1]), LerpFloat64(1, float64(ab[0]), float64(ab[1])))
	}
}

func TestFMA32SingleRounding(t *testing.T) {
	// x*y + z = 1 + 2^-24 + 2^-60: just above the tie between 1 and
	// 1 + 2^-23, but within half a float64 ulp of it.
	x := float32(1 + 1.0/(1<<12))
	y := float32((1 - 1.0/(1<<12) + 1.0/(1<<24)) / (1 << 24))
	want := float32(1 + 1.0/(1<<23))

	assert.Equal(t, want, fma32(x, y, 1))
	assert.Equal(t, float32(1), float32(math.FMA(float64(x), float64(y), 1)), "double rounding")
	assert.Equal(t, -want, fma32(-x, y, -1))

	assert.Equal(t, float32(7), fma32(2, 3, 1))
	assert.Equal(t, float32(0), fma32(2, 0.5, -1))
	assert.True(t, math32.IsInf(fma32(math32.Inf(1), 1, 1), 1))
	assert.True(t, math32.IsNaN(fma32(math32.Inf(1), 0, 1)))

	r := rand.New(rand.NewPCG(7, 8))
	for range 10000 {
		x, y, z := r.Float32()*4-2, r.Float32()*4-2, r.Float32()*4-2
		exact := float64(x)*float64(y) + float64(z)
		got := fma32(x, y, z)
		require.InDelta(t, exact, float64(got), math.Abs(exact)*0x1p-23+0x1p-149)
	}
}

func TestLerpScalars(t *testing.T) {
	assert.InDelta(t, 1.3, LerpFloat32(0.3, 1, 2), 1e-6)
	assert.InDelta(t, 1.3, LerpFloat64(0.3, 1, 2), 1e-8)
	assert.InDelta(t, -0.5, LerpFloat32(0.75, 1, -1), 1e-7)
}

func TestLerpOtherVectors(t *testing.T) {
	got2 := Lerp(0.5, vec.NewVec2(0, 2), vec.NewVec2(4, 6))
	assert.Equal(t, vec.NewVec2(2, 4), got2)

	got3 := Lerp(0.25, vec.NewVec3(0, 0, 0), vec.NewVec3(4, 8, -4))
	assert.Equal(t, vec.NewVec3(1, 2, -1), got3)
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(32), Dot(vec.NewVec3(1, 2, 3), vec.NewVec3(4, 5, 6)))
	assert.Equal(t, float32(70), Dot(NewVec4(1, 2, 3, 4), NewVec4(5, 6, 7, 8)))
	assert.Equal(t, float32(11), Dot(vec.NewVec2(1, 2), vec.NewVec2(3, 4)))
}

func TestClamp(t *testing.T) {
	v := ClampToUnitInterval(NewVec4(-1, 0.5, 2, math32.NaN()))
	assert.Equal(t, NewVec4(0, 0.5, 1, 0), v)

	assert.Equal(t, float32(0), ClampFloat32(-0.1))
	assert.Equal(t, float32(0.25), ClampFloat32(0.25))
	assert.Equal(t, float32(1), ClampFloat32(1.5))
	assert.Equal(t, float32(0), ClampFloat32(math32.NaN()))
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math32.Pi, ToRadians(180), 1e-6)
	assert.InDelta(t, 90, ToDegrees(math32.Pi/2), 1e-4)
	for _, d := range []float32{-720, -45, 0, 30, 123.5} {
		assert.InDelta(t, d, ToDegrees(ToRadians(d)), 1e-3)
	}
}

func TestTruncateUnchecked(t *testing.T) {
	assert.Equal(t, int32(-2), TruncateUnchecked[int32](-2.7))
	assert.Equal(t, int32(2), TruncateUnchecked[int32](2.7))
	assert.Equal(t, uint8(3), TruncateUnchecked[uint8](3.9))
	assert.Equal(t, int64(0), TruncateUnchecked[int64](-0.5))
}
