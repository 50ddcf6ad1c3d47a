package simd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffle(t *testing.T) {
	a := f32x4{0, 1, 2, 3}
	b := f32x4{4, 5, 6, 7}
	assert.Equal(t, f32x4{1, 0, 7, 6}, a.shuffle(b, 1, 0, 3, 2))
	assert.Equal(t, f32x4{2, 2, 2, 2}, a.splat(2))
	assert.Equal(t, f32x4{6, 7, 2, 3}, movehl(a, b))
	assert.Equal(t, f32x4{4, 1, 2, 3}, a.addSS(b))
}

func TestHsumOrder(t *testing.T) {
	// (1e8+1) + (-1e8+1) drops both ones; a left-to-right sum keeps the last.
	a := f32x4{1e8, 1, -1e8, 1}
	assert.Equal(t, float32(0), a.hsum())
	assert.Equal(t, float32(10), f32x4{1, 2, 3, 4}.hsum())
}

func TestEqMask(t *testing.T) {
	nan := float32(math.NaN())
	a := f32x4{1, 2, nan, 4}
	assert.Equal(t, 0b1011, a.eqMask(f32x4{1, 2, nan, 4}))
	assert.Equal(t, 0, a.eqMask(f32x4{0, 0, 0, 0}))
	assert.Equal(t, 0xF, set1(3).eqMask(set1(3)))
}

func TestMinMax(t *testing.T) {
	nan := float32(math.NaN())
	a := f32x4{-1, 0.5, 2, nan}
	assert.Equal(t, f32x4{0, 0.5, 2, 0}, a.max(set1(0)))
	assert.Equal(t, f32x4{-1, 0.5, 1, 1}, a.min(set1(1)))
}

func TestTranspose4(t *testing.T) {
	r0, r1, r2, r3 := f32x4{0, 1, 2, 3}, f32x4{4, 5, 6, 7}, f32x4{8, 9, 10, 11}, f32x4{12, 13, 14, 15}
	transpose4(&r0, &r1, &r2, &r3)
	assert.Equal(t, f32x4{0, 4, 8, 12}, r0)
	assert.Equal(t, f32x4{1, 5, 9, 13}, r1)
	assert.Equal(t, f32x4{2, 6, 10, 14}, r2)
	assert.Equal(t, f32x4{3, 7, 11, 15}, r3)
}

func TestArithmeticLanes(t *testing.T) {
	a := f32x4{1, 2, 3, 4}
	b := f32x4{4, 3, 2, 1}
	assert.Equal(t, f32x4{5, 5, 5, 5}, a.add(b))
	assert.Equal(t, f32x4{-3, -1, 1, 3}, a.sub(b))
	assert.Equal(t, f32x4{4, 6, 6, 4}, a.mul(b))
	assert.Equal(t, f32x4{0.25, 2.0 / 3, 1.5, 4}, a.div(b))
}

func TestLoadStore(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	r := load(&v)
	assert.Equal(t, f32x4{1, 2, 3, 4}, r)
	assert.Equal(t, v, r.vec4())
}
