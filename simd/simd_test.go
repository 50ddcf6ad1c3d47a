package simd_test

import (
	"math"
	"testing"

	"github.com/ajroetker/go-ml/internal/vec4test"
	"github.com/ajroetker/go-ml/simd"
	"github.com/ajroetker/go-ml/vec"
	"github.com/stretchr/testify/assert"
)

var backend = vec4test.Backend[simd.Vec4, simd.Mat4x4]{
	Name:            "simd",
	NewVec4:         simd.NewVec4,
	NewVec4XYZ:      simd.NewVec4XYZ,
	Vec4FromVec3:    simd.Vec4FromVec3,
	Vec4FromVec3W:   simd.Vec4FromVec3W,
	Vec4FromArray:   simd.Vec4FromArray,
	OriginVec4:      simd.OriginVec4,
	ZeroVec4:        simd.ZeroVec4,
	OneVec4:         simd.OneVec4,
	NewMat4x4:       simd.NewMat4x4,
	Mat4x4FromArray: simd.Mat4x4FromArray,
	Identity:        simd.Identity,
	ZeroMat4x4:      simd.ZeroMat4x4,
	OneMat4x4:       simd.OneMat4x4,
}

func TestConformance(t *testing.T) {
	vec4test.Run[simd.Vec4, *simd.Vec4, simd.Mat4x4, *simd.Mat4x4](t, backend)
}

func TestAliases(t *testing.T) {
	v := simd.NewVec4(1, 2, 3, 4)
	assert.Equal(t, [4]float32{v.R(), v.G(), v.B(), v.A()}, v.Array())
	assert.Equal(t, [4]float32{v.S(), v.T(), v.P(), v.Q()}, v.Array())
}

func TestSwizzle(t *testing.T) {
	v := simd.NewVec4(1, 2, 3, 4)
	assert.Equal(t, vec.NewVec2(4, 1), v.WX())
	assert.Equal(t, vec.NewVec3(3, 3, 2), v.ZZY())
	assert.Equal(t, simd.NewVec4(4, 3, 2, 1), v.WZYX())
	assert.Equal(t, v, v.XYZW())
}

func TestNegSignedZero(t *testing.T) {
	n := simd.ZeroVec4().Neg()
	assert.False(t, math.Signbit(float64(n.X)), "0 - (+0) is +0")
	assert.True(t, n.Equal(simd.ZeroVec4()))
}

func BenchmarkDot(b *testing.B) {
	x := simd.NewVec4(1, 2, 3, 4)
	y := simd.NewVec4(4, 3, 2, 1)
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += x.Dot(y)
	}
	_ = sink
}

func BenchmarkMatMul(b *testing.B) {
	m := simd.Mat4x4FromArray([16]float32{1, 2, 3, 4, 2, 4, 3, 1, 3, 1, 4, 2, 4, 2, 1, 3})
	r := simd.Identity()
	for i := 0; i < b.N; i++ {
		r = r.Mul(m).Scale(0.01)
	}
	_ = r
}
