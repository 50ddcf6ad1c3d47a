package scalar_test

import (
	"math"
	"testing"

	"github.com/ajroetker/go-ml/internal/vec4test"
	"github.com/ajroetker/go-ml/scalar"
	"github.com/ajroetker/go-ml/vec"
	"github.com/stretchr/testify/assert"
)

var backend = vec4test.Backend[scalar.Vec4, scalar.Mat4x4]{
	Name:            "scalar",
	NewVec4:         scalar.NewVec4,
	NewVec4XYZ:      scalar.NewVec4XYZ,
	Vec4FromVec3:    scalar.Vec4FromVec3,
	Vec4FromVec3W:   scalar.Vec4FromVec3W,
	Vec4FromArray:   scalar.Vec4FromArray,
	OriginVec4:      scalar.OriginVec4,
	ZeroVec4:        scalar.ZeroVec4,
	OneVec4:         scalar.OneVec4,
	NewMat4x4:       scalar.NewMat4x4,
	Mat4x4FromArray: scalar.Mat4x4FromArray,
	Identity:        scalar.Identity,
	ZeroMat4x4:      scalar.ZeroMat4x4,
	OneMat4x4:       scalar.OneMat4x4,
}

func TestConformance(t *testing.T) {
	vec4test.Run[scalar.Vec4, *scalar.Vec4, scalar.Mat4x4, *scalar.Mat4x4](t, backend)
}

func TestAliases(t *testing.T) {
	v := scalar.NewVec4(1, 2, 3, 4)
	assert.Equal(t, [4]float32{v.R(), v.G(), v.B(), v.A()}, v.Array())
	assert.Equal(t, [4]float32{v.S(), v.T(), v.P(), v.Q()}, v.Array())
}

func TestSwizzle(t *testing.T) {
	v := scalar.NewVec4(1, 2, 3, 4)
	assert.Equal(t, vec.NewVec2(4, 1), v.WX())
	assert.Equal(t, vec.NewVec3(3, 3, 2), v.ZZY())
	assert.Equal(t, scalar.NewVec4(4, 3, 2, 1), v.WZYX())
	assert.Equal(t, v, v.XYZW())
}

func TestNegSignedZero(t *testing.T) {
	n := scalar.ZeroVec4().Neg()
	assert.True(t, math.Signbit(float64(n.X)), "scalar negation flips the sign of zero")
	assert.True(t, n.Equal(scalar.ZeroVec4()))
}

func BenchmarkDot(b *testing.B) {
	x := scalar.NewVec4(1, 2, 3, 4)
	y := scalar.NewVec4(4, 3, 2, 1)
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += x.Dot(y)
	}
	_ = sink
}

func BenchmarkMatMul(b *testing.B) {
	m := scalar.Mat4x4FromArray([16]float32{1, 2, 3, 4, 2, 4, 3, 1, 3, 1, 4, 2, 4, 2, 1, 3})
	r := scalar.Identity()
	for i := 0; i < b.N; i++ {
		r = r.Mul(m).Scale(0.01)
	}
	_ = r
}
