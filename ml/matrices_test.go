package ml

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationAndScaling(t *testing.T) {
	p := NewVec4(1, 2, 3, 1)
	assert.Equal(t, NewVec4(11, 22, 33, 1), Translation(10, 20, 30).MulVec(p))

	dir := NewVec4(1, 2, 3, 0)
	assert.Equal(t, dir, Translation(10, 20, 30).MulVec(dir))

	assert.Equal(t, NewVec4(2, 4, 6, 1), Scaling(2).MulVec(p))
	assert.Equal(t, NewVec4(-1, 4, 0, 8), Diagonal(-1, 2, 0, 8).MulVec(NewVec4(1, 2, 3, 1)))

	// Scaling then translating.
	m := Translation(1, 1, 1).Mul(Scaling(3))
	assert.Equal(t, NewVec4(4, 7, 10, 1), m.MulVec(p))
}

func TestRotations(t *testing.T) {
	quarter := math32.Pi / 2

	assertVec4InDelta(t, NewVec4(0, 1, 0, 0), RotationZ(quarter).MulVec(NewVec4(1, 0, 0, 0)), 1e-6)
	assertVec4InDelta(t, NewVec4(0, 0, 1, 0), RotationX(quarter).MulVec(NewVec4(0, 1, 0, 0)), 1e-6)
	assertVec4InDelta(t, NewVec4(1, 0, 0, 0), RotationY(quarter).MulVec(NewVec4(0, 0, 1, 0)), 1e-6)

	for _, rot := range []func(float32) Mat4x4{RotationX, RotationY, RotationZ} {
		for _, angle := range []float32{0.3, -1.2, 2.5} {
			m := rot(angle).Mul(rot(-angle))
			id := Identity()
			for i := range 4 {
				assertVec4InDelta(t, id.Row(i), m.Row(i), 1e-6)
			}
			// Rotations are orthonormal.
			tr := rot(angle).Transposed().Mul(rot(angle))
			for i := range 4 {
				assertVec4InDelta(t, id.Row(i), tr.Row(i), 1e-6)
			}
		}
	}
}

func TestOrthographic(t *testing.T) {
	m := OrthographicProjection(-2, 2, -1, 1, 1, 3)
	assert.Equal(t, NewVec4(1, 1, 1, 1), m.MulVec(NewVec4(2, 1, 3, 1)))
	assert.Equal(t, NewVec4(-1, -1, -1, 1), m.MulVec(NewVec4(-2, -1, 1, 1)))
	assert.Equal(t, NewVec4(0, 0, 0, 1), m.MulVec(NewVec4(0, 0, 2, 1)))
}

func TestPerspective(t *testing.T) {
	m := PerspectiveProjection(1, math32.Pi/2, 1, 10)

	near := m.MulVec(NewVec4(0, 0, -1, 1))
	require.InDelta(t, 1, near.W, 1e-6)
	near.DivideByW()
	assert.InDelta(t, -1, near.Z, 1e-5)

	far := m.MulVec(NewVec4(0, 0, -10, 1))
	require.InDelta(t, 10, far.W, 1e-6)
	far.DivideByW()
	assert.InDelta(t, 1, far.Z, 1e-5)

	// A point on the edge of a 90 degree frustum lands on the clip boundary.
	edge := m.MulVec(NewVec4(5, 0, -5, 1))
	edge.DivideByW()
	assert.InDelta(t, 1, edge.X, 1e-5)

	wide := PerspectiveProjection(2, math32.Pi/2, 1, 10)
	assert.InDelta(t, 0.5, wide.Row(0).X, 1e-6)
}
