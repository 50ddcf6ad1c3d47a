package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-ml/fixed"
	"github.com/ajroetker/go-ml/vec"
)

func TestPlane(t *testing.T) {
	assert.Equal(t, NewVec4(0, 0, 0, 1), DefaultPlane().Coeffs)

	p := NewPlane(0, 0, 1, -2)
	assert.Equal(t, vec.NewVec3(0, 0, 1), p.Normal())
	assert.Equal(t, float32(3), p.Distance(vec.NewVec3(0, 0, 5)))
	assert.Equal(t, float32(-2), p.Distance(vec.NewVec3(7, -3, 0)))

	// Non-unit normals are normalized by the distance.
	assert.Equal(t, float32(3), NewPlane(0, 0, 2, -4).Distance(vec.NewVec3(0, 0, 5)))

	q := PlaneFromNormal(vec.NewVec3(0, 1, 0), 1)
	assert.Equal(t, NewVec4(0, 1, 0, 1), q.Coeffs)
	assert.Equal(t, float32(1), q.Distance(vec.ZeroVec3()))
}

func TestLine(t *testing.T) {
	l3 := CreateLine(vec.NewVec3(1, 2, 3), vec.NewVec3(3, 2, 1))
	assert.Equal(t, vec.NewVec3(2, 0, -2), l3.Dir)
	assert.Equal(t, vec.NewVec3(1, 2, 3), l3.EvaluateAt(0))
	assert.Equal(t, vec.NewVec3(3, 2, 1), l3.EvaluateAt(1))
	assert.Equal(t, vec.NewVec3(2, 2, 2), l3.EvaluateAt(0.5))
	assert.Equal(t, vec.NewVec3(-1, 2, 5), l3.EvaluateAt(-1))

	l2 := Line[vec.Vec2]{Pos: vec.NewVec2(0, 0), Dir: vec.NewVec2(1, 2)}
	assert.Equal(t, vec.NewVec2(3, 6), l2.EvaluateAt(3))

	l4 := CreateLine(OriginVec4(), NewVec4(2, 4, 6, 1))
	assert.Equal(t, NewVec4(1, 2, 3, 1), l4.EvaluateAt(0.5))

	lf := CreateLine(fixed.NewVec2[fixed.Frac8](1, 1), fixed.NewVec2[fixed.Frac8](5, 3))
	assert.Equal(t, fixed.NewVec2[fixed.Frac8](3, 2), lf.EvaluateAt(0.5))
}
