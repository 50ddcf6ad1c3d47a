package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestF32Interop(t *testing.T) {
	v := NewVec4(1, 2, 3, 4)
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, ToF32Vec4(v))
	assert.Equal(t, v, FromF32Vec4(ToF32Vec4(v)))

	m := ToF32Mat4(Translation(1, 2, 3))
	assert.Equal(t, float32(1), m[3])
	assert.Equal(t, float32(2), m[7])
	assert.Equal(t, float32(3), m[11])
	assert.Equal(t, float32(1), m[15])

	r := RotationY(0.7)
	assert.Equal(t, r, FromF32Mat4(ToF32Mat4(r)))
}
