package fixed

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	precond "github.com/ajroetker/go-ml/internal/assert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleValues = []float64{0, -1, -2.9, -10.1, -14.5, 3.5, 0.5, 0.7, 10, 23.4}

func fix(v float64) Fixed {
	return FromFloat[int32, Frac16](v)
}

func TestRound(t *testing.T) {
	for _, v := range sampleValues {
		assert.Equal(t, int(math.Round(v)), Round(fix(v)), "round(%v)", v)
	}
	assert.Equal(t, -15, Round(fix(-14.5)))
	assert.Equal(t, 4, Round(fix(3.5)))
	assert.Equal(t, 1, Round(fix(0.5)))
}

func TestRoundRandomized(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1024))
	for range 10000 {
		// truncating the low bits on conversion does not move the rounded result.
		f := float64(float32(r.Float64()*2000 - 1000))
		require.Equal(t, int(math.Round(f)), Round(fix(f)), "round(%v)", f)
	}
}

func TestRoundUnsigned(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{7.75, 8},
		{1000.125, 1000},
	}
	for _, tt := range tests {
		n := FromFloat[uint32, Frac8](tt.in)
		assert.Equal(t, tt.want, Round(n), "round(%v)", tt.in)
	}
}

func TestToFloat(t *testing.T) {
	const tolerance = 1.0 / 65536
	for _, v := range sampleValues {
		assert.InDelta(t, float32(v), ToFloat(fix(v)), tolerance, "to_float(%v)", v)
	}
	assert.Equal(t, float32(-14.5), fix(-14.5).Float32())
	assert.Equal(t, 3.5, fix(3.5).Float64())
}

func TestIntegralPart(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{-1, -1},
		{-2.9, -2},
		{-10.1, -10},
		{-14.5, -14},
		{3.5, 3},
		{0.5, 0},
		{0.7, 0},
		{10, 10},
		{23.4, 23},
		{9.99998, 9},
		{-0.99998, 0},
		{32767.5, 32767},
		{-32767.5, -32767},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IntegralPart(fix(tt.in)), "integral_part(%v)", tt.in)
	}

	assert.Equal(t, 300, IntegralPart(FromFloat[uint16, Frac4](300.9)))
}

func TestTruncateUnchecked(t *testing.T) {
	fp1 := FromFloat[int32, Frac8](1.2345)
	fp2 := TruncateUnchecked(fp1, 4)

	require.NotZero(t, fp1.Raw()&0xF)
	assert.Zero(t, fp2.Raw()&0xF)
	assert.Equal(t, fp1.Raw()&^0xF, fp2.Raw())
	assert.Equal(t, fp1, TruncateUnchecked(fp1, 0))

	if precond.Enabled {
		assert.Panics(t, func() { TruncateUnchecked(fp1, -1) })
	}
}

func TestConvert(t *testing.T) {
	fp1 := FromFloat[int32, Frac4](1.2345)
	fp2 := Convert[Frac8](fp1)
	assert.Equal(t, ToFloat(fp1), ToFloat(fp2))
	assert.IsType(t, Fixed24_8{}, fp2)

	back := Convert[Frac4](fp2)
	assert.Equal(t, fp1, back)

	// coarser format rounds toward negative infinity
	assert.Equal(t, FromFloat[int32, Frac4](-1.25), Convert[Frac4](FromFloat[int32, Frac8](-1.2)))
}

func TestComparison(t *testing.T) {
	assert.Equal(t, 1, FromFloat[int32, Frac4](1.4832).Sign())
	assert.Equal(t, 1, FromFloat[int32, Frac8](1.4832).Sign())
	assert.Equal(t, 1, fix(1.4832).Sign())
	assert.Equal(t, -1, FromFloat[int32, Frac4](-10.22).Sign())
	assert.Equal(t, -1, FromFloat[int32, Frac8](-12.92).Sign())
	assert.Equal(t, -1, fix(-8289.23).Sign())
	assert.Equal(t, 0, fix(0).Sign())

	assert.True(t, fix(-1).Less(fix(1)))
	assert.Equal(t, -1, fix(-1).Compare(fix(1)))
	assert.Equal(t, 1, fix(2).Compare(fix(1)))
	assert.Equal(t, 0, fix(2).Compare(FromInt[int32, Frac16](2)))
	assert.True(t, fix(2).Equal(FromInt[int32, Frac16](2)))
}

func TestMulRange(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{300, 200, 60000},
		{-300, 200, -60000},
		{300, -200, -60000},
		{-300, -200, 60000},
	}
	for _, tt := range tests {
		p := FromInt[int32, Frac8](tt.a).Mul(FromInt[int32, Frac8](tt.b))
		assert.Equal(t, FromInt[int32, Frac8](tt.want), p, "%d*%d", tt.a, tt.b)
	}

	assert.Equal(t, fix(0.25), fix(0.5).Mul(fix(0.5)))
	assert.Equal(t, fix(-3), fix(1.5).Mul(fix(-2)))
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, fix(4), fix(1.5).Add(fix(2.5)))
	assert.Equal(t, fix(-1), fix(1.5).Sub(fix(2.5)))
	assert.Equal(t, fix(-1.5), fix(1.5).Neg())
	assert.Equal(t, -16, fix(1).Exponent())
	assert.Equal(t, int32(1<<16), FromRaw[int32, Frac16](1<<16).Raw())
	assert.Equal(t, "2.5", fix(2.5).String())
}

type tinyFormat struct{}

func (tinyFormat) Exponent() int { return -9 }

type wideFormat struct{}

func (wideFormat) Exponent() int { return 2 }

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat[int32, Frac16]())
	assert.NoError(t, ValidateFormat[uint8, Frac4]())
	assert.NoError(t, ValidateFormat[uint8, wideFormat]())

	err := ValidateFormat[uint8, tinyFormat]()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormatRange))
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 8, fe.Bits)
	assert.Equal(t, -9, fe.Exponent)

	if precond.Enabled {
		assert.Panics(t, func() { IntegralPart(FromRaw[uint8, tinyFormat](3)) })
	}
}

func TestPositiveExponent(t *testing.T) {
	n := FromInt[int32, wideFormat](12)
	assert.Equal(t, int32(3), n.Raw())
	assert.Equal(t, 12, IntegralPart(n))
	assert.Equal(t, 12, Round(n))
	assert.Equal(t, float32(12), ToFloat(n))
	assert.Equal(t, FromInt[int32, wideFormat](48), n.Mul(FromRaw[int32, wideFormat](1)))
}
