package fixed

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	zero32 = NewUnitInterval[uint32](0)
	half32 = NewUnitInterval[uint32](0.5)
	one32  = NewUnitInterval[uint32](1)
)

func TestUnitIntervalRepresentation(t *testing.T) {
	assert.Equal(t, uint32(0), Unwrap(zero32))
	assert.Equal(t, uint32(math.MaxUint32/2), Unwrap(half32))
	assert.Equal(t, uint32(math.MaxUint32), Unwrap(one32))

	assert.Equal(t, UnitZero[uint32](), zero32)
	assert.Equal(t, UnitHalf[uint32](), half32)
	assert.Equal(t, UnitOne[uint32](), one32)
}

func TestUnitIntervalWidths(t *testing.T) {
	// 255 and 65535 are exact floats, so 1 lands one step below max.
	assert.Equal(t, uint8(math.MaxUint8-1), NewUnitInterval[uint8](1).Raw())
	assert.Equal(t, uint8(math.MaxUint8/2), NewUnitInterval[uint8](0.5).Raw())
	assert.Equal(t, uint16(math.MaxUint16-1), NewUnitInterval[uint16](1).Raw())
	assert.Equal(t, uint16(math.MaxUint16/2), NewUnitInterval[uint16](0.5).Raw())
	assert.Equal(t, uint64(math.MaxUint64), NewUnitInterval[uint64](1).Raw())
	assert.Equal(t, uint64(math.MaxUint64/2), NewUnitInterval[uint64](0.5).Raw())

	assert.Equal(t, float32(1), NewUnitInterval[uint64](1).Float32())
	assert.InDelta(t, 1, NewUnitInterval[uint8](1).Float32(), 1.0/255)
	assert.InDelta(t, 1, NewUnitInterval[uint16](1).Float32(), 1.0/65535)
}

func TestUnitIntervalNarrowEncoding(t *testing.T) {
	tests := []struct {
		in     float32
		want8  uint8
		want16 uint16
	}{
		{0, 0, 0},
		{0.25, 63, 16383},
		{0.5, 127, 32767},
		{0.75, 190, 49150},
		{1, 254, 65534},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want8, NewUnitInterval[uint8](tt.in).Raw(), "uint8 %v", tt.in)
		assert.Equal(t, tt.want16, NewUnitInterval[uint16](tt.in).Raw(), "uint16 %v", tt.in)
	}

	r := rand.New(rand.NewPCG(5, 6))
	for range 10000 {
		v := r.Float32()
		want := uint8(v * 255)
		if v >= 0.5 {
			want = uint8((v-0.5)*255) + math.MaxUint8/2
		}
		require.Equal(t, want, NewUnitInterval[uint8](v).Raw(), "v=%v", v)
	}
}

func TestUnitIntervalToFloat(t *testing.T) {
	assert.Equal(t, float32(0), UnitToFloat(zero32))
	assert.Equal(t, float32(1), UnitToFloat(one32))
	assert.InDelta(t, 0.5, half32.Float64(), 1e-9)
	assert.InDelta(t, 0.25, NewUnitInterval[uint32](0.25).Float32(), 1e-7)
	assert.Equal(t, "1", one32.String())
}

func TestUnitIntervalArithmetic(t *testing.T) {
	sum := half32.Add(half32)
	// max is odd, so two halves land one step below one; both read back as 1.
	assert.Equal(t, uint32(math.MaxUint32-1), sum.Raw())
	assert.Equal(t, one32.Float32(), sum.Float32())

	assert.Equal(t, half32, one32.Sub(half32).Sub(Wrap[uint32](1)))
	assert.Equal(t, zero32, half32.Sub(half32))

	// unchecked: wraps around
	assert.Equal(t, uint32(math.MaxUint32/2-1), one32.Add(half32).Raw())
	assert.Equal(t, uint32(math.MaxUint32), zero32.Sub(Wrap[uint32](1)).Raw())
}

func TestUnitIntervalClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint32
	}{
		{"negative", -0.25, 0},
		{"large", 17, math.MaxUint32},
		{"nan", float32(math.NaN()), 0},
		{"neg inf", float32(math.Inf(-1)), 0},
		{"pos inf", float32(math.Inf(1)), math.MaxUint32},
		{"quarter", 0.25, 1 << 30},
		{"three quarters", 0.75, 1<<30 + math.MaxUint32/2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUnitInterval[uint32](tt.in).Raw())
		})
	}
}

func TestUnitIntervalUnclamped(t *testing.T) {
	assert.Equal(t, uint32(1<<31), NewUnitIntervalUnclamped[uint32](0.5).Raw())
	assert.Equal(t, one32, NewUnitIntervalUnclamped[uint32](1))
	assert.Equal(t, zero32, NewUnitIntervalUnclamped[uint32](0))
	assert.Equal(t, NewUnitInterval[uint32](0.75), NewUnitIntervalUnclamped[uint32](0.75))
}

func TestUnitIntervalComparisons(t *testing.T) {
	assert.True(t, zero32.Less(half32))
	assert.True(t, zero32.Less(one32))
	assert.True(t, half32.Less(one32))
	assert.True(t, half32.Greater(zero32))
	assert.True(t, one32.Greater(half32))
	assert.True(t, one32.GreaterEqual(half32))
	assert.True(t, half32.LessEqual(one32))

	for _, x := range []Fixed32{zero32, half32, one32} {
		assert.False(t, x.Greater(x))
		assert.False(t, x.Less(x))
		assert.True(t, x.GreaterEqual(x))
		assert.True(t, x.LessEqual(x))
		assert.True(t, x.Equal(x))
		assert.Equal(t, 0, x.Compare(x))
	}
	assert.Equal(t, -1, zero32.Compare(one32))
	assert.Equal(t, 1, one32.Compare(zero32))
}

func TestUnitIntervalRawRoundTrip(t *testing.T) {
	for raw := 0; raw <= math.MaxUint8; raw++ {
		require.Equal(t, uint8(raw), Unwrap(Wrap(uint8(raw))))
	}
	r := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		raw := r.Uint32()
		require.Equal(t, raw, Unwrap(Wrap(raw)))
	}
}

func TestUnitIntervalMonotonic(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 10000 {
		a, b := r.Float32(), r.Float32()
		if a > b {
			a, b = b, a
		}
		require.True(t, NewUnitInterval[uint32](a).LessEqual(NewUnitInterval[uint32](b)), "a=%v b=%v", a, b)
		require.True(t, NewUnitInterval[uint16](a).LessEqual(NewUnitInterval[uint16](b)), "a=%v b=%v", a, b)
	}
}

func BenchmarkNewUnitInterval(b *testing.B) {
	var sink Fixed32
	for i := 0; i < b.N; i++ {
		sink = NewUnitInterval[uint32](float32(i&1023) / 1023)
	}
	_ = sink
}
