package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchLevelString(t *testing.T) {
	names := map[DispatchLevel]string{
		DispatchScalar:    "scalar",
		DispatchSSE2:      "sse2",
		DispatchSSE3:      "sse3",
		DispatchSSE41:     "sse4.1",
		DispatchAVX:       "avx",
		DispatchNEON:      "neon",
		DispatchLevel(99): "unknown",
	}
	for level, name := range names {
		assert.Equal(t, name, level.String())
	}
}

func TestNoSimdEnv(t *testing.T) {
	for val, want := range map[string]bool{
		"":      false,
		"1":     true,
		"true":  true,
		"0":     false,
		"false": false,
		"yes":   true,
	} {
		t.Setenv("ML_NO_SIMD", val)
		assert.Equal(t, want, NoSimdEnv(), "ML_NO_SIMD=%q", val)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, Backend, info.Backend)
	assert.Equal(t, CurrentName(), info.Level)
	assert.GreaterOrEqual(t, info.Width, 16)
	if CurrentLevel() == DispatchScalar {
		assert.False(t, info.Accelerated)
	}
	if Backend == "scalar" {
		assert.False(t, info.HardwareLanes)
	}
	assert.Contains(t, info.String(), "backend="+Backend)
	t.Logf("%s", info)
}
