package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecondition(t *testing.T) {
	assert.NotPanics(t, func() { Precondition(true, "never") })
	if !Enabled {
		assert.NotPanics(t, func() { Precondition(false, "disabled") })
		return
	}
	assert.PanicsWithValue(t, "precondition failed: w must be non-zero, got 0", func() {
		Precondition(false, "w must be non-zero, got %v", 0)
	})
}

func TestIndex(t *testing.T) {
	assert.NotPanics(t, func() { Index(0, 4, "row") })
	assert.NotPanics(t, func() { Index(3, 4, "row") })
	if !Enabled {
		return
	}
	assert.Panics(t, func() { Index(4, 4, "row") })
	assert.Panics(t, func() { Index(-1, 4, "row") })
}
