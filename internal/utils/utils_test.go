//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestResize(t *testing.T) {
	t.Run("grows a slice keeping live elements", func(t *testing.T) {
		// Prepare
		a := []int{1, 2, 3, 0}

		// Execute
		b := Resize(a, 3, 8)

		// Check
		assert.Equal(t, 8, len(b), "slice has new length")
		assert.Equal(t, []int{1, 2, 3, 0, 0, 0, 0, 0}, b, "live elements copied")

		b[0] = 100
		assert.Equal(t, 1, a[0], "new slice does not share memory")
	})

	t.Run("shrinks a slice keeping live elements", func(t *testing.T) {
		// Prepare
		a := []string{"a", "b", "", "", "", "", "", ""}

		// Execute
		b := Resize(a, 2, 4)

		// Check
		assert.Equal(t, []string{"a", "b", "", ""}, b, "live elements copied")
	})

	t.Run("truncates count to new capacity", func(t *testing.T) {
		b := Resize([]int{1, 2, 3, 4}, 4, 2)
		assert.Equal(t, []int{1, 2}, b, "count truncated")
	})
}

func TestLoadFactor(t *testing.T) {
	t.Run("computes ratios", func(t *testing.T) {
		assert.Equal(t, 0.75, LoadFactor(12, 16), "three quarters")
		assert.Equal(t, 0.0, LoadFactor(0, 16), "empty")
		assert.Equal(t, 0.0, LoadFactor(3, 0), "zero capacity")
	})
}

func TestShouldShrink(t *testing.T) {
	t.Run("never shrinks at or below the floor", func(t *testing.T) {
		assert.False(t, ShouldShrink(0, 4, 4, true), "at floor")
		assert.False(t, ShouldShrink(0, 2, 4, false), "below floor")
	})

	t.Run("inclusive quarter boundary", func(t *testing.T) {
		assert.True(t, ShouldShrink(2, 8, 4, true), "count equals quarter")
		assert.True(t, ShouldShrink(1, 8, 4, true), "count below quarter")
		assert.False(t, ShouldShrink(3, 8, 4, true), "count above quarter")
	})

	t.Run("exclusive quarter boundary", func(t *testing.T) {
		assert.False(t, ShouldShrink(2, 8, 4, false), "count equals quarter")
		assert.True(t, ShouldShrink(1, 8, 4, false), "count below quarter")
	})
}
