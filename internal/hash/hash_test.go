//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

type point struct {
	x, y int
}

func TestComparableHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("is deterministic for one instance", func(t *testing.T) {
		// Prepare
		h := NewComparableHashAlgorithm[string]()

		// Execute
		a := h.HashFunc("one")
		b := h.HashFunc("one")

		// Check
		assert.Equal(t, a, b, "same key same hash")
	})

	t.Run("hashes struct keys by value", func(t *testing.T) {
		h := NewComparableHashAlgorithm[point]()
		assert.Equal(t, h.HashFunc(point{1, 2}), h.HashFunc(point{1, 2}), "equal structs equal hash")
	})

	t.Run("spreads keys over buckets", func(t *testing.T) {
		// Prepare
		h := NewComparableHashAlgorithm[int]()
		buckets := make([]int, 16)

		// Execute
		for i := 0; i < 1600; i++ {
			buckets[h.HashFunc(i)%16]++
		}

		// Check
		for i, n := range buckets {
			assert.Greater(t, n, 0, "bucket %d is used", i)
		}
	})
}
