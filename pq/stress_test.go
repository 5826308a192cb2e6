//go:build stress

package pq

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"sort"
	"testing"
)

func TestPriorityQueue_Stress(t *testing.T) {
	t.Run("heap sorts a million priorities", func(t *testing.T) {
		// Prepare
		p := NewPriorityQueue[int]()
		priorities := make([]int, 1000000)
		for i := range priorities {
			priorities[i] = rand.Int()
			p.Push(priorities[i], priorities[i])
		}
		sort.Ints(priorities)

		// Execute and Check
		for i, expected := range priorities {
			v, err := p.Pop()
			require.NoError(t, err, "pop value %d", i)
			if v != expected {
				assert.Equal(t, expected, v, "sorted order at %d", i)
				return
			}
		}
		assert.True(t, p.IsEmpty(), "drained")
		assert.Equal(t, 4, p.Capacity(), "shrunk back to the floor")
	})
}
