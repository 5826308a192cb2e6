//go:build unit

package queue

import (
	"github.com/gostonefire/containers/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func enqueued(values ...int) *Queue[int] {
	q := NewQueue[int]()
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

func TestQueue_EnqueueDequeue(t *testing.T) {
	t.Run("dequeues in enqueue order", func(t *testing.T) {
		// Prepare
		q := NewQueue[int]()
		for i := 0; i < 100; i++ {
			q.Enqueue(i)
		}

		// Execute and Check
		assert.Equal(t, 100, q.Size(), "size counts enqueues")
		for i := 0; i < 100; i++ {
			v, err := q.Dequeue()
			require.NoError(t, err, "dequeue value")
			assert.Equal(t, i, v, "FIFO order")
		}
		assert.True(t, q.IsEmpty(), "empty after dequeuing all")
	})

	t.Run("resets tail when becoming empty", func(t *testing.T) {
		// Prepare
		q := enqueued(1)

		// Execute
		_, err := q.Dequeue()

		// Check
		require.NoError(t, err, "dequeue value")
		assert.Nil(t, q.head, "head cleared")
		assert.Nil(t, q.tail, "tail cleared")

		q.Enqueue(2)
		q.Enqueue(3)
		assert.Equal(t, []int{2, 3}, q.Values(), "usable after becoming empty")
	})

	t.Run("fails on empty queue", func(t *testing.T) {
		// Prepare
		q := NewQueue[int]()

		// Execute
		_, err := q.Dequeue()

		// Check
		assert.ErrorIs(t, err, errs.EmptyError{}, "get correct error")
		assert.Equal(t, 0, q.Size(), "size unchanged")
	})

	t.Run("interleaves enqueue and dequeue", func(t *testing.T) {
		// Prepare
		q := enqueued(1, 2)

		// Execute
		v, err := q.Dequeue()
		require.NoError(t, err, "dequeue value")
		q.Enqueue(3)

		// Check
		assert.Equal(t, 1, v, "head dequeued")
		assert.Equal(t, []int{2, 3}, q.Values(), "remaining order")
	})
}

func TestQueue_Peek(t *testing.T) {
	t.Run("returns head without removing", func(t *testing.T) {
		// Prepare
		q := enqueued(4, 5)

		// Execute
		v, err := q.Peek()

		// Check
		require.NoError(t, err, "peek value")
		assert.Equal(t, 4, v, "head value")
		assert.Equal(t, 2, q.Size(), "size unchanged")
	})

	t.Run("fails on empty queue", func(t *testing.T) {
		_, err := NewQueue[int]().Peek()
		assert.ErrorIs(t, err, errs.EmptyError{}, "get correct error")
	})
}

func TestQueue_Clear(t *testing.T) {
	t.Run("removes all values and resets tail", func(t *testing.T) {
		// Prepare
		q := enqueued(1, 2, 3)

		// Execute
		q.Clear()

		// Check
		assert.True(t, q.IsEmpty(), "empty")
		assert.Nil(t, q.tail, "tail reset")

		q.Enqueue(9)
		v, err := q.Peek()
		require.NoError(t, err, "peek value")
		assert.Equal(t, 9, v, "usable after clear")
	})
}

func TestQueue_Clone(t *testing.T) {
	t.Run("copies values independently", func(t *testing.T) {
		// Prepare
		a := enqueued(1, 2, 3)

		// Execute
		b := a.Clone()

		// Check
		assert.Equal(t, []int{1, 2, 3}, b.Values(), "same values")
		b.Enqueue(4)
		_, err := a.Dequeue()
		require.NoError(t, err, "dequeue original")
		assert.Equal(t, []int{2, 3}, a.Values(), "original unaffected by copy")
		assert.Equal(t, []int{1, 2, 3, 4}, b.Values(), "copy unaffected by original")
	})

	t.Run("clone has a working tail", func(t *testing.T) {
		b := enqueued(1).Clone()
		b.Enqueue(2)
		assert.Equal(t, []int{1, 2}, b.Values(), "enqueue after clone")
	})
}

func TestQueue_Assign(t *testing.T) {
	tests := []struct {
		name string
		dst  []int
		src  []int
	}{
		{name: "same size", dst: []int{7, 8, 9}, src: []int{1, 2, 3}},
		{name: "larger destination", dst: []int{5, 6, 7, 8, 9}, src: []int{1, 2}},
		{name: "smaller destination", dst: []int{9}, src: []int{1, 2, 3, 4}},
		{name: "empty destination", dst: nil, src: []int{1, 2}},
		{name: "empty source", dst: []int{1, 2}, src: nil},
	}

	for _, test := range tests {
		t.Run("assigns with "+test.name, func(t *testing.T) {
			// Prepare
			dst := enqueued(test.dst...)
			src := enqueued(test.src...)

			// Execute
			dst.Assign(src)

			// Check
			assert.Equal(t, src.Values(), dst.Values(), "same values")
			assert.Equal(t, src.Size(), dst.Size(), "same size")

			dst.Enqueue(100)
			assert.Equal(t, len(test.src)+1, dst.Size(), "tail points at last node")
			assert.Equal(t, append(src.Values(), 100), dst.Values(), "enqueue lands at the tail")
			assert.Equal(t, len(test.src), src.Size(), "source unaffected")
		})
	}

	t.Run("self assignment is a no-op", func(t *testing.T) {
		for _, values := range [][]int{nil, {1}, {1, 2, 3}} {
			// Prepare
			q := enqueued(values...)
			before := q.Values()

			// Execute
			q.Assign(q)

			// Check
			assert.Equal(t, before, q.Values(), "values unchanged")
			assert.Equal(t, len(values), q.Size(), "size unchanged")
		}
	})
}
