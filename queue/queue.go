package queue

import (
	"github.com/gostonefire/containers/errs"
	"github.com/gostonefire/containers/internal/model"
	"github.com/pkg/errors"
)

// Queue - A FIFO container over a singly linked chain. Values enter at the tail and leave at the head.
type Queue[T any] struct {
	head *model.Node[T]
	tail *model.Node[T]
	size int
}

// NewQueue - Returns a pointer to a new empty Queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue - Appends v at the tail
func (Q *Queue[T]) Enqueue(v T) {
	node := &model.Node[T]{Value: v}
	if Q.tail == nil {
		Q.head = node
	} else {
		Q.tail.Next = node
	}
	Q.tail = node
	Q.size++
}

// Dequeue - Removes and returns the value at the head.
// It returns:
//   - v is the removed value
//   - err is of type errs.EmptyError if the queue is empty
func (Q *Queue[T]) Dequeue() (v T, err error) {
	if Q.size == 0 {
		err = errors.WithStack(errs.Empty("queue"))
		return
	}

	node := Q.head
	Q.head = node.Next
	node.Next = nil
	if Q.head == nil {
		Q.tail = nil
	}
	Q.size--

	v = node.Value

	return
}

// Peek - Returns the value at the head without removing it.
// It returns:
//   - v is the head value
//   - err is of type errs.EmptyError if the queue is empty
func (Q *Queue[T]) Peek() (v T, err error) {
	if Q.size == 0 {
		err = errors.WithStack(errs.Empty("queue"))
		return
	}

	v = Q.head.Value

	return
}

// Size - Returns the number of values in the queue
func (Q *Queue[T]) Size() int {
	return Q.size
}

// IsEmpty - Returns true if the queue holds no values
func (Q *Queue[T]) IsEmpty() bool {
	return Q.size == 0
}

// Values - Returns the values from head to tail
func (Q *Queue[T]) Values() []T {
	return model.Values(Q.head, Q.size)
}

// Clear - Releases all nodes
func (Q *Queue[T]) Clear() {
	Q.head = nil
	Q.tail = nil
	Q.size = 0
}

// Clone - Returns a deep copy with the same values in the same order
func (Q *Queue[T]) Clone() *Queue[T] {
	head, tail := model.CloneChain(Q.head)
	return &Queue[T]{head: head, tail: tail, size: Q.size}
}

// Assign - Replaces the content with a copy of other, reusing the nodes already held by the queue.
// Assigning a queue to itself changes nothing.
func (Q *Queue[T]) Assign(other *Queue[T]) {
	if Q == other {
		return
	}

	Q.head, Q.tail = model.OverwriteChain(Q.head, other.head)
	Q.size = other.size
}
