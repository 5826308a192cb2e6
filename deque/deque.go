package deque

import (
	"github.com/gostonefire/containers/errs"
	"github.com/pkg/errors"
)

// node - One element of the doubly linked chain. next is the owning forward link, prev is a back-reference
// only used to reach the previous node in constant time.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// Deque - A double ended sequence over a doubly linked chain
type Deque[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewDeque - Returns a pointer to a new empty Deque
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushFront - Inserts v before the current front
func (D *Deque[T]) PushFront(v T) {
	n := &node[T]{value: v, next: D.head}
	if D.head == nil {
		D.tail = n
	} else {
		D.head.prev = n
	}
	D.head = n
	D.size++
}

// PushBack - Inserts v after the current back
func (D *Deque[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: D.tail}
	if D.tail == nil {
		D.head = n
	} else {
		D.tail.next = n
	}
	D.tail = n
	D.size++
}

// PopFront - Removes and returns the front value.
// It returns:
//   - v is the removed value
//   - err is of type errs.EmptyError if the deque is empty
func (D *Deque[T]) PopFront() (v T, err error) {
	if D.size == 0 {
		err = errors.WithStack(errs.Empty("deque"))
		return
	}

	n := D.head
	D.head = n.next
	if D.head == nil {
		D.tail = nil
	} else {
		D.head.prev = nil
	}
	D.unlink(n)

	v = n.value

	return
}

// PopBack - Removes and returns the back value.
// It returns:
//   - v is the removed value
//   - err is of type errs.EmptyError if the deque is empty
func (D *Deque[T]) PopBack() (v T, err error) {
	if D.size == 0 {
		err = errors.WithStack(errs.Empty("deque"))
		return
	}

	n := D.tail
	D.tail = n.prev
	if D.tail == nil {
		D.head = nil
	} else {
		D.tail.next = nil
	}
	D.unlink(n)

	v = n.value

	return
}

// PeekFront - Returns the front value without removing it.
// It returns:
//   - v is the front value
//   - err is of type errs.EmptyError if the deque is empty
func (D *Deque[T]) PeekFront() (v T, err error) {
	if D.size == 0 {
		err = errors.WithStack(errs.Empty("deque"))
		return
	}

	v = D.head.value

	return
}

// PeekBack - Returns the back value without removing it.
// It returns:
//   - v is the back value
//   - err is of type errs.EmptyError if the deque is empty
func (D *Deque[T]) PeekBack() (v T, err error) {
	if D.size == 0 {
		err = errors.WithStack(errs.Empty("deque"))
		return
	}

	v = D.tail.value

	return
}

// Size - Returns the number of values in the deque
func (D *Deque[T]) Size() int {
	return D.size
}

// IsEmpty - Returns true if the deque holds no values
func (D *Deque[T]) IsEmpty() bool {
	return D.size == 0
}

// Values - Returns the values from front to back
func (D *Deque[T]) Values() []T {
	values := make([]T, 0, D.size)
	for n := D.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// ReverseValues - Returns the values from back to front, walking the back-references
func (D *Deque[T]) ReverseValues() []T {
	values := make([]T, 0, D.size)
	for n := D.tail; n != nil; n = n.prev {
		values = append(values, n.value)
	}
	return values
}

// Clear - Releases all nodes
func (D *Deque[T]) Clear() {
	D.head = nil
	D.tail = nil
	D.size = 0
}

// Clone - Returns a deep copy with the same values in the same order
func (D *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{}
	for n := D.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// Assign - Replaces the content with a deep copy of other. Assigning a deque to itself changes nothing.
func (D *Deque[T]) Assign(other *Deque[T]) {
	if D == other {
		return
	}

	D.Clear()
	for n := other.head; n != nil; n = n.next {
		D.PushBack(n.value)
	}
}

// unlink - Detaches a node already removed from the chain and decrements the size
func (D *Deque[T]) unlink(n *node[T]) {
	n.next = nil
	n.prev = nil
	D.size--
}
