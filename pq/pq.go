package pq

import (
	"github.com/gostonefire/containers/errs"
	"github.com/gostonefire/containers/internal/conf"
	"github.com/gostonefire/containers/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// element - A value stored in the heap together with its priority
type element[T any] struct {
	value    T
	priority int
}

// PriorityQueue - A min-heap over a contiguous backing store. A lower priority number is served first, and
// values with equal priority come out in no particular order.
type PriorityQueue[T any] struct {
	heap  []element[T]
	count int
	log   zerolog.Logger
}

// NewPriorityQueue - Returns a pointer to a new empty PriorityQueue with the default capacity
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		heap: make([]element[T], conf.HeapDefaultCapacity),
		log:  zerolog.Nop(),
	}
}

// NewPriorityQueueWithCapacity - Returns a pointer to a new empty PriorityQueue.
//   - capacity is the initial size of the backing store, must be at least 1
//
// It returns:
//   - priorityQueue is a pointer to the created PriorityQueue
//   - err is of type errs.InvalidCapacity if capacity is too small
func NewPriorityQueueWithCapacity[T any](capacity int) (priorityQueue *PriorityQueue[T], err error) {
	if capacity < conf.HeapMinCapacity {
		err = errors.WithStack(errs.BelowMinimum(capacity, conf.HeapMinCapacity))
		return
	}

	priorityQueue = &PriorityQueue[T]{
		heap: make([]element[T], capacity),
		log:  zerolog.Nop(),
	}

	return
}

// SetLogger - Sets the logger receiving debug events on backing store resizes
func (P *PriorityQueue[T]) SetLogger(log zerolog.Logger) {
	P.log = log
}

// Push - Adds value with the given priority and sifts it up to restore the heap order.
// The capacity is doubled first if the backing store is full.
func (P *PriorityQueue[T]) Push(value T, priority int) {
	if P.count >= len(P.heap) {
		P.resize(len(P.heap) * 2)
	}

	P.heap[P.count] = element[T]{value: value, priority: priority}
	P.count++

	P.siftUp(P.count - 1)
}

// Pop - Removes and returns the value with the lowest priority number.
// The last element takes the place of the root and is sifted down. The capacity is halved when the heap
// ends up less than a quarter full.
//
// It returns:
//   - value is the removed value
//   - err is of type errs.EmptyError if the queue is empty
func (P *PriorityQueue[T]) Pop() (value T, err error) {
	if P.count == 0 {
		err = errors.WithStack(errs.Empty("priority queue"))
		return
	}

	value = P.heap[0].value

	P.count--
	P.heap[0] = P.heap[P.count]
	P.heap[P.count] = element[T]{}

	P.siftDown(0)

	if utils.ShouldShrink(P.count, len(P.heap), conf.HeapShrinkFloor, false) {
		P.resize(len(P.heap) / 2)
	}

	return
}

// Peek - Returns the value with the lowest priority number without removing it.
// It returns:
//   - value is the value at the root of the heap
//   - err is of type errs.EmptyError if the queue is empty
func (P *PriorityQueue[T]) Peek() (value T, err error) {
	if P.count == 0 {
		err = errors.WithStack(errs.Empty("priority queue"))
		return
	}

	value = P.heap[0].value

	return
}

// ShrinkToFit - Reduces the capacity to the current size, but never below the default capacity
func (P *PriorityQueue[T]) ShrinkToFit() {
	if P.count < conf.HeapDefaultCapacity {
		P.resize(conf.HeapDefaultCapacity)
		return
	}

	P.resize(P.count)
}

// Size - Returns the number of values in the queue
func (P *PriorityQueue[T]) Size() int {
	return P.count
}

// IsEmpty - Returns true if the queue holds no values
func (P *PriorityQueue[T]) IsEmpty() bool {
	return P.count == 0
}

// Capacity - Returns the current size of the backing store
func (P *PriorityQueue[T]) Capacity() int {
	return len(P.heap)
}

// Clear - Removes all values, keeping the current capacity
func (P *PriorityQueue[T]) Clear() {
	P.log.Debug().Int("size", P.count).Int("capacity", len(P.heap)).Msg("priority queue cleared")

	clear(P.heap[:P.count])
	P.count = 0
}

// Clone - Returns a deep copy with its own backing store of exactly the same capacity
func (P *PriorityQueue[T]) Clone() *PriorityQueue[T] {
	return &PriorityQueue[T]{
		heap:  utils.Resize(P.heap, P.count, len(P.heap)),
		count: P.count,
		log:   P.log,
	}
}

// Assign - Replaces the content with a deep copy of other. Assigning a queue to itself changes nothing.
func (P *PriorityQueue[T]) Assign(other *PriorityQueue[T]) {
	if P == other {
		return
	}

	P.heap = utils.Resize(other.heap, other.count, len(other.heap))
	P.count = other.count
}

// siftUp - Moves the element at index i towards the root while its priority is strictly lower than its parent's
func (P *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if P.heap[i].priority >= P.heap[p].priority {
			return
		}
		P.swap(i, p)
		i = p
	}
}

// siftDown - Moves the element at index i towards the leaves while its priority exceeds the smaller child's.
// On equal child priorities the right child is chosen.
func (P *PriorityQueue[T]) siftDown(i int) {
	for {
		l, r := left(i), right(i)
		if l >= P.count {
			return
		}

		least := l
		if r < P.count && P.heap[r].priority <= P.heap[l].priority {
			least = r
		}

		if P.heap[i].priority <= P.heap[least].priority {
			return
		}
		P.swap(i, least)
		i = least
	}
}

// resize - Moves the elements into a new backing store of the given capacity
func (P *PriorityQueue[T]) resize(newCapacity int) {
	P.log.Debug().Int("from", len(P.heap)).Int("to", newCapacity).Int("size", P.count).Msg("priority queue resized")

	P.heap = utils.Resize(P.heap, P.count, newCapacity)
}

func (P *PriorityQueue[T]) swap(i, j int) {
	P.heap[i], P.heap[j] = P.heap[j], P.heap[i]
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
