package dynarray

import (
	"github.com/gostonefire/containers/errs"
	"github.com/gostonefire/containers/internal/conf"
	"github.com/gostonefire/containers/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DynamicArray - A contiguous, indexed sequence that doubles its backing store when a push would overflow it
// and halves it when a pop leaves it at most a quarter full.
type DynamicArray[T any] struct {
	data  []T
	count int
	log   zerolog.Logger
}

// NewDynamicArray - Returns a pointer to a new empty DynamicArray with the default capacity
func NewDynamicArray[T any]() *DynamicArray[T] {
	return &DynamicArray[T]{
		data: make([]T, conf.ArrayDefaultCapacity),
		log:  zerolog.Nop(),
	}
}

// NewDynamicArrayWithCapacity - Returns a pointer to a new empty DynamicArray.
//   - capacity is the initial size of the backing store, must be at least 1
//
// It returns:
//   - dynamicArray is a pointer to the created DynamicArray
//   - err is of type errs.InvalidCapacity if capacity is too small
func NewDynamicArrayWithCapacity[T any](capacity int) (dynamicArray *DynamicArray[T], err error) {
	if capacity < conf.ArrayMinCapacity {
		err = errors.WithStack(errs.BelowMinimum(capacity, conf.ArrayMinCapacity))
		return
	}

	dynamicArray = &DynamicArray[T]{
		data: make([]T, capacity),
		log:  zerolog.Nop(),
	}

	return
}

// SetLogger - Sets the logger receiving debug events on backing store resizes
func (D *DynamicArray[T]) SetLogger(log zerolog.Logger) {
	D.log = log
}

// Push - Appends v at the end, doubling the capacity first if the backing store is full
func (D *DynamicArray[T]) Push(v T) {
	if D.count >= len(D.data) {
		D.resize(len(D.data) * 2)
	}

	D.data[D.count] = v
	D.count++
}

// Pop - Removes and returns the last element.
// It returns:
//   - v is the removed element
//   - err is of type errs.EmptyError if the array holds no elements
func (D *DynamicArray[T]) Pop() (v T, err error) {
	if D.count == 0 {
		err = errors.WithStack(errs.Empty("dynamic array"))
		return
	}

	D.count--
	v = D.data[D.count]
	var zero T
	D.data[D.count] = zero

	if utils.ShouldShrink(D.count, len(D.data), conf.ArrayShrinkFloor, true) {
		D.resize(len(D.data) / 2)
	}

	return
}

// Get - Returns the element at index i.
//   - i is the index, must be within [0, Size())
//
// It returns:
//   - v is the element at index i
//   - err is of type errs.IndexOutOfRange if i is outside [0, Size())
func (D *DynamicArray[T]) Get(i int) (v T, err error) {
	if err = D.checkIndex(i); err != nil {
		return
	}

	v = D.data[i]

	return
}

// Set - Replaces the element at index i with v.
//   - i is the index, must be within [0, Size())
//   - v is the new element
//
// It returns:
//   - err is of type errs.IndexOutOfRange if i is outside [0, Size())
func (D *DynamicArray[T]) Set(i int, v T) (err error) {
	if err = D.checkIndex(i); err != nil {
		return
	}

	D.data[i] = v

	return
}

// Size - Returns the number of elements
func (D *DynamicArray[T]) Size() int {
	return D.count
}

// IsEmpty - Returns true if there are no elements
func (D *DynamicArray[T]) IsEmpty() bool {
	return D.count == 0
}

// Capacity - Returns the current size of the backing store
func (D *DynamicArray[T]) Capacity() int {
	return len(D.data)
}

// Values - Returns a copy of the elements in index order
func (D *DynamicArray[T]) Values() []T {
	values := make([]T, D.count)
	_ = copy(values, D.data[:D.count])
	return values
}

// Clear - Removes all elements and releases the backing store, replacing it with one of default capacity
func (D *DynamicArray[T]) Clear() {
	D.log.Debug().Int("size", D.count).Int("capacity", len(D.data)).Msg("dynamic array cleared")

	D.data = make([]T, conf.ArrayDefaultCapacity)
	D.count = 0
}

// Clone - Returns a deep copy with its own backing store of the same capacity
func (D *DynamicArray[T]) Clone() *DynamicArray[T] {
	return &DynamicArray[T]{
		data:  utils.Resize(D.data, D.count, len(D.data)),
		count: D.count,
		log:   D.log,
	}
}

// Assign - Replaces the content with a deep copy of other. Assigning an array to itself changes nothing.
func (D *DynamicArray[T]) Assign(other *DynamicArray[T]) {
	if D == other {
		return
	}

	D.data = utils.Resize(other.data, other.count, len(other.data))
	D.count = other.count
}

// checkIndex - Returns an errs.IndexOutOfRange if i is outside [0, count)
func (D *DynamicArray[T]) checkIndex(i int) error {
	if i < 0 || i >= D.count {
		return errors.Wrapf(errs.IndexOutOfRange{}, "index %d, size %d", i, D.count)
	}
	return nil
}

// resize - Moves the elements into a new backing store of the given capacity
func (D *DynamicArray[T]) resize(newCapacity int) {
	D.log.Debug().Int("from", len(D.data)).Int("to", newCapacity).Int("size", D.count).Msg("dynamic array resized")

	D.data = utils.Resize(D.data, D.count, newCapacity)
}
