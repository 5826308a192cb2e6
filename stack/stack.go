package stack

import (
	"github.com/gostonefire/containers/errs"
	"github.com/gostonefire/containers/internal/model"
	"github.com/pkg/errors"
)

// Stack - A LIFO container over a singly linked chain whose head is the top of the stack
type Stack[T any] struct {
	top  *model.Node[T]
	size int
}

// NewStack - Returns a pointer to a new empty Stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push - Places v on top of the stack
func (S *Stack[T]) Push(v T) {
	S.top = &model.Node[T]{Value: v, Next: S.top}
	S.size++
}

// Pop - Removes and returns the top value.
// It returns:
//   - v is the removed value
//   - err is of type errs.EmptyError if the stack is empty
func (S *Stack[T]) Pop() (v T, err error) {
	if S.size == 0 {
		err = errors.WithStack(errs.Empty("stack"))
		return
	}

	node := S.top
	S.top = node.Next
	node.Next = nil
	S.size--

	v = node.Value

	return
}

// Peek - Returns the top value without removing it.
// It returns:
//   - v is the top value
//   - err is of type errs.EmptyError if the stack is empty
func (S *Stack[T]) Peek() (v T, err error) {
	if S.size == 0 {
		err = errors.WithStack(errs.Empty("stack"))
		return
	}

	v = S.top.Value

	return
}

// Size - Returns the number of values on the stack
func (S *Stack[T]) Size() int {
	return S.size
}

// IsEmpty - Returns true if the stack holds no values
func (S *Stack[T]) IsEmpty() bool {
	return S.size == 0
}

// Values - Returns the values from top to bottom
func (S *Stack[T]) Values() []T {
	return model.Values(S.top, S.size)
}

// Clear - Releases all nodes
func (S *Stack[T]) Clear() {
	S.top = nil
	S.size = 0
}

// Clone - Returns a deep copy with the same values in the same order
func (S *Stack[T]) Clone() *Stack[T] {
	top, _ := model.CloneChain(S.top)
	return &Stack[T]{top: top, size: S.size}
}

// Assign - Replaces the content with a copy of other, reusing the nodes already held by the stack.
// Assigning a stack to itself changes nothing.
func (S *Stack[T]) Assign(other *Stack[T]) {
	if S == other {
		return
	}

	S.top, _ = model.OverwriteChain(S.top, other.top)
	S.size = other.size
}
