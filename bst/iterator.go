package bst

import (
	"github.com/gostonefire/containers/errs"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Iterator - Is used to iterate over the entries of a tree one by one in ascending key order.
// The tree must not be modified while iterating.
type Iterator[K constraints.Ordered, V any] struct {
	stack []*node[K, V]
}

// Iterator - Returns a pointer to a new Iterator positioned before the smallest key
func (B *BST[K, V]) Iterator() *Iterator[K, V] {
	iter := &Iterator[K, V]{}
	iter.pushLeft(B.root)
	return iter
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (I *Iterator[K, V]) HasNext() bool {
	return len(I.stack) > 0
}

// Next - Returns the next entry.
// It returns:
//   - key is the key of the entry
//   - value is the value of the entry
//   - err is of type errs.EmptyError if there are no more entries when calling this function
func (I *Iterator[K, V]) Next() (key K, value V, err error) {
	if len(I.stack) == 0 {
		err = errors.WithStack(errs.Empty("iterator"))
		return
	}

	n := I.stack[len(I.stack)-1]
	I.stack = I.stack[:len(I.stack)-1]
	I.pushLeft(n.right)

	key = n.key
	value = n.value

	return
}

// pushLeft - Stacks n and every node along its chain of left children
func (I *Iterator[K, V]) pushLeft(n *node[K, V]) {
	for ; n != nil; n = n.left {
		I.stack = append(I.stack, n)
	}
}
