package bst

import (
	"github.com/gostonefire/containers/errs"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// node - One entry of the tree. A node owns both of its children.
type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// BST - An ordered key to value map over an unbalanced binary search tree.
// Every key in a node's left subtree is less than the node's key, and every key in its right subtree is greater.
// No rebalancing is done, so the depth of the tree depends on insertion order only.
type BST[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// NewBST - Returns a pointer to a new empty BST
func NewBST[K constraints.Ordered, V any]() *BST[K, V] {
	return &BST[K, V]{}
}

// Put - Inserts value under key, or overwrites the value if key is already present
func (B *BST[K, V]) Put(key K, value V) {
	if B.root == nil {
		B.root = &node[K, V]{key: key, value: value}
		B.size++
		return
	}

	n := B.root
	for {
		switch {
		case key == n.key:
			n.value = value
			return
		case key < n.key:
			if n.left == nil {
				n.left = &node[K, V]{key: key, value: value}
				B.size++
				return
			}
			n = n.left
		default:
			if n.right == nil {
				n.right = &node[K, V]{key: key, value: value}
				B.size++
				return
			}
			n = n.right
		}
	}
}

// Get - Returns the value stored under key.
// It returns:
//   - value is the value stored under key
//   - err is of type errs.KeyNotFound if key is not present
func (B *BST[K, V]) Get(key K) (value V, err error) {
	n := B.find(key)
	if n == nil {
		err = errors.Wrapf(errs.KeyNotFound{}, "key %v", key)
		return
	}

	value = n.value

	return
}

// Contains - Returns true if key is present
func (B *BST[K, V]) Contains(key K) bool {
	return B.find(key) != nil
}

// Remove - Removes key and its value from the tree.
// A node with two children takes over the key and value of its in-order successor, and the successor node,
// which never has a left child, is unlinked instead.
//
// It returns:
//   - err is of type errs.KeyNotFound if key is not present, in which case the tree is left untouched
func (B *BST[K, V]) Remove(key K) (err error) {
	var parent *node[K, V]
	n := B.root
	for n != nil && key != n.key {
		parent = n
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		err = errors.Wrapf(errs.KeyNotFound{}, "key %v", key)
		return
	}

	B.size--

	switch {
	case n.right == nil:
		B.replaceChild(parent, n, n.left)
	case n.left == nil:
		B.replaceChild(parent, n, n.right)
	default:
		succParent := n
		succ := n.right
		for succ.left != nil {
			succParent = succ
			succ = succ.left
		}

		n.key = succ.key
		n.value = succ.value

		if succParent == n {
			succParent.right = succ.right
		} else {
			succParent.left = succ.right
		}
		succ.right = nil
	}

	return
}

// Size - Returns the number of keys in the tree
func (B *BST[K, V]) Size() int {
	return B.size
}

// IsEmpty - Returns true if the tree holds no keys
func (B *BST[K, V]) IsEmpty() bool {
	return B.size == 0
}

// Keys - Returns all keys in ascending order
func (B *BST[K, V]) Keys() []K {
	keys := make([]K, 0, B.size)
	iter := B.Iterator()
	for iter.HasNext() {
		k, _, _ := iter.Next()
		keys = append(keys, k)
	}
	return keys
}

// Height - Returns the number of nodes on the longest path from the root to a leaf, zero for an empty tree
func (B *BST[K, V]) Height() int {
	if B.root == nil {
		return 0
	}

	type level struct {
		n     *node[K, V]
		depth int
	}

	height := 0
	stack := []level{{n: B.root, depth: 1}}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l.depth > height {
			height = l.depth
		}
		if l.n.left != nil {
			stack = append(stack, level{n: l.n.left, depth: l.depth + 1})
		}
		if l.n.right != nil {
			stack = append(stack, level{n: l.n.right, depth: l.depth + 1})
		}
	}

	return height
}

// Clear - Releases all nodes
func (B *BST[K, V]) Clear() {
	B.root = nil
	B.size = 0
}

// Clone - Returns a deep copy with the same keys, values and tree shape
func (B *BST[K, V]) Clone() *BST[K, V] {
	return &BST[K, V]{root: cloneTree(B.root), size: B.size}
}

// Assign - Replaces the content with a deep copy of other. Assigning a tree to itself changes nothing.
func (B *BST[K, V]) Assign(other *BST[K, V]) {
	if B == other {
		return
	}

	B.root = cloneTree(other.root)
	B.size = other.size
}

// find - Returns the node holding key, or nil
func (B *BST[K, V]) find(key K) *node[K, V] {
	n := B.root
	for n != nil {
		switch {
		case key == n.key:
			return n
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// replaceChild - Puts child where n used to be, either under parent or as the root when parent is nil
func (B *BST[K, V]) replaceChild(parent, n, child *node[K, V]) {
	switch {
	case parent == nil:
		B.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
	n.left = nil
	n.right = nil
}

// cloneTree - Copies the tree rooted at src walking it in pre-order, linking every copied node to its
// already copied parent
func cloneTree[K constraints.Ordered, V any](src *node[K, V]) *node[K, V] {
	if src == nil {
		return nil
	}

	type pair struct {
		src, dst *node[K, V]
	}

	root := &node[K, V]{key: src.key, value: src.value}
	stack := []pair{{src: src, dst: root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.src.right != nil {
			p.dst.right = &node[K, V]{key: p.src.right.key, value: p.src.right.value}
			stack = append(stack, pair{src: p.src.right, dst: p.dst.right})
		}
		if p.src.left != nil {
			p.dst.left = &node[K, V]{key: p.src.left.key, value: p.src.left.value}
			stack = append(stack, pair{src: p.src.left, dst: p.dst.left})
		}
	}

	return root
}
