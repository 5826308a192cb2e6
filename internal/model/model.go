package model

// Node - Represents one element of a singly linked chain. Each node owns the node it points to.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// CloneChain - Returns a structurally independent copy of the chain starting at head, walked from head to tail.
// It returns:
//   - newHead is the first node of the copy, nil if head is nil
//   - newTail is the last node of the copy, nil if head is nil
func CloneChain[T any](head *Node[T]) (newHead, newTail *Node[T]) {
	for n := head; n != nil; n = n.Next {
		node := &Node[T]{Value: n.Value}
		if newTail == nil {
			newHead = node
		} else {
			newTail.Next = node
		}
		newTail = node
	}

	return
}

// OverwriteChain - Makes the chain starting at dst hold the same values, in the same order, as the chain starting
// at src. Nodes already present in dst are reused and only the difference in length is allocated or dropped.
//   - dst is the head of the chain to overwrite, may be nil
//   - src is the head of the chain to copy values from, may be nil
//
// It returns:
//   - newHead is the head of the overwritten chain, nil if src is nil
//   - newTail is the last node of the overwritten chain, nil if src is nil
func OverwriteChain[T any](dst, src *Node[T]) (newHead, newTail *Node[T]) {
	if src == nil {
		return
	}
	if dst == nil {
		return CloneChain(src)
	}

	newHead = dst
	d, s := dst, src
	for {
		d.Value = s.Value
		newTail = d
		s = s.Next
		if s == nil {
			// Drop whatever is left of dst
			d.Next = nil
			return
		}
		if d.Next == nil {
			rest, restTail := CloneChain(s)
			d.Next = rest
			newTail = restTail
			return
		}
		d = d.Next
	}
}

// Values - Returns the values of the chain starting at head in head to tail order
func Values[T any](head *Node[T], size int) (values []T) {
	values = make([]T, 0, size)
	for n := head; n != nil; n = n.Next {
		values = append(values, n.Value)
	}

	return
}
