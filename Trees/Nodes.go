package Trees

import "golang.org/x/exp/constraints"

// Node in a BSTree. A nil *Node is an empty subtree. The accessors are safe
// to call on nil, which makes walking a tree from outside the package
// straightforward. Nodes are owned by exactly one tree; there are no parent
// pointers.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// Value held by n. Zero value if n is nil.
func (n *Node[T]) Value() T {
	if n == nil {
		return *new(T)
	}
	return n.v
}

// Left subtree of n, nil if empty.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.l
}

// Right subtree of n, nil if empty.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.r
}

// find the node holding v in the subtree rooting at cur, counting the edges
// walked on the way. Returns nil if v isn't there.
// Time: O(D); Space: O(1)
func find[T constraints.Ordered](cur *Node[T], v T) (*Node[T], int) {
	d := 0
	for cur != nil {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur, d
		} else {
			cur = cur.r
		}
		d++
	}
	return nil, -1
}

// leftmost node of the subtree rooting at *curPtr, passed by reference so that
// the caller can unlink it.
func leftmost[T constraints.Ordered](curPtr **Node[T]) **Node[T] {
	for (*curPtr).l != nil {
		curPtr = &(*curPtr).l
	}
	return curPtr
}
