package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It does not
// rebalance itself: Insert and Delete keep the ordering but can leave the tree
// lopsided, inserting ascending values for example degrades it into a list.
// Call Rebalance to restore a height of O(log n).
// T is the type of values it holds. The values must be totally ordered by <,
// so floating point NaNs are not supported.
// The zero value is an empty tree ready to use. A BSTree is not safe for
// concurrent use.
type BSTree[T constraints.Ordered] struct {
	root *Node[T] //the root of the tree, nil if empty.
	sz   uint
}

// Root of the tree, nil if the tree is empty. The returned node must only be read.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Insert [Tree.Insert].
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v == cur.v {
			return false
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &Node[T]{v: v}
	u.sz++
	return true
}

// Delete [Tree.Delete]. A node with two children takes the value of its
// in-order successor, the leftmost node of its right subtree, and that
// successor is unlinked from the right subtree instead.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Delete(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v > cur.v {
			curPtr = &cur.r
		} else {
			if cur.l == nil {
				*curPtr = cur.r
			} else if cur.r == nil {
				*curPtr = cur.l
			} else {
				s := leftmost(&cur.r)
				cur.v = (*s).v
				*s = (*s).r
			}
			u.sz--
			return true
		}
	}
	return false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	n, _ := find(u.root, v)
	return n != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.Value(), p != nil
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.Value(), p != nil
}

// Values of the tree in ascending order.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	u.InOrderForEach(func(n *Node[T]) {
		vs = append(vs, n.v)
	})
	return vs
}

// Rebalance [Tree.Rebalance]. The values are collected in order, which is
// ascending, and the tree is rebuilt from them the same way New builds it.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Rebalance() {
	if u.root == nil {
		return
	}
	vs := u.Values()
	u.root, u.sz = build(vs), uint(len(vs))
}
