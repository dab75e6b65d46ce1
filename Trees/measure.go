package Trees

import (
	"github.com/g-m-twostay/bstree/Queues"
	"golang.org/x/exp/constraints"
)

// height of the subtree rooting at cur, counted level by level. An empty
// subtree has height -1.
// Time: O(n); Space: O(w) where w is the widest level.
func height[T constraints.Ordered](cur *Node[T]) int {
	h := -1
	if cur == nil {
		return h
	}
	q := Queues.MakeArrayQueue[*Node[T]](4)
	q.Push(cur)
	for !q.Empty() {
		h++
		for n := q.Size(); n > 0; n-- {
			cur, _ = q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return h
}

// Height [Tree.Height]. Returns (0, false) if v isn't in the tree.
// Time: O(D+m) where m is the size of the subtree of v.
func (u *BSTree[T]) Height(v T) (int, bool) {
	if n, _ := find(u.root, v); n != nil {
		return height(n), true
	}
	return 0, false
}

// Depth [Tree.Depth]. Returns (0, false) if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Depth(v T) (int, bool) {
	if n, d := find(u.root, v); n != nil {
		return d, true
	}
	return 0, false
}

// balanced walks the subtree rooting at cur in post-order. When a node is
// visited the heights of its non-empty subtrees are on top of hs, the right one
// last. The walk stops at the first node whose subtrees differ in height by more
// than 1; otherwise it returns true and the height of cur.
// Time: O(n); Space: O(D)
func balanced[T constraints.Ordered](cur *Node[T], hint int) (bool, int) {
	st := make([]*Node[T], 0, hint)
	hs := make([]int, 0, hint)
	var prev *Node[T]
	for cur != nil || len(st) > 0 {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		top := st[len(st)-1]
		if top.r != nil && top.r != prev {
			cur = top.r
			continue
		}
		st = st[:len(st)-1]
		prev = top
		lh, rh := -1, -1
		if top.r != nil {
			rh, hs = hs[len(hs)-1], hs[:len(hs)-1]
		}
		if top.l != nil {
			lh, hs = hs[len(hs)-1], hs[:len(hs)-1]
		}
		if lh-rh > 1 || rh-lh > 1 {
			return false, -1
		}
		hs = append(hs, max(lh, rh)+1)
	}
	if len(hs) == 0 {
		return true, -1
	}
	return true, hs[0]
}

// IsBalanced [Tree.IsBalanced]. An empty tree is balanced.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) IsBalanced() bool {
	b, _ := balanced(u.root, u.stackHint())
	return b
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Corrupt() bool {
	next := u.InOrder()
	prev, ok := next()
	var cnt uint
	for ok {
		cnt++
		var v T
		if v, ok = next(); ok {
			if !(prev < v) {
				return true
			}
			prev = v
		}
	}
	return cnt != u.sz
}
