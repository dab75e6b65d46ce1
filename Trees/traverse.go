package Trees

import (
	"math/bits"

	"github.com/g-m-twostay/bstree/Queues"
	"golang.org/x/exp/constraints"
)

// The traversals below call f once on every node, in their respective orders.
// f must not be nil, a nil f panics with MissingCallbackError even if the tree
// is empty. f must not modify the tree.

func mustCallback[T any](f func(T), order string) {
	if f == nil {
		panic(MissingCallbackError{order})
	}
}

// stackHint is the initial capacity of traversal stacks, enough for a balanced tree.
func (u *BSTree[T]) stackHint() int {
	return bits.Len(u.sz) + 1
}

// LevelOrderForEach visits the root first, then every following level from left to right.
// Time: O(n); Space: O(w) where w is the widest level.
func (u *BSTree[T]) LevelOrderForEach(f func(*Node[T])) {
	mustCallback(f, "level-order")
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](u.sz>>1 + 1)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		f(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// InOrderForEach visits the left subtree, then the node, then the right subtree.
// The values are seen in ascending order.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) InOrderForEach(f func(*Node[T])) {
	mustCallback(f, "in-order")
	st := make([]*Node[T], 0, u.stackHint())
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		f(cur)
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// PreOrderForEach visits the node, then the left subtree, then the right subtree.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PreOrderForEach(f func(*Node[T])) {
	mustCallback(f, "pre-order")
	if u.root == nil {
		return
	}
	st := make([]*Node[T], 0, u.stackHint())
	st = append(st, u.root)
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		f(cur)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
}

// PostOrderForEach visits the left subtree, then the right subtree, then the node.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) PostOrderForEach(f func(*Node[T])) {
	mustCallback(f, "post-order")
	postOrder(u.root, u.stackHint(), f)
}

// postOrder walks the subtree rooting at cur with an explicit stack. prev is the
// last node visited, if it is the right child of the stack top then both
// subtrees of the top are done.
func postOrder[T constraints.Ordered](cur *Node[T], hint int, f func(*Node[T])) {
	st := make([]*Node[T], 0, hint)
	var prev *Node[T]
	for cur != nil || len(st) > 0 {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		top := st[len(st)-1]
		if top.r != nil && top.r != prev {
			cur = top.r
		} else {
			st = st[:len(st)-1]
			f(top)
			prev = top
		}
	}
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != nil; n = n.l {
			st = append(st, n)
		}
		return cur.v, true
	}
}
