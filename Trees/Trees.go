package Trees

import "fmt"

// Tree represents a binary search tree over unique keys of an ordered type.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false bool), and x should not be used.
// None of the methods rebalance the tree unless noted otherwise. Every
// method is implemented iteratively, so a degenerate tree costs heap
// memory proportional to its height rather than call stack.
type Tree[T any] interface {
	//Insert v to the Tree. Returns false if v was already there, in which
	//case the tree is unchanged.
	Insert(v T) bool
	//Delete v from the Tree. Returns false if v wasn't there, in which case
	//the tree is unchanged.
	Delete(v T) bool
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Height of the node holding v: the number of edges on the longest
	//path from it down to a leaf. A leaf has height 0.
	Height(v T) (int, bool)
	//Depth of the node holding v: the number of edges from the root to it.
	Depth(v T) (int, bool)
	//IsBalanced reports whether the heights of the two subtrees of every
	//node differ by at most 1.
	IsBalanced() bool
	//Rebalance rebuilds the whole tree into a balanced shape holding the
	//same elements.
	Rebalance()
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in ascending order.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether some node violates the ordering of a binary
	//search tree. This is to be distinguished from whether the tree is
	//balanced or not.
	Corrupt() bool
}

// MissingCallbackError is the panic value of a traversal given a nil callback.
type MissingCallbackError struct {
	Order string // name of the traversal that was called
}

func (e MissingCallbackError) Error() string {
	return fmt.Sprintf("%s traversal: a callback function is required", e.Order)
}

// InvalidSliceError is the panic value of FromSorted when the slice isn't
// strictly ascending. Prev and Next are the first adjacent pair out of order.
type InvalidSliceError[T any] struct {
	Index      int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d: %v is followed by %v", e.Index, e.Prev, e.Next)
}
