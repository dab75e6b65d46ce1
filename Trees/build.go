package Trees

import (
	"math/bits"
	"slices"

	"golang.org/x/exp/constraints"
)

// sortedSet returns an ascending copy of vs without repeated elements. vs isn't modified.
func sortedSet[T constraints.Ordered](vs []T) []T {
	s := slices.Clone(vs)
	slices.Sort(s)
	return slices.Compact(s)
}

// build a balanced tree from the ascending, duplicate-free slice s. The root
// of every index range [start, end] is s[(start+end)/2], which favors the lower
// middle element when the range has even length.
// The ranges still to be built are kept on an explicit stack together with the
// slot their root goes into, so the work never recurses.
// Time: O(n); Space: O(log n)
func build[T constraints.Ordered](s []T) (root *Node[T]) {
	if len(s) == 0 {
		return nil
	}
	type span struct {
		start, end int
		slot       **Node[T]
	}
	st := make([]span, 0, bits.Len(uint(len(s)))+1)
	st = append(st, span{0, len(s) - 1, &root})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		mid := int(uint(top.start+top.end) >> 1)
		n := &Node[T]{v: s[mid]}
		*top.slot = n
		if mid < top.end {
			st = append(st, span{mid + 1, top.end, &n.r})
		}
		if top.start < mid {
			st = append(st, span{top.start, mid - 1, &n.l})
		}
	}
	return
}

// New builds a balanced BSTree from values, which can be unordered and have
// repeated elements. values isn't modified.
// Time: O(n log n).
func New[T constraints.Ordered](values []T) *BSTree[T] {
	s := sortedSet(values)
	return &BSTree[T]{build(s), uint(len(s))}
}

// FromSorted builds a balanced BSTree using the given slice, which must be sorted
// in ascending order and mustn't contain repeated elements. This is faster than New.
// If safe==true, this function will check if the conditions are met and panic with
// InvalidSliceError if they are broken. Otherwise, it's up to the caller to ensure
// the conditions are met, otherwise the tree will be corrupt.
// Time: O(n).
func FromSorted[T constraints.Ordered](sorted []T, safe bool) *BSTree[T] {
	if safe {
		for i := 1; i < len(sorted); i++ {
			if !(sorted[i-1] < sorted[i]) {
				panic(InvalidSliceError[T]{i, sorted[i-1], sorted[i]})
			}
		}
	}
	return &BSTree[T]{build(sorted), uint(len(sorted))}
}
