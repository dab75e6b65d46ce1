// Package display renders a Trees.BSTree as text for debugging. It only reads
// nodes through their accessors and never modifies the tree.
package display

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// Fprint writes the subtree rooting at n to w turned on its side: the right
// subtree above the node, the left one below, each level indented by four
// columns. Nothing is written for an empty subtree.
//
//	│   ┌── 3
//	└── 2
//	    └── 1
func Fprint[T constraints.Ordered](w io.Writer, n *Trees.Node[T]) error {
	if n == nil {
		return nil
	}
	return fprint(w, n, "", true)
}

func fprint[T constraints.Ordered](w io.Writer, n *Trees.Node[T], prefix string, isLeft bool) error {
	if r := n.Right(); r != nil {
		guide := "    "
		if isLeft {
			guide = "│   "
		}
		if err := fprint(w, r, prefix+guide, false); err != nil {
			return err
		}
	}
	edge := "┌── "
	if isLeft {
		edge = "└── "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, edge, n.Value()); err != nil {
		return err
	}
	if l := n.Left(); l != nil {
		guide := "│   "
		if isLeft {
			guide = "    "
		}
		return fprint(w, l, prefix+guide, true)
	}
	return nil
}

// Branches converts the subtree rooting at n to a treeprint.Tree, top down.
// Children are tagged with L or R since a lone child would be ambiguous otherwise.
// An empty subtree gives a tree with no root value.
func Branches[T constraints.Ordered](n *Trees.Node[T]) treeprint.Tree {
	if n == nil {
		return treeprint.New()
	}
	t := treeprint.NewWithRoot(n.Value())
	addChildren(t, n)
	return t
}

func addChildren[T constraints.Ordered](t treeprint.Tree, n *Trees.Node[T]) {
	for _, c := range [2]struct {
		meta string
		n    *Trees.Node[T]
	}{{"L", n.Left()}, {"R", n.Right()}} {
		if c.n == nil {
			continue
		}
		if c.n.Left() == nil && c.n.Right() == nil {
			t.AddMetaNode(c.meta, c.n.Value())
		} else {
			addChildren(t.AddMetaBranch(c.meta, c.n.Value()), c.n)
		}
	}
}
