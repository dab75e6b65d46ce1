package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/g-m-twostay/bstree/Trees/display"

	"github.com/urfave/cli/v2"
)

var renderFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "style",
		Usage:   "how to draw the tree: classic (sideways) or branches (top down)",
		Value:   "classic",
		EnvVars: []string{"BSTREE_STYLE"},
	},
	&cli.StringFlag{
		Name:    "order",
		Usage:   "also list the keys in this traversal order: level, in, pre or post",
		EnvVars: []string{"BSTREE_ORDER"},
	},
}

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "build a balanced tree from keys, apply changes and print it. Flags must come before the keys; put -- before the keys if any is negative",
	ArgsUsage: `[--] <key>...`,
	Flags: append([]cli.Flag{
		&cli.IntSliceFlag{
			Name:    "insert",
			Usage:   "keys to insert after building, in order",
			EnvVars: []string{"BSTREE_INSERT"},
		},
		&cli.IntSliceFlag{
			Name:    "delete",
			Usage:   "keys to delete after inserting, in order",
			EnvVars: []string{"BSTREE_DELETE"},
		},
		&cli.BoolFlag{
			Name:    "rebalance",
			Usage:   "rebalance the tree after all changes",
			EnvVars: []string{"BSTREE_REBALANCE"},
		},
	}, renderFlags...),
	Action: runShow,
}

func runShow(cctx *cli.Context) error {
	logger := configLogger(cctx)

	keys := make([]int, 0, cctx.Args().Len())
	for _, a := range cctx.Args().Slice() {
		k, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("parsing key %q: %w", a, err)
		}
		keys = append(keys, k)
	}
	tree := Trees.New(keys)
	logger.Debug("built tree", "keys", len(keys), "size", tree.Size())

	for _, k := range cctx.IntSlice("insert") {
		logger.Debug("insert", "key", k, "added", tree.Insert(k))
	}
	for _, k := range cctx.IntSlice("delete") {
		logger.Debug("delete", "key", k, "removed", tree.Delete(k))
	}
	if cctx.Bool("rebalance") {
		tree.Rebalance()
		logger.Debug("rebalanced")
	}
	return render(cctx, logger, tree)
}

// render prints the tree in the requested style, the requested traversal and
// whether the tree is balanced.
func render(cctx *cli.Context, logger *slog.Logger, tree *Trees.BSTree[int]) error {
	out := cctx.App.Writer

	var walk func(func(*Trees.Node[int]))
	switch order := cctx.String("order"); order {
	case "":
	case "level":
		walk = tree.LevelOrderForEach
	case "in":
		walk = tree.InOrderForEach
	case "pre":
		walk = tree.PreOrderForEach
	case "post":
		walk = tree.PostOrderForEach
	default:
		return fmt.Errorf("unknown traversal order %q", order)
	}

	if tree.Root() == nil {
		fmt.Fprintln(out, "(empty)")
	} else {
		switch style := cctx.String("style"); style {
		case "classic":
			if err := display.Fprint(out, tree.Root()); err != nil {
				return fmt.Errorf("printing tree: %w", err)
			}
		case "branches":
			fmt.Fprint(out, display.Branches(tree.Root()).String())
		default:
			return fmt.Errorf("unknown style %q", style)
		}
	}

	if walk != nil {
		var keys []string
		walk(func(n *Trees.Node[int]) {
			keys = append(keys, strconv.Itoa(n.Value()))
		})
		fmt.Fprintf(out, "%s-order: %s\n", cctx.String("order"), strings.Join(keys, " "))
	}

	balanced := tree.IsBalanced()
	fmt.Fprintf(out, "balanced: %v\n", balanced)
	logger.Info("tree summary", "size", tree.Size(), "height", rootHeight(tree), "balanced", balanced)
	return nil
}

func rootHeight(tree *Trees.BSTree[int]) int {
	if tree.Root() == nil {
		return -1
	}
	h, _ := tree.Height(tree.Root().Value())
	return h
}
