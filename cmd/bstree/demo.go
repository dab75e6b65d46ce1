package main

import (
	"github.com/g-m-twostay/bstree/Trees"

	"github.com/urfave/cli/v2"
)

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "build 1..7, insert 9, delete 5, insert 10, delete 7 and print the result",
	Flags:  renderFlags,
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	logger := configLogger(cctx)

	tree := Trees.New([]int{1, 2, 3, 4, 5, 6, 7})
	steps := []struct {
		insert bool
		key    int
	}{{true, 9}, {false, 5}, {true, 10}, {false, 7}}
	for _, s := range steps {
		if s.insert {
			logger.Debug("insert", "key", s.key, "added", tree.Insert(s.key))
		} else {
			logger.Debug("delete", "key", s.key, "removed", tree.Delete(s.key))
		}
	}
	return render(cctx, logger, tree)
}
