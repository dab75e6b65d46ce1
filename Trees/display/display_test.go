package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, Trees.New([]int{1, 2, 3}).Root()))
	assert.Equal("│   ┌── 3\n└── 2\n    └── 1\n", buf.String())

	buf.Reset()
	require.NoError(t, Fprint(&buf, Trees.New([]int{1, 2, 3, 4, 5, 6, 7}).Root()))
	want := strings.Join([]string{
		"│       ┌── 7",
		"│   ┌── 6",
		"│   │   └── 5",
		"└── 4",
		"    │   ┌── 3",
		"    └── 2",
		"        └── 1",
	}, "\n") + "\n"
	assert.Equal(want, buf.String())

	buf.Reset()
	require.NoError(t, Fprint(&buf, new(Trees.BSTree[int]).Root()))
	assert.Empty(buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestFprint_WriteError(t *testing.T) {
	assert.Error(t, Fprint(failWriter{}, Trees.New([]int{1, 2, 3}).Root()))
}

func TestBranches(t *testing.T) {
	assert := assert.New(t)

	tree := Trees.New([]int{1, 2, 3, 4})
	tree.Insert(5)
	lines := strings.Split(strings.TrimSpace(Branches(tree.Root()).String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal("2", lines[0])
	for i, want := range []struct{ meta, v string }{{"L", "1"}, {"R", "3"}, {"R", "4"}, {"R", "5"}} {
		line := lines[i+1]
		assert.Contains(line, "["+want.meta+"]", "line %d", i+1)
		assert.True(strings.HasSuffix(line, " "+want.v), "line %q", line)
	}
}
