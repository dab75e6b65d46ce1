package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(append([]string{"bstree"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := runCapture(t, "demo")
	require.NoError(t, err)
	want := strings.Join([]string{
		"│           ┌── 10",
		"│       ┌── 9",
		"│   ┌── 6",
		"└── 4",
		"    │   ┌── 3",
		"    └── 2",
		"        └── 1",
		"balanced: false",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestShow(t *testing.T) {
	assert := assert.New(t)

	// [1 3 5 7] splits at the lower middle, so 3 is the root and 5 roots [5 7].
	out, _, err := runCapture(t, "show", "--order", "level", "7", "3", "1", "3", "5")
	require.NoError(t, err)
	assert.Equal("│       ┌── 7\n│   ┌── 5\n└── 3\n    └── 1\nlevel-order: 3 1 5 7\nbalanced: true\n", out)

	out, _, err = runCapture(t, "show", "--insert", "9", "--insert", "10", "--insert", "11", "--order", "in", "1", "2", "3")
	require.NoError(t, err)
	assert.Contains(out, "in-order: 1 2 3 9 10 11\n")
	assert.True(strings.HasSuffix(out, "balanced: false\n"))

	out, _, err = runCapture(t, "show", "--insert", "9,10,11", "--delete", "2", "--rebalance", "--order", "pre", "1", "2", "3")
	require.NoError(t, err)
	assert.Contains(out, "pre-order: 9 1 3 10 11\n")
	assert.True(strings.HasSuffix(out, "balanced: true\n"))

	out, _, err = runCapture(t, "show")
	require.NoError(t, err)
	assert.Equal("(empty)\nbalanced: true\n", out)
}

func TestShow_NegativeKeys(t *testing.T) {
	out, _, err := runCapture(t, "show", "--order", "in", "--", "-3", "1", "-7")
	require.NoError(t, err)
	assert.Equal(t, "│   ┌── 1\n└── -3\n    └── -7\nin-order: -7 -3 1\nbalanced: true\n", out)

	// flags after the first key are taken as keys
	_, _, err = runCapture(t, "show", "1", "2", "--insert", "3")
	assert.ErrorContains(t, err, `parsing key "--insert"`)
}

func TestShow_Branches(t *testing.T) {
	out, _, err := runCapture(t, "show", "--style", "branches", "1", "2", "3")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "2", lines[0])
	assert.Contains(t, lines[1], "[L]")
	assert.Contains(t, lines[2], "[R]")
}

func TestShow_Errors(t *testing.T) {
	_, _, err := runCapture(t, "show", "1", "x")
	assert.ErrorContains(t, err, `parsing key "x"`)

	_, _, err = runCapture(t, "show", "--order", "sideways", "1")
	assert.ErrorContains(t, err, "unknown traversal order")

	_, _, err = runCapture(t, "show", "--style", "fancy", "1")
	assert.ErrorContains(t, err, "unknown style")
}

func TestLogging(t *testing.T) {
	_, logs, err := runCapture(t, "--log-level", "debug", "show", "--insert", "4", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, logs, "msg=insert key=4 added=true")
	assert.Contains(t, logs, `msg="tree summary" size=3`)

	_, logs, err = runCapture(t, "show", "1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
