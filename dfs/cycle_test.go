package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dfs"
)

// TestDetectCycles_Acyclic returns no cycles on a DAG and on nil.
func TestDetectCycles_Acyclic(t *testing.T) {
	found, cycles := dfs.DetectCycles[int](nil)
	assert.False(t, found)
	assert.Nil(t, cycles)

	found, cycles = dfs.DetectCycles(diamond(t))
	assert.False(t, found)
	assert.Empty(t, cycles)

	found, _ = dfs.DetectCycles(core.New[int](3))
	assert.False(t, found)
}

// TestDetectCycles_Triangle reports the 3-cycle in closed canonical form.
func TestDetectCycles_Triangle(t *testing.T) {
	g := core.New[int](3)
	require.NoError(t, g.AddArc(0, 1))
	require.NoError(t, g.AddArc(1, 2))
	require.NoError(t, g.AddArc(2, 0))

	found, cycles := dfs.DetectCycles(g)
	assert.True(t, found)
	assert.Equal(t, [][]int{{0, 1, 2, 0}}, cycles)
}

// TestDetectCycles_SelfLoop treats a self-loop as a length-1 cycle.
func TestDetectCycles_SelfLoop(t *testing.T) {
	g := core.New[int](2)
	require.NoError(t, g.AddArc(1, 1))

	found, cycles := dfs.DetectCycles(g)
	assert.True(t, found)
	assert.Equal(t, [][]int{{1, 1}}, cycles)
}

// TestDetectCycles_TwoCycle reports a directed 2-cycle.
func TestDetectCycles_TwoCycle(t *testing.T) {
	g := core.New[int](2)
	require.NoError(t, g.AddArc(0, 1))
	require.NoError(t, g.AddArc(1, 0))

	found, cycles := dfs.DetectCycles(g)
	assert.True(t, found)
	assert.Equal(t, [][]int{{0, 1, 0}}, cycles)
}

// TestDetectCycles_CanonicalRotation verifies that a cycle discovered
// mid-way is rotated to start at its smallest vertex.
func TestDetectCycles_CanonicalRotation(t *testing.T) {
	g := core.New[int](4)
	require.NoError(t, g.AddArc(0, 2)) // entry into the cycle
	require.NoError(t, g.AddArc(1, 2))
	require.NoError(t, g.AddArc(2, 3))
	require.NoError(t, g.AddArc(3, 1))

	found, cycles := dfs.DetectCycles(g)
	assert.True(t, found)
	assert.Equal(t, [][]int{{1, 2, 3, 1}}, cycles)
}

// TestDetectCycles_Multiple finds both loops of a figure-eight and sorts
// the output deterministically.
func TestDetectCycles_Multiple(t *testing.T) {
	g := core.New[int](3)
	require.NoError(t, g.AddArc(0, 1))
	require.NoError(t, g.AddArc(1, 0))
	require.NoError(t, g.AddArc(1, 2))
	require.NoError(t, g.AddArc(2, 1))

	found, cycles := dfs.DetectCycles(g)
	assert.True(t, found)
	assert.Equal(t, [][]int{{0, 1, 0}, {1, 2, 1}}, cycles)
}

// TestDetectCycles_RepresentativeSet pins the reporting contract on two
// elementary cycles sharing the arc 2→0: the cycle closing through an
// already-completed vertex is not listed, only the back-edge one, while
// the boolean stays exact.
func TestDetectCycles_RepresentativeSet(t *testing.T) {
	g := core.New[int](4)
	require.NoError(t, g.AddArc(0, 1))
	require.NoError(t, g.AddArc(1, 2))
	require.NoError(t, g.AddArc(2, 0))
	require.NoError(t, g.AddArc(0, 3))
	require.NoError(t, g.AddArc(3, 2))

	found, cycles := dfs.DetectCycles(g)
	assert.True(t, found)
	assert.Equal(t, [][]int{{0, 1, 2, 0}}, cycles)
}

// TestMinimalRotation exercises Booth's algorithm directly.
func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, dfs.MinimalRotation([]int{2, 3, 1}))
	assert.Equal(t, []int{0, 1, 0, 2}, dfs.MinimalRotation([]int{0, 2, 0, 1}))
	assert.Equal(t, []int{5}, dfs.MinimalRotation([]int{5}))
	assert.Nil(t, dfs.MinimalRotation(nil))

	// input must remain untouched
	in := []int{3, 1, 2}
	_ = dfs.MinimalRotation(in)
	assert.Equal(t, []int{3, 1, 2}, in)
}
