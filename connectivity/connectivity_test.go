package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/connectivity"
	"github.com/katalvlaran/digraph/core"
)

// TestIsConnected_NilGraph rejects a nil graph.
func TestIsConnected_NilGraph(t *testing.T) {
	_, err := connectivity.IsConnected[int](nil)
	assert.ErrorIs(t, err, connectivity.ErrGraphNil)

	_, err = connectivity.Components[int](nil)
	assert.ErrorIs(t, err, connectivity.ErrGraphNil)
}

// TestIsConnected_Trivial covers the vacuous and single-vertex cases.
func TestIsConnected_Trivial(t *testing.T) {
	ok, err := connectivity.IsConnected(core.New[int](0))
	require.NoError(t, err)
	assert.True(t, ok, "empty graph is vacuously connected")

	ok, err = connectivity.IsConnected(core.New[int](1))
	require.NoError(t, err)
	assert.True(t, ok, "single vertex is trivially connected")
}

// TestIsConnected_Diamond: the diamond is connected under both
// interpretations, since every vertex is reachable from 0.
func TestIsConnected_Diamond(t *testing.T) {
	g := core.New[int](4)
	for _, a := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		require.NoError(t, g.AddArc(a[0], a[1]))
	}

	ok, err := connectivity.IsConnected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = connectivity.IsConnected(g, connectivity.WithDirectedReachability())
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestIsConnected_OrientationMatters: with a single arc 1→0, the graph
// is weakly connected but 1 is not reachable from 0 along arcs.
func TestIsConnected_OrientationMatters(t *testing.T) {
	g := core.New[int](2)
	require.NoError(t, g.AddArc(1, 0))

	weak, err := connectivity.IsConnected(g)
	require.NoError(t, err)
	assert.True(t, weak)

	strict, err := connectivity.IsConnected(g, connectivity.WithDirectedReachability())
	require.NoError(t, err)
	assert.False(t, strict)
}

// TestIsConnected_Disconnected: an isolated vertex breaks connectivity
// under both interpretations.
func TestIsConnected_Disconnected(t *testing.T) {
	g := core.New[int](3)
	require.NoError(t, g.AddArc(0, 1))

	ok, err := connectivity.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = connectivity.IsConnected(g, connectivity.WithDirectedReachability())
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestComponents splits a graph into its weakly-connected pieces.
func TestComponents(t *testing.T) {
	g := core.New[int](6)
	require.NoError(t, g.AddArc(0, 1))
	require.NoError(t, g.AddArc(4, 2)) // orientation is irrelevant here

	comps, err := connectivity.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 4}, {3}, {5}}, comps)
}

// TestComponents_SingleComponent returns one component for a connected graph.
func TestComponents_SingleComponent(t *testing.T) {
	g := core.New[int](3)
	require.NoError(t, g.AddArc(2, 1))
	require.NoError(t, g.AddArc(1, 0))

	comps, err := connectivity.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, comps)
}

// TestComponents_Empty yields no components.
func TestComponents_Empty(t *testing.T) {
	comps, err := connectivity.Components(core.New[int](0))
	require.NoError(t, err)
	assert.Empty(t, comps)
}
