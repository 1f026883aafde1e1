// Package dijkstra_test contains unit tests for the unit-weight search:
// validation, distances, tie-breaking, unreachable vertices and path
// reconstruction.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smulvey2/Graph/core"
	"github.com/smulvey2/Graph/dijkstra"
)

// build creates a graph from vertex names (insertion order) and edge pairs.
func build(t *testing.T, vertices []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		_, err := g.AddVertex(v)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	_, err := dijkstra.Search(nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := core.NewGraph()
	_, err = dijkstra.Search(g, "")
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Search(g, "A")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestSearch_Chain(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
	)
	res, err := dijkstra.Search(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, 1, 2}, res.Prev)
	assert.Equal(t, []bool{true, true, true, true}, res.Visited)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.PathTo("D"))
	assert.Equal(t, 3, res.Distance("D"))
}

// TestSearch_TieBreak verifies equal-distance vertices pop in word order,
// so the lexicographically smaller middle vertex becomes the predecessor.
func TestSearch_TieBreak(t *testing.T) {
	// Square S—Y—T and S—X—T; X < Y even though Y was inserted first.
	g := build(t,
		[]string{"S", "Y", "X", "T"},
		[][2]string{{"S", "Y"}, {"S", "X"}, {"Y", "T"}, {"X", "T"}},
	)
	res, err := dijkstra.Search(g, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "T"}, res.PathTo("T"))

	// Deterministic across reruns.
	for i := 0; i < 5; i++ {
		again, _ := dijkstra.Search(g, "S")
		assert.Equal(t, res.Prev, again.Prev)
	}
}

// TestSearch_Unreachable keeps defaults for vertices in another component.
func TestSearch_Unreachable(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "Z"},
		[][2]string{{"A", "B"}},
	)
	res, err := dijkstra.Search(g, "A")
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Infinity, res.Dist[2])
	assert.Equal(t, dijkstra.NoPredecessor, res.Prev[2])
	assert.False(t, res.Visited[2])
	assert.Empty(t, res.PathTo("Z"))
	assert.NotNil(t, res.PathTo("Z"))
	assert.Equal(t, dijkstra.Infinity, res.Distance("Z"))
	assert.Equal(t, dijkstra.Infinity, res.Distance("MISSING"))
}

// TestPathTo_SourceIsNoPath treats the trivial single-vertex path as empty.
func TestPathTo_SourceIsNoPath(t *testing.T) {
	g := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	res, err := dijkstra.Search(g, "A")
	require.NoError(t, err)

	assert.Empty(t, res.PathTo("A"))
	assert.Empty(t, res.PathTo("NOPE"))
	assert.Empty(t, res.PathToIndex(-1))
	assert.Empty(t, res.PathToIndex(99))
	assert.Equal(t, 0, res.Distance("A"))
}

// TestSearch_ShortcutWins checks a longer discovered route is replaced.
func TestSearch_ShortcutWins(t *testing.T) {
	// A—B—C—D plus A—D.
	g := build(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "D"}},
	)
	res, err := dijkstra.Search(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Dist[2])
	assert.Equal(t, []string{"A", "D"}, res.PathTo("D"))
	// C is reached at 2 from both B and D; B pops first.
	assert.Equal(t, []string{"A", "B", "C"}, res.PathTo("C"))
}

// TestSearchInto_Reset verifies reused state carries nothing over.
func TestSearchInto_Reset(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "C", "Z"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
	res, err := dijkstra.Search(g, "A")
	require.NoError(t, err)

	idxZ, _ := g.Index("Z")
	dijkstra.SearchInto(res, idxZ)
	assert.Equal(t, idxZ, res.Source)
	assert.Equal(t, []bool{false, false, false, true}, res.Visited)
	assert.Equal(t, dijkstra.Infinity, res.Dist[0])
	assert.Empty(t, res.PathTo("A"))

	dijkstra.SearchInto(res, 2)
	assert.Equal(t, []string{"C", "B", "A"}, res.PathTo("A"))
}

// TestSearch_Tombstone ignores removed arena slots.
func TestSearch_Tombstone(t *testing.T) {
	g := build(t,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
	_, err := g.RemoveVertex("B")
	require.NoError(t, err)

	res, err := dijkstra.Search(g, "A")
	require.NoError(t, err)
	assert.Len(t, res.Dist, 3)
	assert.Empty(t, res.PathTo("C"))
	assert.False(t, res.Visited[1])
}
