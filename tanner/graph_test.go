package tanner_test

import (
	"testing"

	"github.com/katalvlaran/ufqecc/tanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_Dimensions(t *testing.T) {
	g, err := tanner.NewGraph(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, g.N())
	assert.Equal(t, 3, g.M())
	assert.Equal(t, 10, g.Size())
}

func TestNewGraph_RejectsNegativeDimensions(t *testing.T) {
	_, err := tanner.NewGraph(-1, 3)
	assert.ErrorIs(t, err, tanner.ErrNegativeDimension)
}

func TestIsCheck(t *testing.T) {
	g, err := tanner.NewGraph(7, 3)
	require.NoError(t, err)
	assert.False(t, g.IsCheck(0))
	assert.False(t, g.IsCheck(6))
	assert.True(t, g.IsCheck(7))
	assert.True(t, g.IsCheck(9))
}

func TestAddEdge_SymmetricAdjacency(t *testing.T) {
	g, err := tanner.NewGraph(3, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0)) // qubit 0 <-> check 0 (bare index form)

	qNbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, qNbrs)

	cNbrs, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, cNbrs)
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := tanner.NewGraph(2, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(5, 0), tanner.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 9), tanner.ErrVertexOutOfRange)
}

func TestNodeOf_PersistsAcrossCalls(t *testing.T) {
	g, err := tanner.NewGraph(2, 1)
	require.NoError(t, err)
	n1, err := g.NodeOf(0)
	require.NoError(t, err)
	n2, err := g.NodeOf(0)
	require.NoError(t, err)
	assert.Same(t, n1, n2)
}

func TestResetClusters_RestoresSingletons(t *testing.T) {
	g, err := tanner.NewGraph(2, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(1, 0))

	qubit0, _ := g.NodeOf(0)
	qubit1, _ := g.NodeOf(1)
	check0, _ := g.NodeOf(2)

	// Simulate a decode mutating cluster structure.
	winner := check0
	winner.Parent = nil
	qubit0.Parent = winner
	winner.Children = append(winner.Children, qubit0)
	winner.Size = 2
	qubit1.Marked = true

	g.ResetClusters()

	for _, n := range g.Nodes() {
		assert.True(t, n.IsRoot())
		assert.Equal(t, 1, n.Size)
		assert.Empty(t, n.Children)
		assert.Len(t, n.BoundaryVertices, 1)
		assert.Contains(t, n.BoundaryVertices, n.VertexIdx)
		assert.False(t, n.Marked)
	}
	assert.Contains(t, check0.CheckVertices, 2)
}
