package tanner

import (
	"errors"
	"sort"

	"github.com/katalvlaran/ufqecc/unionfind"
)

// Sentinel errors for tanner graph construction.
var (
	// ErrNegativeDimension indicates N or M was constructed as negative.
	ErrNegativeDimension = errors.New("tanner: N and M must be non-negative")

	// ErrVertexOutOfRange indicates a vertex id passed to an accessor
	// does not lie in [0, N+M).
	ErrVertexOutOfRange = errors.New("tanner: vertex id out of range")

	// ErrNotBipartite indicates AddEdge was asked to connect two vertices
	// of the same class (qubit-qubit or check-check).
	ErrNotBipartite = errors.New("tanner: edges must connect a qubit vertex to a check vertex")
)

// Graph is a bipartite Tanner graph: N qubit vertices [0,N) and M check
// vertices [N,N+M). Adjacency is stored as a sorted []int per vertex.
// Graph is read-only once its edges are added; the parallel arena of
// *unionfind.ClusterNode (one per vertex) is the only part of a Graph
// that a decode mutates.
type Graph struct {
	n, m      int
	adjacency [][]int
	nodes     []*unionfind.ClusterNode
}

// NewGraph allocates an empty Tanner graph with n qubit vertices and m
// check vertices and no edges. Both adjacency and the cluster-node arena
// are sized for N+M vertices up front.
func NewGraph(n, m int) (*Graph, error) {
	if n < 0 || m < 0 {
		return nil, ErrNegativeDimension
	}

	total := n + m
	g := &Graph{
		n:         n,
		m:         m,
		adjacency: make([][]int, total),
		nodes:     make([]*unionfind.ClusterNode, total),
	}
	for v := 0; v < total; v++ {
		g.nodes[v] = unionfind.NewClusterNode(v, v >= n)
	}

	return g, nil
}

// N returns the number of qubit (data) vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of check vertices.
func (g *Graph) M() int { return g.m }

// Size returns N+M, the total vertex count.
func (g *Graph) Size() int { return g.n + g.m }

// IsCheck reports whether vertex id names a check vertex.
func (g *Graph) IsCheck(id int) bool { return id >= g.n }

// AddEdge connects qubit vertex q ([0,N)) to check vertex c ([N,N+M) or,
// for convenience, a check index in [0,M). A value below N is read as a
// check index and a value of N or more as an absolute vertex id, so when
// M > N a check index of N or more is read as an absolute id. AddEdge is
// symmetric: it updates both adjacency lists and keeps each sorted. Parallel edges and edges added more than
// once are tolerated (the adjacency list simply gains a duplicate entry,
// which every consumer in this module treats as a no-op neighbor).
func (g *Graph) AddEdge(qubit, check int) error {
	if qubit < 0 || qubit >= g.n {
		return ErrVertexOutOfRange
	}
	// Accept either an absolute check vertex id or a bare check index.
	checkID := check
	if check < g.n {
		checkID = check + g.n
	}
	if checkID < g.n || checkID >= g.n+g.m {
		return ErrVertexOutOfRange
	}

	g.adjacency[qubit] = append(g.adjacency[qubit], checkID)
	g.adjacency[checkID] = append(g.adjacency[checkID], qubit)
	sort.Ints(g.adjacency[qubit])
	sort.Ints(g.adjacency[checkID])

	return nil
}

// Neighbors returns the adjacency set of vertex id. The returned slice is
// owned by Graph and must not be mutated by the caller.
func (g *Graph) Neighbors(id int) ([]int, error) {
	if id < 0 || id >= g.Size() {
		return nil, ErrVertexOutOfRange
	}
	return g.adjacency[id], nil
}

// NodeOf resolves a vertex id to its persistent cluster-tree node handle.
func (g *Graph) NodeOf(id int) (*unionfind.ClusterNode, error) {
	if id < 0 || id >= g.Size() {
		return nil, ErrVertexOutOfRange
	}
	return g.nodes[id], nil
}

// Nodes returns the full cluster-node arena, indexed by vertex id. Used
// by the decoder to reset scratch state at the start of every decode.
func (g *Graph) Nodes() []*unionfind.ClusterNode {
	return g.nodes
}

// ResetClusters discards all union-find structure built by a previous
// decode: every node becomes its own singleton root again, with Size 1,
// empty Children, re-seeded CheckVertices (check vertices only),
// BoundaryVertices containing just the node itself, and cleared scratch
// flags. Called once at the start of every Decode so that distinct
// decode invocations on the same Graph are independent, per the decoder
// contract's reentrancy rules.
func (g *Graph) ResetClusters() {
	for v, node := range g.nodes {
		node.Parent = nil
		node.Size = 1
		node.Children = nil
		node.CheckVertices = make(map[int]struct{})
		if node.IsCheck {
			node.CheckVertices[v] = struct{}{}
		}
		node.BoundaryVertices = map[int]struct{}{v: {}}
		node.Reset()
	}
}
