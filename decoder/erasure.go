package decoder

import (
	"sort"

	"github.com/katalvlaran/ufqecc/tanner"
	"github.com/katalvlaran/ufqecc/unionfind"
)

// computeInterior runs the BFS described in §4.7 directly over Tanner
// adjacency, restricted to root's own cluster (Find(neighbor) == root)
// and, within that, to non-boundary vertices: a neighbor is added to the
// interior only if it is not on root's BoundaryVertices. Every such
// parent→child step is Tanner-adjacent by construction, so it is
// recorded on the parent's MarkedNeighbours, letting the peeling pass
// below find, for a given interior data vertex, which of its neighbors
// are genuinely checks it can satisfy.
//
// This does not walk root.Children: Find's path compression rewrites
// Children as clusters fuse, collapsing a cluster's union-find tree into
// a star long before the inner decoder runs. Tanner adjacency, unlike
// the union-find tree, is fixed at construction and reflects the
// cluster's actual graph structure.
func computeInterior(g *tanner.Graph, root *unionfind.ClusterNode) (map[int]struct{}, error) {
	interior := make(map[int]struct{})
	visited := map[int]struct{}{root.VertexIdx: {}}

	rootNode, err := g.NodeOf(root.VertexIdx)
	if err != nil {
		return nil, err
	}
	if _, onBoundary := root.BoundaryVertices[root.VertexIdx]; !onBoundary {
		rootNode.Marked = true
		interior[root.VertexIdx] = struct{}{}
	}

	queue := []int{root.VertexIdx}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		curNode, err := g.NodeOf(cur)
		if err != nil {
			return nil, err
		}

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}

			nNode, err := g.NodeOf(n)
			if err != nil {
				return nil, err
			}
			if unionfind.Find(nNode) != root {
				continue
			}
			if _, onBoundary := root.BoundaryVertices[n]; onBoundary {
				continue
			}

			curNode.MarkedNeighbours[n] = struct{}{}
			nNode.Marked = true
			interior[n] = struct{}{}
			queue = append(queue, n)
		}
	}

	return interior, nil
}

// peelInterior repeatedly locates an interior data vertex with marked
// (genuinely Tanner-adjacent) check neighbors and peels it, per §4.7
// step 2. Unlike the source this is grounded on, each round works off a
// snapshot of the current interior set and always makes progress toward
// the stop condition (a cleared local residual, or no further candidate
// vertex), so the loop is guaranteed to terminate — see the package's
// design notes on the interior-peeling termination fix.
func peelInterior(g *tanner.Graph, root *unionfind.ClusterNode, interior map[int]struct{}, litChecks map[int]struct{}, estimate map[int]struct{}) (bool, error) {
	residual := make(map[int]struct{})
	for c := range root.CheckVertices {
		if _, lit := litChecks[c]; lit {
			residual[c] = struct{}{}
		}
	}

	for len(residual) > 0 {
		ordered := make([]int, 0, len(interior))
		for v := range interior {
			ordered = append(ordered, v)
		}
		sort.Ints(ordered)

		candidate := -1
		for _, v := range ordered {
			node, err := g.NodeOf(v)
			if err != nil {
				return false, err
			}
			if !node.IsCheck && len(node.MarkedNeighbours) > 0 {
				candidate = v
				break
			}
		}
		if candidate == -1 {
			break
		}

		estimate[candidate] = struct{}{}
		node, err := g.NodeOf(candidate)
		if err != nil {
			return false, err
		}
		delete(interior, candidate)

		for c := range node.MarkedNeighbours {
			delete(residual, c)
			delete(interior, c)

			nbrs, err := g.Neighbors(c)
			if err != nil {
				return false, err
			}
			for _, w := range nbrs {
				delete(interior, w)
			}
		}
	}

	return len(residual) == 0, nil
}

// erasureDecode is the interior-peeling inner decoder (§4.7): for every
// valid cluster, compute its interior and peel it against the subset of
// originally-lit syndrome checks it absorbed. The returned bool reports
// whether every cluster fully cleared its local residual.
func erasureDecode(g *tanner.Graph, erasure []*unionfind.ClusterNode, litChecks map[int]struct{}) (map[int]struct{}, bool, error) {
	estimate := make(map[int]struct{})
	allResolved := true

	for _, root := range erasure {
		interior, err := computeInterior(g, root)
		if err != nil {
			return nil, false, err
		}
		resolved, err := peelInterior(g, root, interior, litChecks, estimate)
		if err != nil {
			return nil, false, err
		}
		if !resolved {
			allResolved = false
		}
	}

	return estimate, allResolved, nil
}
