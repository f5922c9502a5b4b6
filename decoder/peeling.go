package decoder

import (
	"github.com/katalvlaran/ufqecc/tanner"
	"github.com/katalvlaran/ufqecc/unionfind"
)

// treeEdge is one spanning-forest edge discovered by buildSpanningForest.
type treeEdge struct {
	U, V int
}

// buildSpanningForest runs the BFS described in §4.8 step 1, rooted at
// root: an edge (u, v) joins the forest iff v is unvisited and Find(u)
// == Find(v), i.e. v genuinely belongs to root's cluster. visited is
// shared across every cluster processed by a single peelingDecode call,
// matching the source's single global visited set; since clusters
// partition the vertex space, this never causes cross-cluster
// interference.
func buildSpanningForest(g *tanner.Graph, root *unionfind.ClusterNode, visited map[int]struct{}) ([]treeEdge, map[int]struct{}, error) {
	treeVertices := map[int]struct{}{root.VertexIdx: {}}
	visited[root.VertexIdx] = struct{}{}

	var edges []treeEdge
	queue := []int{root.VertexIdx}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, nil, err
		}
		for _, nbr := range nbrs {
			if _, seen := visited[nbr]; seen {
				continue
			}
			curNode, err := g.NodeOf(cur)
			if err != nil {
				return nil, nil, err
			}
			nbrNode, err := g.NodeOf(nbr)
			if err != nil {
				return nil, nil, err
			}
			if unionfind.Find(curNode) != unionfind.Find(nbrNode) {
				continue
			}

			visited[nbr] = struct{}{}
			treeVertices[nbr] = struct{}{}
			edges = append(edges, treeEdge{U: cur, V: nbr})
			queue = append(queue, nbr)
		}
	}

	return edges, treeVertices, nil
}

// computePendants reports every vertex of treeVertices that has at
// least one Tanner neighbor lying outside the tree (§4.8 step 2).
func computePendants(g *tanner.Graph, treeVertices map[int]struct{}) (map[int]struct{}, error) {
	pendants := make(map[int]struct{})
	for v := range treeVertices {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if _, inTree := treeVertices[n]; !inTree {
				pendants[v] = struct{}{}
				break
			}
		}
	}
	return pendants, nil
}

// peelSpanningForest walks edges once, in discovery order, recomputing
// pendants after each step so later edges see the latest live vertex
// set (§4.8 step 3). A tree peels completely in a single such sweep;
// if this cluster's local residual is still nonempty once every edge
// has been consumed, peeling stops rather than spin on an exhausted
// edge list.
//
// The pendant shortcut (mark an endpoint and move on without touching
// the residual) only ever fires for a data-vertex endpoint. A check
// vertex always resolves through the default branch, which marks it
// and clears its residual entry together, in the same step: a lit
// check can never be left marked-but-unresolved, so every lit check is
// guaranteed to clear by the first unmarked edge that reaches it.
func peelSpanningForest(g *tanner.Graph, edges []treeEdge, treeVertices map[int]struct{}, root *unionfind.ClusterNode, litChecks map[int]struct{}, estimate map[int]struct{}) (bool, error) {
	residual := make(map[int]struct{})
	for c := range root.CheckVertices {
		if _, lit := litChecks[c]; lit {
			residual[c] = struct{}{}
		}
	}

	pendants, err := computePendants(g, treeVertices)
	if err != nil {
		return false, err
	}

	for _, e := range edges {
		if len(residual) == 0 {
			break
		}

		uNode, err := g.NodeOf(e.U)
		if err != nil {
			return false, err
		}
		vNode, err := g.NodeOf(e.V)
		if err != nil {
			return false, err
		}
		if uNode.Marked || vNode.Marked {
			continue
		}

		switch {
		case !uNode.IsCheck && isPendant(pendants, e.U):
			// A pendant data vertex has nothing left to satisfy: every
			// check it still touches was already resolved through one of
			// its other edges. Drop it without contributing a bit.
			uNode.Marked = true
			delete(treeVertices, e.U)

		case !vNode.IsCheck && isPendant(pendants, e.V):
			vNode.Marked = true
			delete(treeVertices, e.V)

		default:
			// check is the endpoint currently in the residual syndrome
			// (§4.8), not simply whichever endpoint IsCheck: a cluster
			// can absorb an unlit check (growth doesn't stop at lit
			// checks), and such a check is never in residual. Resolving
			// by IsCheck alone would then treat that edge as satisfying
			// a check that was never outstanding, adding a spurious bit
			// to the estimate without ever clearing anything real.
			check, data, found := -1, -1, false
			switch {
			case inResidual(residual, e.U):
				check, data, found = e.U, e.V, true
			case inResidual(residual, e.V):
				check, data, found = e.V, e.U, true
			}
			if !found {
				continue
			}

			estimate[data] = struct{}{}
			uNode.Marked = true
			vNode.Marked = true
			delete(residual, check)
			delete(treeVertices, e.U)
			delete(treeVertices, e.V)
		}

		pendants, err = computePendants(g, treeVertices)
		if err != nil {
			return false, err
		}
	}

	return len(residual) == 0, nil
}

func isPendant(pendants map[int]struct{}, v int) bool {
	_, ok := pendants[v]
	return ok
}

func inResidual(residual map[int]struct{}, v int) bool {
	_, ok := residual[v]
	return ok
}

// peelingDecode is the spanning-forest inner decoder (§4.8), the
// preferred variant: build a spanning forest per cluster, then peel it.
// The returned bool reports whether every cluster fully cleared its
// local residual.
func peelingDecode(g *tanner.Graph, erasure []*unionfind.ClusterNode, litChecks map[int]struct{}) (map[int]struct{}, bool, error) {
	estimate := make(map[int]struct{})
	visited := make(map[int]struct{})
	allResolved := true

	for _, root := range erasure {
		edges, treeVertices, err := buildSpanningForest(g, root, visited)
		if err != nil {
			return nil, false, err
		}
		resolved, err := peelSpanningForest(g, edges, treeVertices, root, litChecks, estimate)
		if err != nil {
			return nil, false, err
		}
		if !resolved {
			allResolved = false
		}
	}

	return estimate, allResolved, nil
}
