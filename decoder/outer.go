package decoder

import (
	"sort"

	"github.com/katalvlaran/ufqecc/growth"
	"github.com/katalvlaran/ufqecc/tanner"
	"github.com/katalvlaran/ufqecc/unionfind"
)

// trackedSet is an order-independent collection of tracked cluster
// roots, keyed by VertexIdx so fusion's "collapse duplicates" rule (§4.3)
// is a plain map insert.
type trackedSet map[int]*unionfind.ClusterNode

// slice returns the tracked roots ordered by VertexIdx: growth.Standard
// grows every tracked root at once, in this order, so the resulting
// fusion-edge sequence (and, per §5, the final estimate bit-vector for
// standard/smallest_first) does not depend on Go's randomized map
// iteration.
func (s trackedSet) slice() []*unionfind.ClusterNode {
	out := make([]*unionfind.ClusterNode, 0, len(s))
	for _, r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VertexIdx < out[j].VertexIdx })
	return out
}

// fuse resolves every candidate edge against the current union-find
// state and merges clusters whose endpoints land on different roots.
// Duplicate and self-referential edges are naturally absorbed: once two
// endpoints share a root, later edges between them are skipped.
func fuse(g *tanner.Graph, edges []growth.FusionEdge) error {
	for _, e := range edges {
		nu, err := g.NodeOf(e.U)
		if err != nil {
			return err
		}
		nv, err := g.NodeOf(e.V)
		if err != nil {
			return err
		}
		ru := unionfind.Find(nu)
		rv := unionfind.Find(nv)
		if ru == rv {
			continue
		}

		winner := unionfind.Union(ru, rv)
		loser := ru
		if winner == ru {
			loser = rv
		}
		unionfind.MergeBoundaries(winner, loser)
	}
	return nil
}

// refreshTrackedSet rewrites tracked so that every root no longer a root
// is replaced by its current Find image (§4.3). Every tracked root is
// re-resolved, not only those touched by this round's growth step: a
// root that did not grow can still have been absorbed by fusion driven
// from a different root's boundary.
func refreshTrackedSet(tracked trackedSet) trackedSet {
	next := make(trackedSet, len(tracked))
	for _, r := range tracked {
		root := unionfind.Find(r)
		next[root.VertexIdx] = root
	}
	return next
}

// refreshBoundaries recomputes each tracked root's boundary set (§4.4): a
// vertex is dropped from the boundary once every one of its Tanner
// neighbors resolves to the same root.
func refreshBoundaries(g *tanner.Graph, tracked trackedSet) error {
	for _, root := range tracked {
		for v := range root.BoundaryVertices {
			nbrs, err := g.Neighbors(v)
			if err != nil {
				return err
			}
			stillBoundary := false
			for _, w := range nbrs {
				wn, err := g.NodeOf(w)
				if err != nil {
					return err
				}
				if unionfind.Find(wn) != root {
					stillBoundary = true
					break
				}
			}
			if !stillBoundary {
				delete(root.BoundaryVertices, v)
			}
		}
	}
	return nil
}

// isValidComponent reports whether every check vertex absorbed into root
// has at least one Tanner neighbor strictly interior to the cluster
// (§4.5). A cluster with no check vertices is trivially valid.
func isValidComponent(g *tanner.Graph, root *unionfind.ClusterNode) (bool, error) {
	for c := range root.CheckVertices {
		nbrs, err := g.Neighbors(c)
		if err != nil {
			return false, err
		}
		interior := false
		for _, w := range nbrs {
			if _, onBoundary := root.BoundaryVertices[w]; !onBoundary {
				interior = true
				break
			}
		}
		if !interior {
			return false, nil
		}
	}
	return true, nil
}

// extractValid moves every currently-valid root out of tracked and
// appends it to erasure, returning the updated erasure slice.
func extractValid(g *tanner.Graph, tracked trackedSet, erasure []*unionfind.ClusterNode) ([]*unionfind.ClusterNode, error) {
	for id, root := range tracked {
		valid, err := isValidComponent(g, root)
		if err != nil {
			return nil, err
		}
		if valid {
			erasure = append(erasure, root)
			delete(tracked, id)
		}
	}
	return erasure, nil
}

// runOuterLoop executes the cluster-growth loop (§4.6) to completion:
// growth, fusion, root-refresh, boundary-refresh, extraction, repeated
// until no tracked cluster remains. It returns the erasure — the set of
// valid cluster roots ready for the inner decoder.
func runOuterLoop(g *tanner.Graph, tracked trackedSet, strategy growth.Strategy, rng growth.RNG) ([]*unionfind.ClusterNode, error) {
	var erasure []*unionfind.ClusterNode

	for len(tracked) > 0 {
		roots := tracked.slice()
		chosen, err := growth.ChooseRoots(roots, strategy, rng)
		if err != nil {
			return nil, err
		}

		edges, _, err := growth.FusionEdges(chosen, g.Neighbors)
		if err != nil {
			return nil, err
		}

		if err := fuse(g, edges); err != nil {
			return nil, err
		}

		tracked = refreshTrackedSet(tracked)

		if err := refreshBoundaries(g, tracked); err != nil {
			return nil, err
		}

		erasure, err = extractValid(g, tracked, erasure)
		if err != nil {
			return nil, err
		}
	}

	return erasure, nil
}
