package growth

import (
	"sort"

	"github.com/katalvlaran/ufqecc/unionfind"
)

// ChooseRoots selects the subset of roots that grow on this step,
// according to strategy. roots must contain only current cluster roots
// (IsRoot() == true); the caller (the decoder's outer loop) is
// responsible for resolving Find before calling this.
func ChooseRoots(roots []*unionfind.ClusterNode, strategy Strategy, rng RNG) ([]*unionfind.ClusterNode, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	switch strategy {
	case Standard:
		return roots, nil

	case SmallestFirst:
		smallest := roots[0]
		for _, r := range roots[1:] {
			if r.Size < smallest.Size ||
				(r.Size == smallest.Size && r.VertexIdx < smallest.VertexIdx) {
				smallest = r
			}
		}
		return []*unionfind.ClusterNode{smallest}, nil

	case RandomFirst:
		if rng == nil {
			return nil, ErrRandomFirstNeedsRNG
		}
		// k = len(roots) is an exclusive upper bound: Intn(k) never
		// returns k itself. This intentionally does NOT replicate the
		// original source's inclusive uniform_int_distribution(0, k).
		idx := rng.Intn(len(roots))
		return []*unionfind.ClusterNode{roots[idx]}, nil

	default:
		return nil, ErrUnknownStrategy
	}
}

// FusionEdge is a candidate edge (U, V) proposed for fusion: U ranges
// over a chosen root's BoundaryVertices, V over one of U's Tanner
// neighbors. Duplicate and self-referential pairs may appear; the
// fusion step filters them via Find.
type FusionEdge struct {
	U, V int
}

// FusionEdges enumerates the candidate fusion edges produced by growing
// every root in chosen, and records which root ids participated (the
// decoder's root-refresh phase does not use this set; it re-resolves
// every tracked root). neighbors resolves a
// vertex id to its Tanner adjacency set.
func FusionEdges(chosen []*unionfind.ClusterNode, neighbors func(int) ([]int, error)) ([]FusionEdge, map[int]struct{}, error) {
	var edges []FusionEdge
	touched := make(map[int]struct{}, len(chosen))

	for _, root := range chosen {
		touched[root.VertexIdx] = struct{}{}

		boundary := make([]int, 0, len(root.BoundaryVertices))
		for u := range root.BoundaryVertices {
			boundary = append(boundary, u)
		}
		sort.Ints(boundary)

		for _, u := range boundary {
			nbrs, err := neighbors(u)
			if err != nil {
				return nil, nil, err
			}
			for _, v := range nbrs {
				edges = append(edges, FusionEdge{U: u, V: v})
			}
		}
	}

	return edges, touched, nil
}
