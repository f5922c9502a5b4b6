package decoder

import (
	"sort"
	"time"

	"github.com/katalvlaran/ufqecc/gf2"
	"github.com/katalvlaran/ufqecc/tanner"
	"github.com/katalvlaran/ufqecc/unionfind"
)

// SetCode installs code, replacing any previously installed code.
// SetCode validates that code.Graph.M() matches len(code.H).
func (d *Decoder) SetCode(code *Code) error {
	if err := validateCode(code); err != nil {
		return err
	}
	d.code = code
	return nil
}

func validateCode(code *Code) error {
	if code == nil || code.Graph == nil {
		return ErrNoCodeSet
	}
	if code.Graph.M() != len(code.H) {
		return ErrCodeShapeMismatch
	}
	return nil
}

// Decode runs one full syndrome-to-estimate decode (§4.6): it resets the
// installed code's cluster arena, runs the cluster-growth outer loop to
// produce an erasure, then runs the selected inner decoder to turn that
// erasure into a qubit-error estimate.
//
// The empty (all-zero) syndrome is not an error: Decode returns
// immediately with an all-zero, Valid estimate (§7, §8 scenario S1/6).
func (d *Decoder) Decode(syndrome gf2.Vector) (*DecodingResult, error) {
	start := time.Now()

	if d.code == nil {
		return nil, ErrNoCodeSet
	}
	g := d.code.Graph
	if len(syndrome) != g.M() {
		return nil, ErrSyndromeShapeMismatch
	}

	g.ResetClusters()

	if isZero(syndrome) {
		return &DecodingResult{
			Estimate:       make([]byte, d.code.N),
			DecodingTimeMs: elapsedMs(start),
			Valid:          true,
		}, nil
	}

	litChecks := make(map[int]struct{})
	for i, bit := range syndrome {
		if bit != 0 {
			litChecks[g.N()+i] = struct{}{}
		}
	}

	tracked, err := initialTrackedSet(g, litChecks)
	if err != nil {
		return nil, err
	}

	erasure, err := runOuterLoop(g, tracked, d.opts.growth, d.opts.rng)
	if err != nil {
		return nil, err
	}

	var estimateSet map[int]struct{}
	var allResolved bool
	switch d.opts.innerVariant {
	case InteriorPeeling:
		estimateSet, allResolved, err = erasureDecode(g, erasure, litChecks)
	default:
		estimateSet, allResolved, err = peelingDecode(g, erasure, litChecks)
	}
	if err != nil {
		return nil, err
	}

	result := buildResult(d.code.N, estimateSet, allResolved, elapsedMs(start))
	if !allResolved {
		return result, ErrInfeasibleEstimate
	}
	return result, nil
}

// initialTrackedSet resolves each lit check vertex to its (currently
// singleton) root and returns the deduplicated tracked set (§4.6 init).
func initialTrackedSet(g *tanner.Graph, litChecks map[int]struct{}) (trackedSet, error) {
	tracked := make(trackedSet, len(litChecks))
	for id := range litChecks {
		node, err := g.NodeOf(id)
		if err != nil {
			return nil, err
		}
		root := unionfind.Find(node)
		tracked[root.VertexIdx] = root
	}
	return tracked, nil
}

func buildResult(n int, estimateSet map[int]struct{}, valid bool, decodingTimeMs int64) *DecodingResult {
	estimate := make([]byte, n)
	indices := make([]int, 0, len(estimateSet))
	for v := range estimateSet {
		estimate[v] = 1
		indices = append(indices, v)
	}
	sort.Ints(indices)

	return &DecodingResult{
		Estimate:        estimate,
		EstimateIndices: indices,
		DecodingTimeMs:  decodingTimeMs,
		Valid:           valid,
	}
}

func isZero(v gf2.Vector) bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}
	return true
}

func elapsedMs(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
