package decoder

import (
	"errors"

	"github.com/katalvlaran/ufqecc/gf2"
	"github.com/katalvlaran/ufqecc/growth"
	"github.com/katalvlaran/ufqecc/tanner"
)

// Sentinel errors for the decoder contract, per the error taxonomy:
// no_code_set, syndrome_shape_mismatch and infeasible_estimate are all
// surfaced to the caller; solver_infeasible is a gf2 package concern,
// not a decoder fault.
var (
	// ErrNoCodeSet indicates Decode was called before SetCode.
	ErrNoCodeSet = errors.New("decoder: no code set")

	// ErrSyndromeShapeMismatch indicates len(syndrome) != M.
	ErrSyndromeShapeMismatch = errors.New("decoder: syndrome length does not match code's check count")

	// ErrInfeasibleEstimate indicates the inner decoder exhausted its
	// work list without clearing the residual syndrome. The returned
	// DecodingResult is still populated (best-effort) but Valid is false.
	ErrInfeasibleEstimate = errors.New("decoder: inner decoder could not clear the residual syndrome")

	// ErrCodeShapeMismatch indicates a Code whose parity-check matrix
	// row count does not match its Tanner graph's check-vertex count.
	ErrCodeShapeMismatch = errors.New("decoder: code's parity-check matrix does not match its graph's check count")
)

// InnerVariant selects which inner decoder turns a valid (erased)
// cluster into a qubit-error estimate.
type InnerVariant int

const (
	// SpanningForestPeeling is the default and preferred inner decoder
	// (§4.8): build a spanning forest of the erasure and peel pendant
	// edges until every lit check is cleared.
	SpanningForestPeeling InnerVariant = iota
	// InteriorPeeling is the alternative inner decoder (§4.7): compute
	// each cluster's interior via BFS, then repeatedly peel an interior
	// data vertex with marked check neighbors.
	InteriorPeeling
)

// Code bundles everything SetCode needs to install a stabilizer code:
// the qubit count, its parity-check matrix over GF(2), and the Tanner
// graph view/cluster-node arena built over it. Graph.M() must equal
// len(H); SetCode validates this.
type Code struct {
	N     int
	H     gf2.Matrix
	Graph *tanner.Graph
}

// DecodingResult is the output of a single Decode call.
type DecodingResult struct {
	// Estimate is a length-N bit-vector: Estimate[i] == 1 iff qubit i is
	// part of the decoder's correction.
	Estimate []byte

	// EstimateIndices lists the set bit positions of Estimate, in
	// ascending order.
	EstimateIndices []int

	// DecodingTimeMs is the wall-clock duration of the Decode call, in
	// milliseconds.
	DecodingTimeMs int64

	// Valid is false iff the inner decoder could not clear the residual
	// syndrome (ErrInfeasibleEstimate).
	Valid bool
}

// Options configures a Decoder at construction time.
type Options struct {
	growth       growth.Strategy
	rng          growth.RNG
	innerVariant InnerVariant
}

// Option configures Options.
type Option func(*Options)

// WithGrowth sets the initial cluster-growth strategy. Default: Standard.
func WithGrowth(strategy growth.Strategy) Option {
	return func(o *Options) { o.growth = strategy }
}

// WithRNG supplies the RNG capability used by the RandomFirst strategy.
// If RandomFirst is selected without an RNG (here or later via
// SetGrowth), Decode surfaces growth.ErrRandomFirstNeedsRNG.
func WithRNG(rng growth.RNG) Option {
	return func(o *Options) { o.rng = rng }
}

// WithInnerVariant selects the inner decoder. Default: SpanningForestPeeling.
func WithInnerVariant(v InnerVariant) Option {
	return func(o *Options) { o.innerVariant = v }
}

// DefaultOptions returns an Options initialized to the safe defaults:
// Standard growth, no RNG, spanning-forest peeling.
func DefaultOptions() Options {
	return Options{
		growth:       growth.Standard,
		innerVariant: SpanningForestPeeling,
	}
}

// Decoder is the stateful entry point described by the decoder contract
// (SetCode / SetGrowth / Decode). It is not safe for concurrent Decode
// calls on the same instance.
type Decoder struct {
	opts Options
	code *Code
}

// New constructs a Decoder with DefaultOptions, customized by opts.
func New(opts ...Option) *Decoder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder{opts: o}
}

// SetGrowth replaces the active cluster-growth strategy. Default: Standard.
func (d *Decoder) SetGrowth(strategy growth.Strategy) {
	d.opts.growth = strategy
}

// SetRNG replaces the RNG capability used by RandomFirst growth.
func (d *Decoder) SetRNG(rng growth.RNG) {
	d.opts.rng = rng
}

// SetInnerVariant replaces the inner decoder used to turn a valid
// cluster into an estimate.
func (d *Decoder) SetInnerVariant(v InnerVariant) {
	d.opts.innerVariant = v
}
