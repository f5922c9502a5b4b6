package growth

import (
	"errors"
	"math/rand"
)

// ErrNoRoots indicates ChooseRoots was called with an empty root set.
var ErrNoRoots = errors.New("growth: no tracked roots to grow")

// ErrRandomFirstNeedsRNG indicates Strategy RandomFirst was selected but
// no RNG capability was supplied.
var ErrRandomFirstNeedsRNG = errors.New("growth: random_first strategy requires an RNG")

// ErrUnknownStrategy indicates an unrecognized Strategy value.
var ErrUnknownStrategy = errors.New("growth: unknown growth strategy")

// Strategy selects which cluster roots grow on a given outer-loop
// iteration.
type Strategy int

const (
	// Standard grows every tracked cluster root on each step.
	Standard Strategy = iota
	// SmallestFirst grows only the single root with the smallest
	// cluster size, breaking ties by lowest VertexIdx.
	SmallestFirst
	// RandomFirst grows one root drawn uniformly via an injected RNG.
	RandomFirst
)

// String renders a Strategy for logging/diagnostics.
func (s Strategy) String() string {
	switch s {
	case Standard:
		return "standard"
	case SmallestFirst:
		return "smallest_first"
	case RandomFirst:
		return "random_first"
	default:
		return "unknown"
	}
}

// RNG is the uniform integer generator capability required by
// RandomFirst. Intn(k) must return a value in [0, k); it is the caller's
// responsibility to never request Intn(0).
//
// RNG is an injected capability, not a process-wide singleton: every
// decoder instance is given its own (for example a *MathRand), so
// concurrent decoders never share mutable RNG state.
type RNG interface {
	Intn(k int) int
}

// defaultRNGSeed is the fixed "zero" seed used when NewMathRand is given
// seed 0, mirroring the teacher's no-time-based-source-by-default policy.
const defaultRNGSeed int64 = 1

// MathRand is the default RNG implementation, a thin deterministic
// wrapper around math/rand.Rand. It is not goroutine-safe; each decoder
// should own its own instance.
type MathRand struct {
	r *rand.Rand
}

// NewMathRand returns a MathRand seeded deterministically. seed == 0
// selects a fixed default seed rather than a time-based source, so that
// callers who want determinism by default don't have to think about it;
// callers who want true randomness should pass a seed sourced themselves
// (e.g. from crypto/rand or time.Now().UnixNano()).
func NewMathRand(seed int64) *MathRand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return &MathRand{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform value in [0, k).
func (m *MathRand) Intn(k int) int {
	return m.r.Intn(k)
}
