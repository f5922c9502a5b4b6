package decoder_test

import (
	"testing"

	"github.com/katalvlaran/ufqecc/decoder"
	"github.com/katalvlaran/ufqecc/gf2"
	"github.com/katalvlaran/ufqecc/growth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_NoCodeSet(t *testing.T) {
	d := decoder.New()
	_, err := d.Decode(gf2.Vector{0, 0, 0})
	assert.ErrorIs(t, err, decoder.ErrNoCodeSet)
}

func TestDecode_SyndromeShapeMismatch(t *testing.T) {
	d := decoder.New()
	require.NoError(t, d.SetCode(buildCode(t, steaneH())))

	_, err := d.Decode(gf2.Vector{0, 0})
	assert.ErrorIs(t, err, decoder.ErrSyndromeShapeMismatch)
}

func TestSetCode_RejectsShapeMismatch(t *testing.T) {
	d := decoder.New()
	code := buildCode(t, steaneH())
	code.H = gf2.Matrix{{1, 0, 0, 0, 0, 0, 0}} // 1 row, but graph has 3 check vertices
	assert.ErrorIs(t, d.SetCode(code), decoder.ErrCodeShapeMismatch)
}

func TestDecode_EmptySyndromeIdentity(t *testing.T) {
	d := decoder.New()
	require.NoError(t, d.SetCode(buildCode(t, steaneH())))

	result, err := d.Decode(gf2.Vector{0, 0, 0})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, make([]byte, 7), result.Estimate)
	assert.Empty(t, result.EstimateIndices)
	assert.GreaterOrEqual(t, result.DecodingTimeMs, int64(0))
}

func TestDecode_ReentrantAcrossCalls(t *testing.T) {
	d := decoder.New()
	require.NoError(t, d.SetCode(buildCode(t, steaneH())))

	first, err := d.Decode(gf2.Vector{1, 0, 0})
	require.NoError(t, err)
	second, err := d.Decode(gf2.Vector{1, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, first.Estimate, second.Estimate)
}

// A single lit check (§4.7's easy case: the whole cluster absorbs around
// one check with no competing claims on its Tanner neighbors) is where
// both inner decoders are expected to agree; see the package's design
// notes on InteriorPeeling's narrower domain of guaranteed success.
func TestDecode_BothInnerVariantsAgreeOnRoundTrip(t *testing.T) {
	h := steaneH()
	syndrome := gf2.Vector{1, 0, 0}

	for _, variant := range []decoder.InnerVariant{decoder.SpanningForestPeeling, decoder.InteriorPeeling} {
		d := decoder.New(decoder.WithInnerVariant(variant))
		require.NoError(t, d.SetCode(buildCode(t, h)))

		result, err := d.Decode(syndrome)
		require.NoError(t, err)
		require.True(t, result.Valid)

		reproduced, err := gf2.MultiplyVector(h, gf2.Vector(result.Estimate))
		require.NoError(t, err)
		assert.Equal(t, gf2.Vector(syndrome), reproduced)
	}
}

// InteriorPeeling pins an exact estimate on the Steane no-check and
// first-check-only syndromes. It does not resolve every single-check
// cluster, nor multi-check clusters whose checks share a neighbor (see
// DESIGN.md).
func TestDecode_InteriorPeelingSingleCheckScenarios(t *testing.T) {
	h := steaneH()

	tests := []struct {
		name         string
		syndrome     gf2.Vector
		wantEstimate gf2.Vector
	}{
		{"no_checks", gf2.Vector{0, 0, 0}, gf2.Vector{0, 0, 0, 0, 0, 0, 0}},
		{"first_check_only", gf2.Vector{1, 0, 0}, gf2.Vector{0, 0, 0, 1, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decoder.New(decoder.WithInnerVariant(decoder.InteriorPeeling))
			require.NoError(t, d.SetCode(buildCode(t, h)))

			result, err := d.Decode(tt.syndrome)
			require.NoError(t, err)
			require.True(t, result.Valid)
			assert.Equal(t, []byte(tt.wantEstimate), result.Estimate)
		})
	}
}

func TestDecode_SmallestFirstGrowthProducesValidEstimate(t *testing.T) {
	d := decoder.New(decoder.WithGrowth(growth.SmallestFirst))
	require.NoError(t, d.SetCode(buildCode(t, steaneH())))

	result, err := d.Decode(gf2.Vector{1, 0, 0})
	require.NoError(t, err)
	require.True(t, result.Valid)

	reproduced, err := gf2.MultiplyVector(steaneH(), gf2.Vector(result.Estimate))
	require.NoError(t, err)
	assert.Equal(t, gf2.Vector{1, 0, 0}, reproduced)
}

func TestDecode_RandomFirstGrowthRequiresRNG(t *testing.T) {
	d := decoder.New(decoder.WithGrowth(growth.RandomFirst))
	require.NoError(t, d.SetCode(buildCode(t, steaneH())))

	_, err := d.Decode(gf2.Vector{1, 0, 0})
	assert.Error(t, err)
}
