package decoder_test

import (
	"testing"

	"github.com/katalvlaran/ufqecc/decoder"
	"github.com/katalvlaran/ufqecc/gf2"
	"github.com/katalvlaran/ufqecc/tanner"
	"github.com/stretchr/testify/require"
)

// buildCode constructs a decoder.Code from a parity-check matrix H: one
// qubit vertex per column, one check vertex per row, an edge wherever
// H[row][col] == 1.
func buildCode(t *testing.T, h gf2.Matrix) *decoder.Code {
	t.Helper()

	m := len(h)
	n := 0
	if m > 0 {
		n = len(h[0])
	}

	g, err := tanner.NewGraph(n, m)
	require.NoError(t, err)

	for row, checks := range h {
		for col, bit := range checks {
			if bit == 1 {
				require.NoError(t, g.AddEdge(col, row))
			}
		}
	}

	return &decoder.Code{N: n, H: h, Graph: g}
}

// steaneH is the classical [7,4,3] Hamming parity-check matrix, reused
// here as the single-Pauli-sector stabilizer matrix for a distance-3
// Steane code fixture.
func steaneH() gf2.Matrix {
	return gf2.Matrix{
		{0, 0, 0, 1, 1, 1, 1},
		{0, 1, 1, 0, 0, 1, 1},
		{1, 0, 1, 0, 1, 0, 1},
	}
}

// surfaceH is the Z-stabilizer parity-check matrix of a distance-3
// rotated surface-code patch (the "surface-17" layout), restricted to
// the single Pauli sector that detects X errors. Data qubits are
// arranged
//
//	q0 q1 q2
//	q3 q4 q5
//	q6 q7 q8
//
// with four Z-checks: {q0,q1}, {q1,q2,q4,q5}, {q3,q4,q6,q7}, {q7,q8}.
func surfaceH() gf2.Matrix {
	return gf2.Matrix{
		{1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 1, 1, 0, 0, 0},
		{0, 0, 0, 1, 1, 0, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1},
	}
}

// surfaceHX is the X-stabilizer matrix of the same patch: {q0,q1,q3,q4},
// {q2,q5}, {q3,q6}, {q4,q5,q7,q8}. Two X-error patterns are
// stabilizer-equivalent iff their XOR lies in its row space.
func surfaceHX() gf2.Matrix {
	return gf2.Matrix{
		{1, 1, 0, 1, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1, 1, 0, 1, 1},
	}
}
