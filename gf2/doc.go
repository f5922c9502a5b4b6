// Package gf2 provides linear-algebra primitives over GF(2), the
// two-element field where addition is XOR and multiplication is AND.
// These support the decoder's test suite (verifying that an estimate
// reproduces a syndrome) and any future logical-operator checks; they
// are not used by the decoding engine's hot path itself.
//
// Matrix is a slice of byte rows, each entry 0 or 1. Vector is a single
// byte row. Behavior on the degenerate empty-matrix input is defined:
// Transpose of a 0-row matrix returns a 0-row matrix, and Solve against a
// zero-row system returns the empty solution.
package gf2
