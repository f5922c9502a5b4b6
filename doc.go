// Package ufqecc is a Union–Find decoder core for quantum low-density
// parity-check (qLDPC) codes.
//
// 🚀 What is ufqecc?
//
//	Given a stabilizer code's parity-check matrix and a measured syndrome
//	over GF(2), ufqecc grows clusters on the code's Tanner graph with a
//	disjoint-set data structure until each cluster admits a local
//	correction, then peels that correction out of the cluster.
//
//	  • tanner/    — bipartite qubit/check graph view + cluster-tree arena
//	  • unionfind/ — disjoint-set with a cluster payload (boundary, checks)
//	  • growth/    — standard / smallest-first / random-first growth strategies
//	  • gf2/       — GF(2) linear algebra (transpose, RREF, solve, row-space)
//	  • decoder/   — the outer growth loop and the two inner peeling decoders
//
// ✨ Design goals
//
//   - Single-threaded and deterministic for the standard and
//     smallest-first growth strategies.
//   - No hidden global state: every decode call resets its own scratch
//     state; distinct *decoder.Decoder instances are fully independent.
//   - Pure Go — no cgo, no external solver.
//
// Quick usage:
//
//	d := decoder.New()
//	if err := d.SetCode(code); err != nil { ... }
//	result, err := d.Decode(syndrome)
//
// See SPEC_FULL.md and DESIGN.md for the full component breakdown and the
// grounding ledger tracing each piece back to its source.
package ufqecc
