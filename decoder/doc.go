// Package decoder implements the Union–Find decoding engine: the
// cluster-growth outer loop (growth → fusion → root-refresh →
// boundary-refresh → extraction), the validity predicate that decides
// when a grown cluster is ready for local correction, and the two
// alternative inner decoders (spanning-forest peeling, the default and
// preferred variant, and interior peeling, an alternative) that turn a
// valid cluster into a qubit-error estimate.
//
// Decoder is the external-facing contract: SetCode installs a stabilizer
// code (a Tanner graph view plus its parity-check matrix), SetGrowth
// selects a cluster-growth strategy, and Decode runs one full
// syndrome-to-estimate decode. A single Decoder is not safe for
// concurrent Decode calls — per-vertex scratch state is mutated in
// place — but distinct Decoder instances (or the same Decoder used
// sequentially) are fully independent: every Decode resets the
// underlying Tanner graph's cluster arena before it begins.
package decoder
