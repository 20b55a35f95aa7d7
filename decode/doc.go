// Package decode turns raw optimizer output into a canonical 0/1 vertex
// assignment.
//
// A Candidate is one of two variants:
//
//   - Bitstring:    a concrete assignment; decoding validates and copies it.
//   - Distribution: a probability mass over all 2ⁿ bitstrings; decoding
//     picks the most likely index (smallest index on ties) and expands it
//     with vertex 0 as the most significant bit.
//
// Decode dispatches through the Candidate interface, so the exact oracle and
// any external Optimizer are handled by the same code path. Invalid input
// yields ErrDecode; distributions are never renormalized implicitly
// (Normalize is the explicit opt-in, FromCounts builds one from shot counts).
package decode
