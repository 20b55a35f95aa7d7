// Package exact is the ground-truth oracle: it enumerates every assignment
// of an Ising model and returns the global energy minimum.
//
//   - Solve: reflected Gray-code enumeration with O(n) incremental energy
//     updates, optionally split across workers by high-bit prefixes.
//
//   - Complexity: O(2ⁿ·n)
//
//   - Memory:     O(n²)
//
//   - Ties resolve to the smallest bitstring index (vertex 0 = MSB).
//
//   - Solver: the same search behind the decode.Optimizer interface.
//
// Use this package on small instances (n ≲ 24 by default, see
// WithMaxVariables). It never approximates: exceeding the variable limit
// yields ErrInputTooLarge, exceeding a time or iteration budget yields
// ErrTimeout, and no partial answer is ever returned.
package exact
