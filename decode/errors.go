// SPDX-License-Identifier: MIT
// Package: isingcut/decode

package decode

import "errors"

// ErrDecode indicates a candidate that cannot be decoded: a bitstring of the
// wrong length or with non-binary symbols, a distribution whose length is not
// 2^n, or whose weights are negative, non-finite, or do not sum to 1 within
// Tolerance. Distributions are never renormalized silently; call Normalize
// first to opt in.
var ErrDecode = errors.New("decode: invalid candidate")
