// SPDX-License-Identifier: MIT
// Package: isingcut/cut

package cut

import "errors"

var (
	// ErrNilGraph indicates a nil graph was passed to an evaluator.
	ErrNilGraph = errors.New("cut: graph is nil")

	// ErrLengthMismatch indicates an assignment whose length differs from
	// the graph's vertex count.
	ErrLengthMismatch = errors.New("cut: assignment length mismatch")

	// ErrInconsistent indicates that a solver's reported energy, once
	// reconciled with the offset, disagrees with the directly computed cut.
	ErrInconsistent = errors.New("cut: energy and cut value disagree")
)
