// SPDX-License-Identifier: MIT
// Package: isingcut/exact

package exact

import (
	"time"

	"github.com/katalvlaran/isingcut/ising"
)

// Result is the exact ground state of an Ising model.
type Result struct {
	// Energy is the global minimum of Model.Energy, recomputed exactly from
	// Assignment (not the incrementally accumulated value).
	Energy float64 `json:"energy" yaml:"energy"`

	// Offset is copied from the model: Energy + Offset == -maxcut.
	Offset float64 `json:"offset" yaml:"offset"`

	// Index is the bitstring index of Assignment (vertex 0 = MSB). Among all
	// minimal assignments it is the smallest.
	Index uint64 `json:"index" yaml:"index"`

	// Assignment is the optimal 0/1 labeling.
	Assignment ising.Assignment `json:"assignment" yaml:"assignment,flow"`

	// Evaluated is the number of assignments visited (always 2^n).
	Evaluated uint64 `json:"evaluated" yaml:"evaluated"`

	// Elapsed is the wall-clock time spent in Solve.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}
