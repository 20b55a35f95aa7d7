// SPDX-License-Identifier: MIT
// Package: isingcut/exact
//
// errors.go — sentinel errors for the exhaustive solver.
// All errors are terminal: Solve never returns a partial or approximate answer.

package exact

import "errors"

var (
	// ErrNilModel indicates Solve received a nil model.
	ErrNilModel = errors.New("exact: model is nil")

	// ErrInputTooLarge indicates the variable count exceeds the configured
	// enumeration limit (WithMaxVariables). Use an approximate or external
	// optimizer for such instances.
	ErrInputTooLarge = errors.New("exact: too many variables for exhaustive search")

	// ErrTimeout indicates the time limit, the context deadline, or the
	// iteration budget was exceeded before the enumeration completed.
	ErrTimeout = errors.New("exact: enumeration budget exceeded")
)
