// SPDX-License-Identifier: MIT
// Package: isingcut/exact
//
// solve.go — exhaustive ground-state search.
//
// Stages:
//  1. Validate: nil model, variable limit, iteration budget.
//  2. Partition the 2^n index space into 2^p ranges by their p high bits.
//  3. Enumerate ranges concurrently (errgroup, at most `workers` at once);
//     each range writes only its own slot.
//  4. Merge in range order: minimum energy, then minimum index.
//  5. Recompute the winning energy exactly from its assignment.
//
// The answer is independent of the worker count.

package exact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/bits"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isingcut/ising"
)

const methodSolve = "Solve"

// loadBalanceBits splits work into 4× as many ranges as workers when w > 1.
const loadBalanceBits = 2

// Solve returns the exact minimum of m.Energy over all 2^n assignments.
//
// Errors:
//   - ErrNilModel.
//   - ErrInputTooLarge if n exceeds WithMaxVariables (default 24).
//   - ErrTimeout if WithTimeLimit elapses, the context deadline passes, or
//     WithMaxIterations is below 2^n.
//   - the context error (wrapped) on cancellation.
//
// Complexity: O(2^n · n) time, O(n² + workers·n) memory.
func Solve(ctx context.Context, m *ising.Model, opts ...Option) (Result, error) {
	start := time.Now()
	res, err := solve(ctx, m, newConfig(opts...), start)
	elapsed := time.Since(start)
	observe(res, err, elapsed)
	if err != nil {
		return Result{}, err
	}
	res.Elapsed = elapsed

	return res, nil
}

func solve(ctx context.Context, m *ising.Model, cfg config, start time.Time) (Result, error) {
	// Stage 1: validation.
	if m == nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, ErrNilModel)
	}
	n := m.N()
	if n > cfg.maxVars {
		return Result{}, fmt.Errorf("%s: n=%d > limit %d: %w", methodSolve, n, cfg.maxVars, ErrInputTooLarge)
	}
	space := uint64(1) << uint(n)
	if cfg.maxIterations > 0 && cfg.maxIterations < space {
		return Result{}, fmt.Errorf("%s: 2^%d assignments > budget %d: %w",
			methodSolve, n, cfg.maxIterations, ErrTimeout)
	}

	// Stage 2: ranges.
	e := newEngine(m.Couplings())
	if cfg.timeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(cfg.timeLimit)
	}
	p := prefixBits(n, cfg.workers)
	ranges := uint64(1) << uint(p)
	logDebug(cfg.logger, "exact: solve started",
		slog.Int("n", n), slog.Int("workers", cfg.workers), slog.Uint64("ranges", ranges))

	// Stage 3: concurrent enumeration.
	found := make([]candidate, ranges)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for c := uint64(0); c < ranges; c++ {
		g.Go(func() error {
			best, err := e.run(gctx, c, p)
			if err != nil {
				return err
			}
			found[c] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, wrapRunError(err)
	}

	// Stage 4: merge.
	best := found[0]
	for _, c := range found[1:] {
		if e.better(c, best) {
			best = c
		}
	}

	// Stage 5: exact re-evaluation.
	x, err := ising.FromIndex(best.index, n)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, err)
	}
	energy, err := m.EnergyOf(x)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodSolve, err)
	}
	logDebug(cfg.logger, "exact: solve finished",
		slog.Float64("energy", energy), slog.Uint64("index", best.index),
		slog.Duration("elapsed", time.Since(start)))

	return Result{
		Energy:     energy,
		Offset:     m.Offset(),
		Index:      best.index,
		Assignment: x,
		Evaluated:  space,
	}, nil
}

// prefixBits picks how many high bits identify a range.
func prefixBits(n, workers int) int {
	if workers <= 1 {
		return 0
	}

	return min(n, bits.Len(uint(workers-1))+loadBalanceBits)
}

// wrapRunError maps enumeration failures onto the package sentinels.
func wrapRunError(err error) error {
	switch {
	case errors.Is(err, ErrTimeout):
		return fmt.Errorf("%s: %w", methodSolve, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", methodSolve, ErrTimeout, err)
	default:
		return fmt.Errorf("%s: %w", methodSolve, err)
	}
}

func logDebug(l *slog.Logger, msg string, attrs ...slog.Attr) {
	if l == nil {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
