// SPDX-License-Identifier: MIT
// Package: isingcut/exact

package exact

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for solvesTotal.
const (
	resultOK       = "ok"
	resultTooLarge = "too_large"
	resultTimeout  = "timeout"
	resultCanceled = "canceled"
	resultInvalid  = "invalid"
)

var (
	// solvesTotal counts Solve calls by outcome.
	// Labels: "ok", "too_large", "timeout", "canceled", "invalid".
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isingcut_exact_solves_total",
		Help: "Total exhaustive solves by result",
	}, []string{"result"})

	assignmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "isingcut_exact_assignments_total",
		Help: "Assignments evaluated by completed exhaustive solves",
	})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "isingcut_exact_solve_duration_seconds",
		Help:    "Exhaustive solve duration",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
	})
)

// resultLabel classifies an outcome for solvesTotal.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrInputTooLarge):
		return resultTooLarge
	case errors.Is(err, ErrTimeout):
		return resultTimeout
	case errors.Is(err, context.Canceled):
		return resultCanceled
	default:
		return resultInvalid
	}
}

// observe records one Solve call.
func observe(res Result, err error, elapsed time.Duration) {
	solvesTotal.WithLabelValues(resultLabel(err)).Inc()
	solveDuration.Observe(elapsed.Seconds())
	if err == nil {
		assignmentsTotal.Add(float64(res.Evaluated))
	}
}
