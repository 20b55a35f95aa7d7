// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isingcut/cut"
	"github.com/katalvlaran/isingcut/exact"
)

// solveOutput extends a cut report with exact-solver statistics.
type solveOutput struct {
	cut.Report `yaml:",inline"`
	Index      uint64 `json:"index" yaml:"index"`
	Evaluated  uint64 `json:"evaluated" yaml:"evaluated"`
	Elapsed    string `json:"elapsed" yaml:"elapsed"`
	Components int    `json:"components" yaml:"components"`
}

func newSolveOutput(r cut.Report, res exact.Result, components int) solveOutput {
	return solveOutput{
		Report:     r,
		Index:      res.Index,
		Evaluated:  res.Evaluated,
		Elapsed:    res.Elapsed.Round(time.Microsecond).String(),
		Components: components,
	}
}

// textWriter is implemented by outputs with a human-readable rendering.
type textWriter interface {
	writeText(w io.Writer) error
}

// render writes v in the requested format.
func render(w io.Writer, format string, v textWriter) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatText:
		return v.writeText(w)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

type reportOutput struct {
	cut.Report `yaml:",inline"`
}

func (o reportOutput) writeText(w io.Writer) error {
	return writeReportText(w, o.Report)
}

func (o solveOutput) writeText(w io.Writer) error {
	if err := writeReportText(w, o.Report); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "index:       %d\nevaluated:   %d\nelapsed:     %s\ncomponents:  %d\n",
		o.Index, o.Evaluated, o.Elapsed, o.Components)

	return err
}

func writeReportText(w io.Writer, r cut.Report) error {
	_, err := fmt.Fprintf(w,
		"source:      %s\nassignment:  %s\ncut:         %g\nenergy:      %g\noffset:      %g\nreconciled:  %g\nleft:        %v\nright:       %v\nfrustrated:  %d\n",
		r.Source, r.Assignment, r.Cut, r.Energy, r.Offset, r.Reconciled, r.Left, r.Right, r.Frustrated)

	return err
}
