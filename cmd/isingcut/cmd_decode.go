// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isingcut/cut"
	"github.com/katalvlaran/isingcut/decode"
	"github.com/katalvlaran/isingcut/ising"
)

func newDecodeCmd(a *app) *cobra.Command {
	var distPath, countsPath string
	cmd := &cobra.Command{
		Use:   "decode [bitstring]",
		Short: "Score an externally produced bitstring or distribution against a graph",
		Long: `Decode maps an optimizer's output onto a vertex partition and reports its cut.

Exactly one source is accepted:
  a bitstring argument  e.g. 0100 (vertex 0 first)
  --dist FILE           one probability per line, line k = bitstring index k
  --counts FILE         YAML or JSON map of bitstring to measurement count`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			m, err := ising.Reduce(g)
			if err != nil {
				return err
			}
			c, err := readCandidate(args, distPath, countsPath, g.N())
			if err != nil {
				return err
			}
			report, err := cut.Evaluate(g, m, c)
			if err != nil {
				return err
			}
			a.logger.Info("decoded", "source", report.Source, "cut", report.Cut)

			return render(cmd.OutOrStdout(), a.cfg.Output, reportOutput{report})
		},
	}
	cmd.Flags().StringVar(&distPath, "dist", "", "Probability file, one weight per line")
	cmd.Flags().StringVar(&countsPath, "counts", "", "YAML/JSON map of bitstring to count")

	return cmd
}

// readCandidate picks the single candidate source given on the command line.
func readCandidate(args []string, distPath, countsPath string, n int) (decode.Candidate, error) {
	sources := 0
	for _, set := range []bool{len(args) == 1, distPath != "", countsPath != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, fmt.Errorf("decode needs exactly one of a bitstring, --dist or --counts: %w", errConfig)
	}

	switch {
	case len(args) == 1:
		return decode.ParseBitstring(args[0])
	case distPath != "":
		f, err := os.Open(distPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		p, err := readDistribution(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", distPath, err)
		}
		return decode.Distribution{N: n, P: p}, nil
	default:
		data, err := os.ReadFile(countsPath)
		if err != nil {
			return nil, err
		}
		var counts map[string]int
		if err := yaml.Unmarshal(data, &counts); err != nil {
			return nil, fmt.Errorf("%s: %w", countsPath, err)
		}
		return decode.FromCounts(counts, n)
	}
}

// readDistribution parses one float per line; blank lines and '#' comments
// are skipped. No normalisation is applied.
func readDistribution(r io.Reader) ([]float64, error) {
	var p []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = strings.TrimSpace(s[:i])
		}
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, s, decode.ErrDecode)
		}
		p = append(p, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return p, nil
}
