// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isingcut/graph"
)

func newGenerateCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a seeded random graph in edge-list format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Random.N < 1 {
				return fmt.Errorf("generate needs --random n (or random.n in the config): %w", errConfig)
			}
			g, err := a.randomGraph()
			if err != nil {
				return err
			}
			if out == "" {
				return graph.Write(cmd.OutOrStdout(), g)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := graph.Write(f, g); err != nil {
				f.Close()
				return err
			}
			a.logger.Info("graph written", "path", out, "n", g.N(), "edges", len(g.Edges()))

			return f.Close()
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Destination file (default: stdout)")

	return cmd
}
