// SPDX-License-Identifier: MIT
//
// Command isingcut reduces weighted max-cut instances to Ising models, solves
// them exactly and scores externally produced candidates.
//
// Usage:
//
//	isingcut solve --graph g.txt
//	isingcut solve --random 12 --p 0.5 --range 10 --seed 7 --workers 4
//	isingcut generate --random 20 --p 0.3 --seed 1 > g.txt
//	isingcut decode --graph g.txt 0100
//	isingcut decode --graph g.txt --dist probs.txt
//	isingcut decode --graph g.txt --counts counts.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "isingcut: %v\n", err)
		os.Exit(1)
	}
}
