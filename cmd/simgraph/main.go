// SPDX-License-Identifier: MIT

// Command simgraph builds similarity graphs over embedded records.
//
//	simgraph build -i jobs.jsonl -a pathfinder --param r=2 --param minSim=0.35
//	simgraph compare -i jobs.jsonl --algorithms threshold,knn,mst
//	simgraph algorithms
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
