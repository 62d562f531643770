// Command maxsub generates integer sequences and computes their maximum
// subarray sums sequentially and in parallel, reporting the elapsed time of
// each strategy.
//
//	maxsub generate --size 10000000 --file input_data.txt
//	maxsub solve --mode compare --chunks 8 --runs 5
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
