package maxsub

import (
	"runtime"

	"github.com/exascience/maxsub/internal"
)

// DefaultChunks returns the number of chunks that the command-line tools use
// when no explicit chunk count is given, which is runtime.GOMAXPROCS(0).
//
// Selecting a chunk count is a scheduling policy and does not affect the
// result of any operation in this module.
func DefaultChunks() int {
	return runtime.GOMAXPROCS(0)
}

/*
EffectiveChunks determines the number of chunks a sequence of the given
length is actually split into when k chunks are requested.

More specifically:

If length is 0, the return value is 1.

If k is < 1, the return value is 1.

If k is > length, the return value is length.

Otherwise, the return value is k.

EffectiveChunks panics if length is negative.
*/
func EffectiveChunks(length, k int) int {
	return internal.ComputeNofBatches(0, length, k)
}
