// Package parallel computes maximum subarray sums by summarizing
// contiguous chunks of a sequence in parallel.
//
// Each chunk is summarized by its own goroutine, without access to any
// other chunk or intermediate result. Once all chunks are summarized, the
// chunk summaries are folded in their original sequence order on the
// invoking goroutine.
package parallel

import (
	"fmt"
	"sync"

	"github.com/exascience/maxsub"
	"github.com/exascience/maxsub/internal"
)

// Range receives a range, a batch count n, and a range function f,
// divides the range into batches, and invokes the range function for
// each of these batches in parallel, covering the half-open interval
// from low to high, including low but excluding high.
//
// The range is specified by a low and high integer, with low <=
// high. The range is divided into n contiguous batches whose sizes
// differ by at most 1. n is clamped to [1, high - low].
//
// The range function is invoked for each batch in its own goroutine,
// with 0 <= low <= high, and Range returns only when all range
// functions have terminated, returning the left-most error value
// that is different from nil.
//
// Range panics if high < low.
//
// If one or more range function invocations panic, the corresponding
// goroutines recover the panics, and Range eventually panics with
// the left-most recovered panic value.
func Range(
	low, high, n int,
	f func(low, high int) error,
) error {
	n = internal.ComputeNofBatches(low, high, n)
	var recur func(int, int) error
	recur = func(i, j int) (err error) {
		switch {
		case j-i == 1:
			return f(internal.Split(low, high, n, i))
		case j-i > 1:
			mid := i + (j-i)/2
			var err0, err1 error
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				err1 = recur(mid, j)
			}()
			err0 = recur(i, mid)
			wg.Wait()
			if p != nil {
				panic(p)
			}
			if err0 != nil {
				err = err0
			} else {
				err = err1
			}
			return
		default:
			panic(fmt.Sprintf("invalid batches: %v:%v", i, j))
		}
	}
	return recur(0, n)
}

// Chunks divides seq into k contiguous chunks whose sizes differ by at
// most 1, and summarizes each chunk in parallel. The summaries are
// returned in sequence order.
//
// k is clamped to [1, len(seq)]. Chunks returns maxsub.ErrEmptyInput if
// seq is empty.
func Chunks(seq []int64, k int) ([]maxsub.Summary, error) {
	if len(seq) == 0 {
		return nil, maxsub.ErrEmptyInput
	}
	k = internal.ComputeNofBatches(0, len(seq), k)
	summaries := make([]maxsub.Summary, k)
	err := Range(0, k, k, func(low, high int) (err error) {
		for i := low; i < high; i++ {
			lo, hi := internal.Split(0, len(seq), k, i)
			if summaries[i], err = maxsub.Fold(seq[lo:hi]); err != nil {
				return
			}
		}
		return
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Summarize returns the Summary of seq, computed from k chunk summaries
// (see Chunks). All workers are joined before the chunk summaries are
// folded in sequence order on the invoking goroutine.
//
// Summarize returns maxsub.ErrEmptyInput if seq is empty.
func Summarize(seq []int64, k int) (maxsub.Summary, error) {
	summaries, err := Chunks(seq, k)
	if err != nil {
		return maxsub.Summary{}, err
	}
	result := summaries[0]
	for _, s := range summaries[1:] {
		result = maxsub.Combine(result, s)
	}
	return result, nil
}

// Solve returns the maximum sum of a non-empty contiguous subarray of seq,
// using k chunks that are summarized in parallel.
//
// The result does not depend on k. Solve returns maxsub.ErrEmptyInput if
// seq is empty.
func Solve(seq []int64, k int) (int64, error) {
	s, err := Summarize(seq, k)
	if err != nil {
		return 0, err
	}
	return s.Best, nil
}
