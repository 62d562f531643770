// Package sequential provides the sequential baseline for maximum subarray
// sums, and sequential implementations of the functions provided by the
// parallel package. This is useful for testing and debugging.
//
// Solve is the correctness oracle and the performance reference point for
// parallel.Solve.
package sequential

import (
	"fmt"

	"github.com/exascience/maxsub"
	"github.com/exascience/maxsub/internal"
)

// Range receives a range, a batch count n, and a range function f,
// divides the range into batches, and invokes the range function for
// each of these batches sequentially, covering the half-open interval
// from low to high, including low but excluding high.
//
// The batches are the same as the ones used by parallel.Range. Range
// returns the left-most error value that is different from nil, but
// invokes the range function for all batches regardless.
//
// Range panics if high < low.
func Range(
	low, high, n int,
	f func(low, high int) error,
) (err error) {
	n = internal.ComputeNofBatches(low, high, n)
	for i := 0; i < n; i++ {
		nerr := f(internal.Split(low, high, n, i))
		if err == nil {
			err = nerr
		}
	}
	return
}

// Summarize returns the Summary of seq, folding all its elements from left
// to right in a single chunk.
//
// Summarize returns maxsub.ErrEmptyInput if seq is empty.
func Summarize(seq []int64) (maxsub.Summary, error) {
	return maxsub.Fold(seq)
}

// SummarizeChunks returns the Summary of seq, computed from k chunk
// summaries exactly like parallel.Summarize, but sequentially.
//
// SummarizeChunks returns maxsub.ErrEmptyInput if seq is empty.
func SummarizeChunks(seq []int64, k int) (result maxsub.Summary, err error) {
	if len(seq) == 0 {
		return result, maxsub.ErrEmptyInput
	}
	first := true
	err = Range(0, len(seq), k, func(low, high int) error {
		s, err := maxsub.Fold(seq[low:high])
		if err != nil {
			return err
		}
		if first {
			result, first = s, false
		} else {
			result = maxsub.Combine(result, s)
		}
		return nil
	})
	return
}

// Solve returns the maximum sum of a non-empty contiguous subarray of seq.
//
// For convenience on the command line, Solve returns 0 if seq is empty.
// Use Summarize to have empty input reported as maxsub.ErrEmptyInput
// instead.
func Solve(seq []int64) int64 {
	s, err := Summarize(seq)
	if err != nil {
		return 0
	}
	return s.Best
}

// A Span identifies a contiguous subarray seq[Low:High] and its sum.
type Span struct {
	Sum       int64
	Low, High int
}

// Len returns the number of elements in the span.
func (s Span) Len() int {
	return s.High - s.Low
}

func (s Span) String() string {
	return fmt.Sprintf("%v [%v:%v]", s.Sum, s.Low, s.High)
}

// Locate returns the left-most non-empty contiguous subarray of seq with
// the maximum sum, using Kadane's algorithm. The running sum restarts only
// when it drops below 0, so leading elements that sum to exactly 0 are kept.
//
// Locate returns maxsub.ErrEmptyInput if seq is empty.
func Locate(seq []int64) (Span, error) {
	if len(seq) == 0 {
		return Span{}, maxsub.ErrEmptyInput
	}
	best := Span{Sum: seq[0], Low: 0, High: 1}
	current, start := seq[0], 0
	for i := 1; i < len(seq); i++ {
		x := seq[i]
		if current < 0 {
			current, start = x, i
		} else {
			current += x
		}
		if current > best.Sum {
			best = Span{Sum: current, Low: start, High: i + 1}
		}
	}
	return best, nil
}
