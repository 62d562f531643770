package maxsub

import "fmt"

// A Summary describes the solved maximum subarray state of one non-empty,
// contiguous span of a sequence.
//
// Summaries are values. They are created either by Leaf or by Combine, and
// are never modified afterwards.
type Summary struct {
	// Total is the sum of all elements in the span.
	Total int64

	// Prefix is the maximum sum of a non-empty prefix of the span.
	Prefix int64

	// Suffix is the maximum sum of a non-empty suffix of the span.
	Suffix int64

	// Best is the maximum sum of a non-empty contiguous subarray of the
	// span. For a span covering a whole sequence, this is the maximum
	// subarray sum of that sequence.
	Best int64
}

// Leaf returns the Summary of the single-element span [x].
func Leaf(x int64) Summary {
	return Summary{Total: x, Prefix: x, Suffix: x, Best: x}
}

// Combine returns the Summary of the concatenation of two adjacent spans,
// where left covers the span immediately preceding the span covered by
// right.
//
// Combine is associative, but not commutative.
func Combine(left, right Summary) Summary {
	return Summary{
		Total:  left.Total + right.Total,
		Prefix: max(left.Prefix, left.Total+right.Prefix),
		Suffix: max(right.Suffix, right.Total+left.Suffix),
		// the last term covers subarrays that cross the boundary
		Best: max(left.Best, right.Best, left.Suffix+right.Prefix),
	}
}

// Fold returns the Summary of seq by combining the leaves of all its elements
// from left to right.
//
// Fold returns ErrEmptyInput if seq is empty.
func Fold(seq []int64) (Summary, error) {
	if len(seq) == 0 {
		return Summary{}, ErrEmptyInput
	}
	result := Leaf(seq[0])
	for _, x := range seq[1:] {
		result = Combine(result, Leaf(x))
	}
	return result, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("{total: %v, prefix: %v, suffix: %v, best: %v}", s.Total, s.Prefix, s.Suffix, s.Best)
}
