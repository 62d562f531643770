package maxsub

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyInput is returned when a maximum subarray sum is requested for an
// empty sequence, for which no non-empty subarray exists.
var ErrEmptyInput = errors.New("maxsub: empty input")

// An OverflowError reports that sums over a sequence of Length elements
// bounded in magnitude by Magnitude may not fit into an int64.
type OverflowError struct {
	Length    int
	Magnitude uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("maxsub: %v elements of magnitude up to %v may overflow int64 sums", e.Length, e.Magnitude)
}

// magnitude returns |x| without overflowing for math.MinInt64.
func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// CheckBounds verifies that every Summary field of any sequence of at most
// length elements, each in the closed interval [low, high], fits into an
// int64. It returns an *OverflowError otherwise.
//
// CheckBounds panics if length is negative, or if high < low.
func CheckBounds(length int, low, high int64) error {
	if length < 0 {
		panic(fmt.Sprintf("invalid length: %v", length))
	}
	if high < low {
		panic(fmt.Sprintf("invalid bounds: %v:%v", low, high))
	}
	m := max(magnitude(low), magnitude(high))
	if length == 0 || m == 0 {
		return nil
	}
	if m > math.MaxInt64/uint64(length) {
		return &OverflowError{Length: length, Magnitude: m}
	}
	return nil
}

// CheckSequence applies CheckBounds to the length and the observed element
// bounds of seq.
func CheckSequence(seq []int64) error {
	if len(seq) == 0 {
		return nil
	}
	low, high := seq[0], seq[0]
	for _, x := range seq[1:] {
		low, high = min(low, x), max(high, x)
	}
	return CheckBounds(len(seq), low, high)
}
