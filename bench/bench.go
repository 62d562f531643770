// Package bench measures and compares the sequential and parallel maximum
// subarray strategies.
package bench

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/maxsub"
	"github.com/exascience/maxsub/internal"
	"github.com/exascience/maxsub/parallel"
	"github.com/exascience/maxsub/sequential"
)

// ErrMismatch is returned when repeated or alternative computations of the
// same maximum subarray sum disagree.
var ErrMismatch = errors.New("bench: results do not match")

// A Result holds the outcome of repeatedly timing one computation.
type Result struct {
	Name    string
	Value   int64
	Elapsed []time.Duration
}

func (r Result) seconds() []float64 {
	s := make([]float64, len(r.Elapsed))
	for i, d := range r.Elapsed {
		s[i] = d.Seconds()
	}
	return s
}

// Mean returns the mean elapsed time.
func (r Result) Mean() time.Duration {
	return fromSeconds(stat.Mean(r.seconds(), nil))
}

// StdDev returns the sample standard deviation of the elapsed times, or 0
// for fewer than two runs.
func (r Result) StdDev() time.Duration {
	if len(r.Elapsed) < 2 {
		return 0
	}
	return fromSeconds(stat.StdDev(r.seconds(), nil))
}

// Min returns the shortest elapsed time.
func (r Result) Min() time.Duration {
	return fromSeconds(floats.Min(r.seconds()))
}

func fromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Measure invokes f runs times and records the elapsed time of each
// invocation. Only the invocation of f is timed.
//
// Measure returns the first error returned by f, and ErrMismatch if f
// does not return the same value on every run.
func Measure(name string, runs int, f func() (int64, error)) (Result, error) {
	if runs < 1 {
		return Result{}, fmt.Errorf("bench: invalid number of runs: %v", runs)
	}
	result := Result{Name: name, Elapsed: make([]time.Duration, 0, runs)}
	for i := 0; i < runs; i++ {
		start := time.Now()
		value, err := f()
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, fmt.Errorf("%v: %w", name, err)
		}
		if i == 0 {
			result.Value = value
		} else if value != result.Value {
			return Result{}, fmt.Errorf("%v: run %v returned %v instead of %v: %w", name, i, value, result.Value, ErrMismatch)
		}
		result.Elapsed = append(result.Elapsed, elapsed)
	}
	return result, nil
}

// A Comparison holds the timings of the sequential and parallel strategies
// on the same sequence.
type Comparison struct {
	Run        uuid.UUID
	Elements   int
	Chunks     int
	Sequential Result
	Parallel   Result
	// Span locates one optimal subarray.
	Span sequential.Span
}

// Speedup returns the ratio of the mean sequential time to the mean
// parallel time, or 0 if the parallel time could not be measured.
func (c Comparison) Speedup() float64 {
	p := c.Parallel.Mean()
	if p <= 0 {
		return 0
	}
	return float64(c.Sequential.Mean()) / float64(p)
}

// Compare times sequential.Solve and parallel.Solve with k chunks on seq,
// runs times each.
//
// Compare returns maxsub.ErrEmptyInput if seq is empty, an
// *maxsub.OverflowError if sums over seq may overflow, and ErrMismatch if
// the two strategies disagree.
func Compare(seq []int64, k, runs int) (Comparison, error) {
	if len(seq) == 0 {
		return Comparison{}, maxsub.ErrEmptyInput
	}
	if err := maxsub.CheckSequence(seq); err != nil {
		return Comparison{}, err
	}
	c := Comparison{
		Run:      uuid.New(),
		Elements: len(seq),
		Chunks:   internal.ComputeNofBatches(0, len(seq), k),
	}
	var err error
	if c.Sequential, err = Measure("sequential", runs, func() (int64, error) {
		return sequential.Solve(seq), nil
	}); err != nil {
		return Comparison{}, err
	}
	if c.Parallel, err = Measure("parallel", runs, func() (int64, error) {
		return parallel.Solve(seq, k)
	}); err != nil {
		return Comparison{}, err
	}
	if c.Sequential.Value != c.Parallel.Value {
		return Comparison{}, fmt.Errorf("sequential %v, parallel %v: %w", c.Sequential.Value, c.Parallel.Value, ErrMismatch)
	}
	if c.Span, err = sequential.Locate(seq); err != nil {
		return Comparison{}, err
	}
	return c, nil
}

// maxListed is the longest subarray that WriteReport lists in full.
const maxListed = 20

// WriteReport writes a plain text summary of c to w. The optimal subarray
// is listed in full if it is short, and abbreviated to its first and last
// ten elements otherwise.
func (c Comparison) WriteReport(w io.Writer, seq []int64) error {
	sub := seq[c.Span.Low:c.Span.High]
	var listing string
	if len(sub) <= maxListed {
		listing = fmt.Sprint(sub)
	} else {
		listing = fmt.Sprintf("%v ... %v (%v elements)", sub[:maxListed/2], sub[len(sub)-maxListed/2:], len(sub))
	}
	_, err := fmt.Fprintf(w,
		"Run: %v\nElements: %v\nChunks: %v\nMax Sum: %v\nSubarray: [%v:%v] %v\n"+
			"Sequential: mean %v, stddev %v, min %v (%v runs)\n"+
			"Parallel: mean %v, stddev %v, min %v (%v runs)\n"+
			"Speedup: %.2fx\n",
		c.Run, c.Elements, c.Chunks, c.Sequential.Value, c.Span.Low, c.Span.High, listing,
		c.Sequential.Mean(), c.Sequential.StdDev(), c.Sequential.Min(), len(c.Sequential.Elapsed),
		c.Parallel.Mean(), c.Parallel.StdDev(), c.Parallel.Min(), len(c.Parallel.Elapsed),
		c.Speedup(),
	)
	return err
}
