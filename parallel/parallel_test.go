package parallel

import (
	"errors"
	"math/rand"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/maxsub"
	"github.com/exascience/maxsub/sequential"
)

func randomSequence(r *rand.Rand, n int) []int64 {
	seq := make([]int64, n)
	for i := range seq {
		seq[i] = int64(r.Intn(201) - 100)
	}
	return seq
}

// isolatedMaxima solves each chunk in isolation and takes the maximum of
// the per-chunk results, which misses subarrays crossing chunk boundaries.
func isolatedMaxima(seq []int64, k int) int64 {
	summaries, err := Chunks(seq, k)
	if err != nil {
		panic(err)
	}
	result := summaries[0].Best
	for _, s := range summaries[1:] {
		result = max(result, s.Best)
	}
	return result
}

func TestSolveEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for n := 1; n <= 48; n++ {
		for round := 0; round < 4; round++ {
			seq := randomSequence(r, n)
			expected := sequential.Solve(seq)
			for k := 1; k <= n; k++ {
				result, err := Solve(seq, k)
				require.NoError(t, err)
				require.Equal(t, expected, result, "%v with %v chunks", seq, k)
			}
		}
	}
}

func TestSolveLarge(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	seq := randomSequence(r, 100_000)
	expected, err := sequential.Summarize(seq)
	require.NoError(t, err)
	for _, k := range []int{1, 2, 3, 7, runtime.GOMAXPROCS(0), 64, 1000} {
		s, err := Summarize(seq, k)
		require.NoError(t, err)
		require.Equal(t, expected, s, "%v chunks", k)
	}
}

func TestSolveBoundaryCrossing(t *testing.T) {
	seq := []int64{-1, -1, 5, 5, -1, -1}

	summaries, err := Chunks(seq, 2)
	require.NoError(t, err)
	left, _ := maxsub.Fold([]int64{-1, -1, 5})
	right, _ := maxsub.Fold([]int64{5, -1, -1})
	require.Equal(t, []maxsub.Summary{left, right}, summaries)

	result, err := Solve(seq, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result)
	assert.Equal(t, int64(5), isolatedMaxima(seq, 2))
}

func TestSolveKnownVectors(t *testing.T) {
	for k := 1; k <= 9; k++ {
		result, err := Solve([]int64{-2, 1, -3, 4, -1, 2, 1, -5, 4}, k)
		require.NoError(t, err)
		assert.Equal(t, int64(6), result, "%v chunks", k)
	}
	for k := 1; k <= 4; k++ {
		result, err := Solve([]int64{-5, -2, -8, -1}, k)
		require.NoError(t, err)
		assert.Equal(t, int64(-1), result, "%v chunks", k)
	}
}

func TestSolveChunkCountIdempotence(t *testing.T) {
	r := rand.New(rand.NewSource(77))
	seq := randomSequence(r, 500)
	one, err := Solve(seq, 1)
	require.NoError(t, err)
	all, err := Solve(seq, len(seq))
	require.NoError(t, err)
	assert.Equal(t, sequential.Solve(seq), one)
	assert.Equal(t, one, all)
}

func TestSolveClampsChunks(t *testing.T) {
	seq := []int64{3, -4, 5}
	for _, k := range []int{-5, 0, 3, 4, 1000} {
		result, err := Solve(seq, k)
		require.NoError(t, err)
		assert.Equal(t, int64(5), result, "%v chunks", k)
	}
	summaries, err := Chunks(seq, 1000)
	require.NoError(t, err)
	assert.Len(t, summaries, 3)
	summaries, err = Chunks(seq, 0)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestSolveEmpty(t *testing.T) {
	_, err := Solve(nil, 4)
	assert.True(t, errors.Is(err, maxsub.ErrEmptyInput))
	_, err = Summarize([]int64{}, 1)
	assert.ErrorIs(t, err, maxsub.ErrEmptyInput)
	_, err = Chunks(nil, 1)
	assert.ErrorIs(t, err, maxsub.ErrEmptyInput)
}

func TestChunksOrdered(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	seq := randomSequence(r, 1000)
	var batches [][2]int
	require.NoError(t, sequential.Range(0, len(seq), 13, func(low, high int) error {
		batches = append(batches, [2]int{low, high})
		return nil
	}))
	summaries, err := Chunks(seq, 13)
	require.NoError(t, err)
	require.Len(t, summaries, len(batches))
	for i, b := range batches {
		expected, _ := maxsub.Fold(seq[b[0]:b[1]])
		assert.Equal(t, expected, summaries[i], "chunk %v", i)
	}
}

func TestRangeCoversAllBatches(t *testing.T) {
	var covered [1000]int32
	var calls int32
	err := Range(0, len(covered), 17, func(low, high int) error {
		atomic.AddInt32(&calls, 1)
		for i := low; i < high; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(17), calls)
	for i, c := range covered {
		require.Equal(t, int32(1), c, "index %v", i)
	}
}

func TestRangeEmpty(t *testing.T) {
	calls := 0
	require.NoError(t, Range(5, 5, 8, func(low, high int) error {
		calls++
		assert.Equal(t, low, high)
		return nil
	}))
	assert.Equal(t, 1, calls)
}

func TestRangeLeftMostError(t *testing.T) {
	errs := make([]error, 8)
	for i := range errs {
		errs[i] = errors.New("batch error")
	}
	err := Range(0, 8, 8, func(low, _ int) error {
		if low >= 3 {
			return errs[low]
		}
		return nil
	})
	assert.Same(t, errs[3], err)
}

func TestRangePanic(t *testing.T) {
	assert.Panics(t, func() {
		_ = Range(0, 8, 8, func(low, _ int) error {
			if low == 6 {
				panic("worker failure")
			}
			return nil
		})
	})
	assert.Panics(t, func() {
		_ = Range(2, 1, 1, func(int, int) error { return nil })
	})
}
