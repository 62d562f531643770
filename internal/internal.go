package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches returns the number of batches the range from low to high
// is divided into when n batches are requested. The result is n clamped to
// [1, high - low], or 1 for an empty range.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		batches = n
		if batches < 1 {
			batches = 1
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// Split returns the bounds of batch i when the range from low to high is
// divided into n contiguous batches whose sizes differ by at most 1.
//
// Batches are ordered: batch i ends where batch i+1 begins.
func Split(low, high, n, i int) (lo, hi int) {
	if (n < 1) || (i < 0) || (i >= n) {
		panic(fmt.Sprintf("invalid batch: %v of %v", i, n))
	}
	size := high - low
	return low + (size*i)/n, low + (size*(i+1))/n
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
