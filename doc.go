// Package maxsub computes maximum subarray sums of integer sequences, both
// sequentially and in parallel.
//
// The central abstraction is the Summary: a four-field aggregate describing a
// contiguous span of a sequence (its total, its best non-empty prefix and
// suffix, and its best non-empty contiguous subarray). Summaries of adjacent
// spans can be merged with Combine without re-scanning any elements, and
// Combine is associative. This makes it possible to split a sequence into
// arbitrary contiguous chunks, summarize the chunks independently, and fold
// the chunk summaries back together in sequence order.
//
// Maxsub provides the following subpackages:
//
// maxsub/parallel summarizes balanced chunks of a sequence in parallel and
// folds the results in encounter order.
//
// maxsub/sequential provides the sequential baseline, which serves as the
// correctness oracle and performance reference for maxsub/parallel, as well
// as a sequential rendition of the chunked fold for testing and debugging.
//
// maxsub/dataset generates, stores, and loads integer sequences.
//
// maxsub/bench times the sequential and parallel strategies against each
// other.
//
// The maximum subarray sum is only defined for non-empty sequences. The
// operations in this package and in maxsub/parallel report ErrEmptyInput for
// empty input. sequential.Solve is the single exception and returns 0, as a
// convenience for command-line use.
package maxsub
