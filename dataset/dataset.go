// Package dataset generates integer sequences and stores them as
// whitespace-separated decimal text.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
)

// Default bounds of generated elements.
const (
	DefaultLow  = -100
	DefaultHigh = 100
)

// A ParseError reports a token in the input that is not a decimal integer.
type ParseError struct {
	// Index is the position of the offending token in the sequence.
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: element %v: invalid integer %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Generate returns n integers drawn uniformly from the closed interval
// [low, high].
//
// Generate panics if n < 0, or if high < low.
func Generate(n int, low, high int64, rng *rand.Rand) []int64 {
	if n < 0 {
		panic(fmt.Sprintf("invalid size: %v", n))
	}
	if high < low {
		panic(fmt.Sprintf("invalid bounds: %v:%v", low, high))
	}
	seq := make([]int64, n)
	width := uint64(high-low) + 1
	for i := range seq {
		if width == 0 {
			// the full int64 range
			seq[i] = int64(rng.Uint64())
		} else {
			seq[i] = low + int64(uniform(rng, width))
		}
	}
	return seq
}

// uniform returns a value in [0, n) without modulo bias.
func uniform(rng *rand.Rand, n uint64) uint64 {
	if n <= 1<<62 {
		return uint64(rng.Int63n(int64(n)))
	}
	limit := -n % n
	for {
		if v := rng.Uint64(); v >= limit {
			return v % n
		}
	}
}

// Write writes seq to w as decimal integers separated by single spaces.
func Write(w io.Writer, seq []int64) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for i, x := range seq {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, x, 10)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read reads whitespace-separated decimal integers from r until EOF.
//
// Read returns a *ParseError if r contains a token that is not a decimal
// int64.
func Read(r io.Reader) ([]int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var seq []int64
	for scanner.Scan() {
		token := scanner.Text()
		x, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &ParseError{Index: len(seq), Token: token, Err: err}
		}
		seq = append(seq, x)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seq, nil
}

// Save writes seq to the named file, creating or truncating it.
func Save(path string, seq []int64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, seq)
}

// Load reads a sequence from the named file. If the file does not exist,
// the returned error wraps fs.ErrNotExist.
func Load(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seq, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return seq, nil
}
