package maxsub_test

import (
	"fmt"

	"github.com/exascience/maxsub"
)

func ExampleCombine() {
	left, _ := maxsub.Fold([]int64{-1, -1, 5})
	right, _ := maxsub.Fold([]int64{5, -1, -1})
	fmt.Println(left)
	fmt.Println(right)
	fmt.Println(maxsub.Combine(left, right))

	// Output:
	// {total: 3, prefix: 3, suffix: 5, best: 5}
	// {total: 3, prefix: 5, suffix: 3, best: 5}
	// {total: 6, prefix: 8, suffix: 8, best: 10}
}

func ExampleFold() {
	s, err := maxsub.Fold([]int64{-2, 1, -3, 4, -1, 2, 1, -5, 4})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Best)

	_, err = maxsub.Fold(nil)
	fmt.Println(err)

	// Output:
	// 6
	// maxsub: empty input
}
