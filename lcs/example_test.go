package lcs_test

import (
	"fmt"

	"github.com/katalvlaran/optima/lcs"
)

func ExampleStrings() {
	n, s := lcs.Strings("ABCBDAB", "BDCABA")
	fmt.Println(n, s)
	// Output: 4 BCBA
}

func ExampleLength() {
	fmt.Println(lcs.Length([]int{1, 3, 4, 1, 2, 3}, []int{3, 4, 1, 2, 1, 3}))
	// Output: 5
}
