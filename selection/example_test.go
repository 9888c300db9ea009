package selection_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/optima/selection"
)

func ExampleSelect() {
	a := []int{7, 14, 3, 19, 11, 2, 17, 8, 5, 13}
	v, err := selection.Select(a, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output: 7
}

func ExampleKLargest() {
	a := []int{7, 14, 3, 19, 11, 2, 17, 8, 5, 13}
	top, _ := selection.KLargest(a, 3)
	slices.Sort(top) // order within the partition is unspecified
	fmt.Println(top)
	// Output: [14 17 19]
}
