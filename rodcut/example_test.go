package rodcut_test

import (
	"fmt"

	"github.com/katalvlaran/optima/rodcut"
)

func ExampleCut() {
	res, err := rodcut.Cut(4, []int{1, 5, 8, 9})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Revenue, res.Pieces)
	// Output: 10 [2 2]
}
