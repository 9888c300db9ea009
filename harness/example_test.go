package harness_test

import (
	"fmt"

	"github.com/katalvlaran/optima/harness"
)

func ExampleRun() {
	suite := &harness.Suite{
		Knapsack: []harness.KnapsackCase{
			{Name: "classic", Weights: []int{2, 3, 4, 5}, Values: []int{3, 4, 5, 6}, Capacity: 5, Want: intp(7)},
		},
		LDS: []harness.SeqCase{{Seq: []int{8, 7, 3, 6, 2, 6}}},
	}
	rep, err := harness.Run(harness.DefaultConfig(), suite, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range rep.Summary() {
		fmt.Printf("%s: %d passed, %d failed\n", s.Kernel, s.Passed, s.Failed)
	}
	// Output:
	// knapsack: 1 passed, 0 failed
	// lds: 1 passed, 0 failed
}
