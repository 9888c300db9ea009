package harness

func ip(v int) *int { return &v }

func fp(v float64) *float64 { return &v }

// BuiltinSuite returns the classic hard-coded cases.
// large adds the bigger rod-cutting and knapsack instances. Knapsack answers
// are the brute-force optima.
func BuiltinSuite(large bool) *Suite {
	s := &Suite{
		RodCut: []RodCutCase{
			{Length: 1, Prices: []int{1}, Want: ip(1)},
			{Length: 2, Prices: []int{1, 5}, Want: ip(5)},
			{Length: 3, Prices: []int{1, 5, 8}, Want: ip(8)},
			{Length: 4, Prices: []int{1, 5, 8, 9}, Want: ip(10)},
			{Length: 5, Prices: []int{1, 5, 8, 9, 10}, Want: ip(13)},
			{Length: 6, Prices: []int{1, 5, 8, 9, 10, 17}, Want: ip(17)},
			{Length: 7, Prices: []int{1, 5, 8, 9, 10, 17, 17}, Want: ip(18)},
			{Length: 8, Prices: []int{1, 5, 8, 9, 10, 17, 17, 20}, Want: ip(22)},
			{Length: 9, Prices: []int{1, 5, 8, 9, 10, 17, 17, 20, 24}, Want: ip(25)},
			{Length: 10, Prices: []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30}, Want: ip(30)},
		},
		Knapsack: []KnapsackCase{
			{Weights: []int{2, 3, 4, 5}, Values: []int{3, 4, 5, 6}, Capacity: 5, Want: ip(7)},
			{Weights: []int{1, 2, 3}, Values: []int{6, 10, 12}, Capacity: 5, Want: ip(22)},
			{Weights: []int{10, 20, 30}, Values: []int{60, 100, 120}, Capacity: 50, Want: ip(220)},
			{Weights: []int{5, 4, 6, 3}, Values: []int{10, 40, 30, 50}, Capacity: 10, Want: ip(90)},
			{Weights: []int{2, 2, 2, 2}, Values: []int{5, 5, 5, 5}, Capacity: 4, Want: ip(10)},
			{Weights: []int{1}, Values: []int{10}, Capacity: 1, Want: ip(10)},
			{Weights: []int{1, 2}, Values: []int{1, 2}, Capacity: 1, Want: ip(1)},
			{Weights: []int{3, 4, 5}, Values: []int{30, 50, 60}, Capacity: 8, Want: ip(90)},
			{Weights: []int{1, 3, 4, 5}, Values: []int{1, 4, 5, 7}, Capacity: 7, Want: ip(9)},
			{Weights: []int{2, 3, 4, 5}, Values: []int{3, 4, 5, 6}, Capacity: 0, Want: ip(0)},
		},
		Unbounded: []KnapsackCase{
			{Weights: []int{2, 3, 4, 5}, Values: []int{3, 4, 5, 6}, Capacity: 5, Want: ip(7)},
			{Weights: []int{1, 2, 3}, Values: []int{6, 10, 12}, Capacity: 5, Want: ip(30)},
			{Weights: []int{10, 20, 30}, Values: []int{60, 100, 120}, Capacity: 50, Want: ip(300)},
			{Weights: []int{5, 4, 6, 3}, Values: []int{10, 40, 30, 50}, Capacity: 10, Want: ip(150)},
			{Weights: []int{2, 2, 2, 2}, Values: []int{5, 5, 5, 5}, Capacity: 4, Want: ip(10)},
			{Weights: []int{1}, Values: []int{10}, Capacity: 1, Want: ip(10)},
			{Weights: []int{1, 2}, Values: []int{1, 2}, Capacity: 1, Want: ip(1)},
			{Weights: []int{3, 4, 5}, Values: []int{30, 50, 60}, Capacity: 8, Want: ip(100)},
			{Weights: []int{1, 3, 4, 5}, Values: []int{1, 4, 5, 7}, Capacity: 7, Want: ip(9)},
			{Weights: []int{2, 3, 4, 5}, Values: []int{3, 4, 5, 6}, Capacity: 0, Want: ip(0)},
			{Weights: []int{1, 3}, Values: []int{10, 20}, Capacity: 3, Want: ip(30)},
			{Weights: []int{2, 5}, Values: []int{15, 30}, Capacity: 10, Want: ip(75)},
		},
		LDS: []SeqCase{
			{Seq: []int{1}}, {Seq: []int{1, 2}}, {Seq: []int{1, 2, 3}}, {Seq: []int{2, 1}},
			{Seq: []int{3, 2, 1}}, {Seq: []int{1, 3, 2}}, {Seq: []int{3, 1, 2}}, {Seq: []int{1, 1}},
			{Seq: []int{1, 2, 1}},
			{Seq: []int{8, 7, 3, 6, 2, 6}, Want: ip(4)},
			{Seq: []int{10, 4, 2, 1, 7, 5, 3, 2, 1}},
			{Seq: []int{3, 7, 2, 10, 3, 3, 3, 9}},
		},
		LCS: []LCSCase{
			{A: "signatur", B: "skigard", Want: ip(5)},
			{A: "ABCBDAB", B: "BDCABA", Want: ip(4)},
			{A: "AGGTAB", B: "GXTXAYB", Want: ip(4)},
			{A: "", B: "abc", Want: ip(0)},
			{A: "abc", B: "xyz", Want: ip(0)},
		},
		Select: []SelectCase{
			{Values: []int{7, 14, 3, 19, 11, 2, 17, 8, 5, 13}, Rank: 1, Want: ip(2)},
			{Values: []int{7, 14, 3, 19, 11, 2, 17, 8, 5, 13}, Rank: 4, Want: ip(7)},
			{Values: []int{7, 14, 3, 19, 11, 2, 17, 8, 5, 13}, Rank: 5, Want: ip(8)},
			{Values: []int{7, 14, 3, 19, 11, 2, 17, 8, 5, 13}, Rank: 10, Want: ip(19)},
			{Values: []int{5, 5, 5, 1, 5, 5}, Rank: 4, Want: ip(5)},
			{Values: []int{42}, Rank: 1, Want: ip(42)},
		},
		KLargest: []KLargestCase{
			{Values: []int{}, K: 0},
			{Values: []int{1}, K: 0},
			{Values: []int{1}, K: 1},
			{Values: []int{1, 2}, K: 1},
			{Values: []int{-1, -2}, K: 1},
			{Values: []int{-1, -2, 3}, K: 2},
			{Values: []int{1, 2, 3}, K: 2},
			{Values: []int{3, 2, 1}, K: 2},
			{Values: []int{3, 3, 3, 3}, K: 2},
			{Values: []int{4, 1, 3, 2, 3}, K: 2},
			{Values: []int{4, 5, 1, 3, 2, 3}, K: 4},
			{Values: []int{9, 3, 6, 1, 7, 3, 4, 5}, K: 4},
		},
		Seam: []SeamCase{
			{Name: "3x3", Grid: [][]float64{{3, 1, 4}, {1, 5, 9}, {2, 6, 5}}, Want: fp(4)},
			{Name: "single-row", Grid: [][]float64{{4, 2, 7, 2}}, Want: fp(2)},
			{Name: "single-column", Grid: [][]float64{{1}, {2}, {3}}, Want: fp(6)},
			{Name: "flat", Grid: [][]float64{{0, 0, 0}, {0, 0, 0}}, Want: fp(0)},
			{Name: "zigzag", Grid: [][]float64{
				{9, 1, 9, 9, 9},
				{9, 9, 1, 9, 9},
				{9, 9, 9, 1, 9},
				{9, 9, 1, 9, 9},
			}, Want: fp(4)},
		},
		Shortest: []GraphCase{
			{
				Name:      "5-cycle",
				GraphSpec: GraphSpec{Vertices: 5, Edges: [][]float64{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}},
				Want:      map[int]float64{0: 0, 1: 1, 2: 2, 3: 2, 4: 1},
			},
			{
				Name:      "triangle",
				GraphSpec: GraphSpec{Vertices: 3, Edges: [][]float64{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}}},
				Want:      map[int]float64{0: 0, 1: 1, 2: 3},
			},
			{
				Name: "directed",
				GraphSpec: GraphSpec{Vertices: 5, Directed: true, Edges: [][]float64{
					{0, 1, 2}, {0, 2, 1}, {2, 1, 1}, {1, 3, 3}, {2, 3, 5}, {4, 0, 1},
				}},
				Want: map[int]float64{0: 0, 1: 2, 2: 1, 3: 5},
			},
			{
				Name:      "source-out-of-range",
				GraphSpec: GraphSpec{Vertices: 2, Edges: [][]float64{{0, 1}}},
				Source:    7,
				Want:      map[int]float64{},
			},
		},
	}
	if !large {
		return s
	}

	s.RodCut = append(s.RodCut,
		RodCutCase{Length: 15, Prices: []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30, 31, 32, 33, 34, 35}, Want: ip(43)},
		RodCutCase{Length: 20, Prices: []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40}, Want: ip(60)},
		RodCutCase{Length: 12, Prices: []int{3, 5, 8, 9, 10, 17, 17, 20, 24, 30, 31, 32}, Want: ip(36)},
		RodCutCase{Length: 8, Prices: []int{2, 5, 7, 8, 10, 15, 16, 18}, Want: ip(20)},
		RodCutCase{Length: 10, Prices: []int{2, 5, 7, 8, 10, 15, 16, 18, 20, 25}, Want: ip(25)},
		RodCutCase{Length: 7, Prices: []int{3, 7, 10, 13, 16, 20, 23}, Want: ip(24)},
		RodCutCase{Length: 5, Prices: []int{2, 4, 6, 8, 10}, Want: ip(10)},
		RodCutCase{Length: 6, Prices: []int{3, 6, 9, 12, 15, 18}, Want: ip(18)},
		RodCutCase{Length: 9, Prices: []int{4, 8, 12, 16, 20, 24, 28, 32, 36}, Want: ip(36)},
		RodCutCase{Length: 11, Prices: []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30, 31}, Want: ip(31)},
	)
	s.Knapsack = append(s.Knapsack,
		KnapsackCase{Weights: []int{7, 3, 4, 5, 6, 8, 2, 9, 1}, Values: []int{10, 5, 6, 8, 12, 15, 3, 18, 2}, Capacity: 20, Want: ip(38)},
		KnapsackCase{Weights: []int{10, 15, 20, 25, 30}, Values: []int{100, 90, 120, 80, 70}, Capacity: 40, Want: ip(220)},
		KnapsackCase{Weights: []int{5, 10, 15, 20, 25}, Values: []int{50, 60, 70, 80, 90}, Capacity: 50, Want: ip(260)},
		KnapsackCase{Weights: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Values: []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30}, Capacity: 25, Want: ip(71)},
		KnapsackCase{Weights: []int{2, 3, 5, 7, 11, 13}, Values: []int{5, 8, 14, 20, 30, 35}, Capacity: 20, Want: ip(55)},
		KnapsackCase{Weights: []int{4, 5, 6, 7, 8, 9, 10}, Values: []int{8, 10, 12, 14, 16, 18, 20}, Capacity: 30, Want: ip(60)},
		KnapsackCase{Weights: []int{3, 4, 5, 6, 7, 8}, Values: []int{6, 8, 10, 12, 14, 16}, Capacity: 18, Want: ip(36)},
		KnapsackCase{Weights: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, Values: []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}, Capacity: 5, Want: ip(10)},
		KnapsackCase{Weights: []int{5, 5, 5, 5, 5}, Values: []int{10, 10, 10, 10, 10}, Capacity: 12, Want: ip(20)},
		KnapsackCase{Weights: []int{8, 9, 10, 11, 12}, Values: []int{16, 18, 20, 22, 24}, Capacity: 25, Want: ip(46)},
	)
	s.Unbounded = append(s.Unbounded,
		KnapsackCase{Weights: []int{7, 3, 4, 5, 6, 8, 2, 9, 1}, Values: []int{10, 5, 6, 8, 12, 15, 3, 18, 2}, Capacity: 20, Want: ip(40)},
		KnapsackCase{Weights: []int{10, 15, 20, 25, 30}, Values: []int{100, 90, 120, 80, 70}, Capacity: 40, Want: ip(400)},
		KnapsackCase{Weights: []int{5, 10, 15, 20, 25}, Values: []int{50, 60, 70, 80, 90}, Capacity: 50, Want: ip(500)},
		KnapsackCase{Weights: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Values: []int{1, 5, 8, 9, 10, 17, 17, 20, 24, 30}, Capacity: 25, Want: ip(73)},
		KnapsackCase{Weights: []int{2, 3, 5, 7, 11, 13}, Values: []int{5, 8, 14, 20, 30, 35}, Capacity: 20, Want: ip(56)},
		KnapsackCase{Weights: []int{4, 5, 6, 7, 8, 9, 10}, Values: []int{8, 10, 12, 14, 16, 18, 20}, Capacity: 30, Want: ip(60)},
		KnapsackCase{Weights: []int{3, 4, 5, 6, 7, 8}, Values: []int{6, 8, 10, 12, 14, 16}, Capacity: 18, Want: ip(36)},
		KnapsackCase{Weights: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, Values: []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}, Capacity: 5, Want: ip(10)},
		KnapsackCase{Weights: []int{5, 5, 5, 5, 5}, Values: []int{10, 10, 10, 10, 10}, Capacity: 12, Want: ip(20)},
		KnapsackCase{Weights: []int{8, 9, 10, 11, 12}, Values: []int{16, 18, 20, 22, 24}, Capacity: 25, Want: ip(50)},
	)

	return s
}
