package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/optima/graph"
)

// Suite is a set of fixtures, one list per kernel. A nil Want means the
// expected answer is computed by the kernel's exhaustive oracle.
type Suite struct {
	RodCut    []RodCutCase   `yaml:"rodcut"`
	Knapsack  []KnapsackCase `yaml:"knapsack"`
	Unbounded []KnapsackCase `yaml:"unbounded"`
	LDS       []SeqCase      `yaml:"lds"`
	LCS       []LCSCase      `yaml:"lcs"`
	Select    []SelectCase   `yaml:"select"`
	KLargest  []KLargestCase `yaml:"klargest"`
	Seam      []SeamCase     `yaml:"seam"`
	Shortest  []GraphCase    `yaml:"shortest"`
}

// RodCutCase: prices[j-1] is the price of a piece of length j.
type RodCutCase struct {
	Name   string `yaml:"name,omitempty"`
	Length int    `yaml:"length"`
	Prices []int  `yaml:"prices"`
	Want   *int   `yaml:"want,omitempty"`
}

// KnapsackCase serves both the 0/1 and the unbounded list.
type KnapsackCase struct {
	Name     string `yaml:"name,omitempty"`
	Weights  []int  `yaml:"weights"`
	Values   []int  `yaml:"values"`
	Capacity int    `yaml:"capacity"`
	Want     *int   `yaml:"want,omitempty"`
}

// SeqCase is a sequence whose longest decreasing subsequence is checked.
type SeqCase struct {
	Name string `yaml:"name,omitempty"`
	Seq  []int  `yaml:"seq"`
	Want *int   `yaml:"want,omitempty"`
}

// LCSCase compares two strings rune by rune.
type LCSCase struct {
	Name string `yaml:"name,omitempty"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Want *int   `yaml:"want,omitempty"`
}

// SelectCase asks for the Rank-th smallest (1-indexed) of Values.
type SelectCase struct {
	Name   string `yaml:"name,omitempty"`
	Values []int  `yaml:"values"`
	Rank   int    `yaml:"rank"`
	Want   *int   `yaml:"want,omitempty"`
}

// KLargestCase asks for the K largest of Values; the answer is always
// derived by sorting.
type KLargestCase struct {
	Name   string `yaml:"name,omitempty"`
	Values []int  `yaml:"values"`
	K      int    `yaml:"k"`
}

// SeamCase is a weight grid; Want is the minimum path cost.
type SeamCase struct {
	Name string      `yaml:"name,omitempty"`
	Grid [][]float64 `yaml:"grid"`
	Want *float64    `yaml:"want,omitempty"`
}

// GraphCase is a graph, a source and optionally the expected distances.
type GraphCase struct {
	Name      string `yaml:"name,omitempty"`
	GraphSpec `yaml:",inline"`
	Source    int             `yaml:"source"`
	Want      map[int]float64 `yaml:"want,omitempty"`
}

// GraphSpec is the file form of a graph: vertex count, directedness and
// edges as [u, v, w] triples (w defaults to 1 when omitted).
//
//	vertices: 5
//	directed: false
//	edges: [[0, 1, 1], [1, 2, 1], [2, 3], [3, 4], [4, 0]]
type GraphSpec struct {
	Vertices int         `yaml:"vertices"`
	Directed bool        `yaml:"directed"`
	Edges    [][]float64 `yaml:"edges"`
}

// Build turns the description into an adjacency list.
func (s GraphSpec) Build() (*graph.AdjacencyList, error) {
	var opts []graph.Option
	if s.Directed {
		opts = append(opts, graph.WithDirected())
	}
	g, err := graph.NewAdjacencyList(s.Vertices, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFixture, err)
	}
	for i, e := range s.Edges {
		if len(e) < 2 || len(e) > 3 {
			return nil, fmt.Errorf("%w: edge %d has %d fields, want [u, v] or [u, v, w]", ErrBadFixture, i, len(e))
		}
		if e[0] != math.Trunc(e[0]) || e[1] != math.Trunc(e[1]) {
			return nil, fmt.Errorf("%w: edge %d has non-integral endpoints %v, %v", ErrBadFixture, i, e[0], e[1])
		}
		w := 1.0
		if len(e) == 3 {
			w = e[2]
		}
		if err = g.AddEdge(int(e[0]), int(e[1]), w); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrBadFixture, i, err)
		}
	}

	return g, nil
}

// LoadSuite reads a YAML fixture file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: read %s: %w", path, err)
	}
	s, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("harness: %s: %w", path, err)
	}

	return s, nil
}

// ParseSuite decodes YAML fixtures. Unknown keys are rejected; an empty
// document is an empty suite.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrBadFixture, err)
	}

	return &s, nil
}

// Size returns the total number of fixtures.
func (s *Suite) Size() int {
	return len(s.RodCut) + len(s.Knapsack) + len(s.Unbounded) + len(s.LDS) + len(s.LCS) +
		len(s.Select) + len(s.KLargest) + len(s.Seam) + len(s.Shortest)
}
