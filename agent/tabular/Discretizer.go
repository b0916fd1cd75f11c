package tabular

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/defCoding/cartpole-ai/utils/floatutils"
)

// State is a discretized observation: one bucket index per observation
// dimension. Bucket indices are always in [0, buckets) for each
// dimension.
type State []int

// Key encodes a State as a value-table key
func (s State) Key() string {
	var b strings.Builder
	for i, bucket := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(bucket))
	}
	return b.String()
}

// Grid discretizes continuous observations into bucket indices. Each
// observation dimension has a clipping interval and a monotonically
// increasing sequence of bucket boundaries. An observation value is
// first clipped into the interval, then assigned the index of the
// first boundary strictly exceeding it (the last bucket if no boundary
// exceeds it).
//
// Discretization is a pure function of the Grid configuration: equal
// observations always produce equal States, and a larger value in one
// dimension can never produce a smaller bucket index.
type Grid struct {
	intervals []r1.Interval
	edges     [][]float64 // boundaries per dimension, buckets-1 each
	buckets   []int
}

// NewGrid returns a Grid with buckets[i] evenly sized buckets spanning
// intervals[i] for each dimension i. Observation values outside an
// interval are clipped into it, so unbounded features (e.g. cart
// velocity) get a finite interval here.
func NewGrid(intervals []r1.Interval, buckets []int) (*Grid, error) {
	if len(intervals) != len(buckets) {
		return nil, fmt.Errorf("newGrid: got %d intervals for %d bucket "+
			"counts", len(intervals), len(buckets))
	}

	edges := make([][]float64, len(intervals))
	for i, interval := range intervals {
		if buckets[i] < 1 {
			return nil, fmt.Errorf("newGrid: dimension %d needs at least "+
				"one bucket, got %d", i, buckets[i])
		}
		if interval.Min >= interval.Max {
			return nil, fmt.Errorf("newGrid: dimension %d has empty "+
				"interval [%v, %v]", i, interval.Min, interval.Max)
		}

		width := (interval.Max - interval.Min) / float64(buckets[i])
		edges[i] = make([]float64, buckets[i]-1)
		for j := range edges[i] {
			edges[i][j] = interval.Min + width*float64(j+1)
		}
	}

	return &Grid{intervals, edges, append([]int(nil), buckets...)}, nil
}

// NewGridFromEdges returns a Grid with explicit bucket boundaries per
// dimension. A dimension with n boundaries has n+1 buckets. Boundaries
// must be strictly increasing.
func NewGridFromEdges(intervals []r1.Interval, edges [][]float64) (*Grid,
	error) {
	if len(intervals) != len(edges) {
		return nil, fmt.Errorf("newGridFromEdges: got %d intervals for %d "+
			"edge sequences", len(intervals), len(edges))
	}

	buckets := make([]int, len(edges))
	for i, dimEdges := range edges {
		if intervals[i].Min >= intervals[i].Max {
			return nil, fmt.Errorf("newGridFromEdges: dimension %d has "+
				"empty interval [%v, %v]", i, intervals[i].Min,
				intervals[i].Max)
		}
		for j := 1; j < len(dimEdges); j++ {
			if dimEdges[j] <= dimEdges[j-1] {
				return nil, fmt.Errorf("newGridFromEdges: dimension %d "+
					"boundaries must be strictly increasing at index %d", i, j)
			}
		}
		buckets[i] = len(dimEdges) + 1
	}

	copied := make([][]float64, len(edges))
	for i := range edges {
		copied[i] = append([]float64(nil), edges[i]...)
	}

	return &Grid{intervals, copied, buckets}, nil
}

// Discretize maps a continuous observation to a State. The observation
// must have one feature per configured dimension.
func (g *Grid) Discretize(obs mat.Vector) State {
	if obs.Len() != len(g.buckets) {
		panic(fmt.Sprintf("discretize: observation has %d features, grid "+
			"has %d dimensions", obs.Len(), len(g.buckets)))
	}

	state := make(State, len(g.buckets))
	for i := range state {
		value := floatutils.ClipInterval(obs.AtVec(i), g.intervals[i])

		dimEdges := g.edges[i]
		state[i] = sort.Search(len(dimEdges), func(j int) bool {
			return dimEdges[j] > value
		})
	}
	return state
}

// Buckets returns the number of buckets in each dimension
func (g *Grid) Buckets() []int {
	return append([]int(nil), g.buckets...)
}

// Dims returns the number of observation dimensions the Grid expects
func (g *Grid) Dims() int {
	return len(g.buckets)
}
