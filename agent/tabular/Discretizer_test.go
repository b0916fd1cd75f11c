package tabular

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func testGrid(t *testing.T) *Grid {
	t.Helper()

	grid, err := NewGrid([]r1.Interval{
		{Min: -4.8, Max: 4.8},
		{Min: -1.0, Max: 1.0},
		{Min: -0.418, Max: 0.418},
		{Min: -0.873, Max: 0.873},
	}, []int{4, 4, 12, 12})
	if err != nil {
		t.Fatalf("could not create grid: %v", err)
	}
	return grid
}

func TestGridDiscretizeDeterministic(t *testing.T) {
	grid := testGrid(t)
	obs := mat.NewVecDense(4, []float64{0.3, -0.2, 0.01, -0.5})

	first := grid.Discretize(obs)
	second := grid.Discretize(obs)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("dimension %d: got bucket %d then %d for the same "+
				"observation", i, first[i], second[i])
		}
	}
}

func TestGridDiscretizeInRange(t *testing.T) {
	grid := testGrid(t)
	buckets := grid.Buckets()

	// Observations far outside the configured intervals must still
	// produce valid bucket indices
	observations := []*mat.VecDense{
		mat.NewVecDense(4, []float64{0, 0, 0, 0}),
		mat.NewVecDense(4, []float64{-100, -100, -100, -100}),
		mat.NewVecDense(4, []float64{100, 100, 100, 100}),
		mat.NewVecDense(4, []float64{4.8, 1.0, 0.418, 0.873}),
		mat.NewVecDense(4, []float64{-4.8, -1.0, -0.418, -0.873}),
	}

	for _, obs := range observations {
		state := grid.Discretize(obs)
		for i, bucket := range state {
			if bucket < 0 || bucket >= buckets[i] {
				t.Errorf("observation %v dimension %d: bucket %d outside "+
					"[0, %d)", mat.Formatted(obs.T()), i, bucket, buckets[i])
			}
		}
	}
}

func TestGridDiscretizeMonotonic(t *testing.T) {
	grid := testGrid(t)

	// Sweep each dimension upward; bucket indices must never decrease
	for dim := 0; dim < grid.Dims(); dim++ {
		previous := -1
		for value := -2.0; value <= 2.0; value += 0.01 {
			obs := mat.NewVecDense(4, nil)
			obs.SetVec(dim, value)

			bucket := grid.Discretize(obs)[dim]
			if bucket < previous {
				t.Fatalf("dimension %d: bucket decreased from %d to %d at "+
					"value %v", dim, previous, bucket, value)
			}
			previous = bucket
		}
	}
}

func TestGridFromEdges(t *testing.T) {
	grid, err := NewGridFromEdges(
		[]r1.Interval{{Min: -2.0, Max: 2.0}},
		[][]float64{{0.0, 1.0}},
	)
	if err != nil {
		t.Fatalf("could not create grid: %v", err)
	}

	cases := []struct {
		value  float64
		bucket int
	}{
		{-5.0, 0},  // clipped to -2, below the first boundary
		{-0.1, 0},  // below the first boundary
		{0.0, 1},   // on a boundary: falls into the upper bucket
		{0.5, 1},   // between boundaries
		{1.5, 2},   // above the last boundary
		{100.0, 2}, // clipped to 2, last bucket
	}

	for _, c := range cases {
		obs := mat.NewVecDense(1, []float64{c.value})
		if got := grid.Discretize(obs)[0]; got != c.bucket {
			t.Errorf("value %v: expected bucket %d, got %d", c.value,
				c.bucket, got)
		}
	}
}

func TestGridConfigurationErrors(t *testing.T) {
	interval := r1.Interval{Min: -1.0, Max: 1.0}

	if _, err := NewGrid([]r1.Interval{interval}, []int{0}); err == nil {
		t.Error("expected error for zero bucket count")
	}
	if _, err := NewGrid([]r1.Interval{{Min: 1.0, Max: -1.0}},
		[]int{4}); err == nil {
		t.Error("expected error for empty interval")
	}
	if _, err := NewGrid([]r1.Interval{interval}, []int{4, 4}); err == nil {
		t.Error("expected error for mismatched dimension counts")
	}
	if _, err := NewGridFromEdges([]r1.Interval{interval},
		[][]float64{{0.5, 0.5}}); err == nil {
		t.Error("expected error for non-increasing boundaries")
	}
}
