package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	ts "github.com/defCoding/cartpole-ai/timestep"
)

func episode(length int) []ts.TimeStep {
	obs := mat.NewVecDense(4, nil)

	steps := []ts.TimeStep{ts.New(ts.First, 0, 0.99, obs, 0)}
	for n := 1; n < length; n++ {
		steps = append(steps, ts.New(ts.Mid, 1, 0.99, obs, n))
	}
	return append(steps, ts.New(ts.Last, 1, 0.99, obs, length))
}

func TestEpisodeLengthTracksOnlyLastSteps(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lengths.bin")
	lengths := NewEpisodeLength(filename)

	for _, length := range []int{10, 25, 3} {
		for _, step := range episode(length) {
			lengths.Track(step)
		}
	}
	lengths.Save()

	data := LoadLengths(filename)
	expected := []int{10, 25, 3}
	if len(data) != len(expected) {
		t.Fatalf("expected %d lengths, got %d", len(expected), len(data))
	}
	for i := range expected {
		if data[i] != expected[i] {
			t.Errorf("episode %d: expected length %d, got %d", i,
				expected[i], data[i])
		}
	}
}

func TestLearningCurveRendersPNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "curve.png")
	curve := NewLearningCurve(filename, 320, 200)

	for _, length := range []int{5, 12, 9, 30} {
		for _, step := range episode(length) {
			curve.Track(step)
		}
	}
	curve.Save()

	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("expected a rendered image: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty image file")
	}
}
