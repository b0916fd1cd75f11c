package cartpole

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	env "github.com/defCoding/cartpole-ai/environment"
	ts "github.com/defCoding/cartpole-ai/timestep"
)

func testEnv(t *testing.T, seed uint64, episodeSteps int) (*Cartpole,
	ts.TimeStep) {
	t.Helper()

	bounds := r1.Interval{Min: -0.05, Max: 0.05}
	starter := env.NewUniformStarter([]r1.Interval{bounds, bounds, bounds,
		bounds}, seed)

	return New(NewBalance(starter, episodeSteps), 0.99)
}

func push(direction int) mat.Vector {
	return mat.NewVecDense(1, []float64{float64(direction)})
}

func TestCartpoleReset(t *testing.T) {
	cartpole, firstStep := testEnv(t, 42, 500)

	if !firstStep.First() {
		t.Error("expected the construction timestep to be First")
	}

	step := cartpole.Reset()
	if !step.First() || step.Number != 0 {
		t.Errorf("expected a First timestep numbered 0, got %v (number %d)",
			step.StepType, step.Number)
	}
	if step.Observation.Len() != 4 {
		t.Fatalf("expected 4 state features, got %d", step.Observation.Len())
	}
	for i := 0; i < step.Observation.Len(); i++ {
		if math.Abs(step.Observation.AtVec(i)) > 0.05 {
			t.Errorf("feature %d outside starting bounds: %v", i,
				step.Observation.AtVec(i))
		}
	}
}

func TestCartpoleConstantPushFailsEpisode(t *testing.T) {
	cartpole, _ := testEnv(t, 42, 500)

	step := cartpole.Reset()
	for !step.Last() {
		previousNumber := step.Number

		var done bool
		step, done = cartpole.Step(push(1))

		if step.Number != previousNumber+1 {
			t.Fatalf("expected step number %d, got %d", previousNumber+1,
				step.Number)
		}
		if step.Reward != 1.0 {
			t.Fatalf("expected reward 1.0 on every step, got %v", step.Reward)
		}
		if done != step.Last() {
			t.Fatal("done flag disagrees with the timestep's StepType")
		}
	}

	// Pushing one direction forever must tip the pole well before the
	// step limit
	if step.Number >= 500 {
		t.Errorf("expected the pole to fall before the step limit, "+
			"episode lasted %d steps", step.Number)
	}
	if atGoal := cartpole.AtGoal(step.Observation); atGoal {
		t.Error("expected the terminal state to be a failure state")
	}
}

func TestCartpoleStepLimitEndsEpisode(t *testing.T) {
	cartpole, _ := testEnv(t, 42, 5)

	step := cartpole.Reset()
	for !step.Last() {
		step, _ = cartpole.Step(push(1))
	}

	if step.Number != 5 {
		t.Errorf("expected the step limit to end the episode at step 5, "+
			"ended at %d", step.Number)
	}
}

func TestCartpoleDeterministic(t *testing.T) {
	run := func() ts.TimeStep {
		cartpole, _ := testEnv(t, 42, 500)
		step := cartpole.Reset()
		for !step.Last() {
			step, _ = cartpole.Step(push(0))
		}
		return step
	}

	first := run()
	second := run()

	if first.Number != second.Number {
		t.Fatalf("identical runs ended at different steps: %d and %d",
			first.Number, second.Number)
	}
	if !mat.Equal(first.Observation, second.Observation) {
		t.Errorf("identical runs ended in different states: %v and %v",
			mat.Formatted(first.Observation.T()),
			mat.Formatted(second.Observation.T()))
	}
}

func TestCartpoleIllegalActionPanics(t *testing.T) {
	cartpole, _ := testEnv(t, 42, 500)
	cartpole.Reset()

	defer func() {
		if recover() == nil {
			t.Error("expected an illegal action to panic")
		}
	}()
	cartpole.Step(push(2))
}
