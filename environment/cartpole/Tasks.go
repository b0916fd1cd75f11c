package cartpole

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	env "github.com/defCoding/cartpole-ai/environment"
	ts "github.com/defCoding/cartpole-ai/timestep"
)

const (
	// FailAngle is the pole angle (in radians, from vertical) past
	// which the pole is considered to have fallen
	FailAngle float64 = 12 * 2 * math.Pi / 360

	// PositionLimit is the distance the cart may travel from the
	// center of the track before the episode ends
	PositionLimit float64 = 2.4
)

// Balance implements the cart-pole balancing task. The agent must keep
// the pole within FailAngle of vertical and the cart within
// PositionLimit of the track center for as long as possible.
//
// The reward is +1 on every step the pole remains up, including the
// terminating step, matching the OpenAI Gym CartPole reward scheme.
//
// Episodes end when the pole falls past FailAngle, when the cart
// leaves the track, or after a step limit.
type Balance struct {
	env.Starter
	stepLimiter   env.Ender
	boundsLimiter env.Ender
}

// NewBalance creates and returns a new Balance task. Starting states
// are drawn from s and episodes are cut off after episodeSteps steps.
func NewBalance(s env.Starter, episodeSteps int) *Balance {
	stepLimiter := env.NewStepLimit(episodeSteps)

	legalIntervals := []r1.Interval{
		{Min: -PositionLimit, Max: PositionLimit},
		{Min: -FailAngle, Max: FailAngle},
	}
	featureIndices := []int{0, 2}
	boundsLimiter := env.NewIntervalLimit(legalIntervals, featureIndices)

	return &Balance{s, stepLimiter, boundsLimiter}
}

// End checks if a TimeStep is the last in an episode. If so, it
// adjusts the TimeStep's StepType to timestep.Last and returns true.
// Otherwise, the function does not adjust the TimeStep and returns
// false.
func (b *Balance) End(t *ts.TimeStep) bool {
	if end := b.boundsLimiter.End(t); end {
		return true
	}
	if end := b.stepLimiter.End(t); end {
		return true
	}
	return false
}

// GetReward returns the reward for an action taken in some state,
// resulting in a transition to the state nextState
func (b *Balance) GetReward(_, _, _ mat.Vector) float64 {
	return 1.0
}

// AtGoal returns whether or not the state is a goal state. Balancing
// has no terminal goal; any state with the pole still up is a goal
// state.
func (b *Balance) AtGoal(state mat.Vector) bool {
	return math.Abs(state.AtVec(2)) < FailAngle &&
		math.Abs(state.AtVec(0)) < PositionLimit
}

// Min returns the minimum possible reward
func (b *Balance) Min() float64 {
	return 1.0
}

// Max returns the maximum possible reward
func (b *Balance) Max() float64 {
	return 1.0
}

// RewardSpec returns the reward specification for the task
func (b *Balance) RewardSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{b.Min()})
	upperBound := mat.NewVecDense(1, []float64{b.Max()})

	return env.NewSpec(shape, env.Reward, lowerBound, upperBound,
		env.Continuous)
}
