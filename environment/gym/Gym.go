// Package gym provides access to OpenAI Gym environments through the
// Go bindings at https://github.com/samuelfneumann/GoGym.
//
// The cart-pole agent in this module was originally validated against
// Gym's CartPole-v0; this package exposes that simulator (and any
// other classic control environment) behind the same Environment
// interface as the native implementation, so the two can be swapped
// in the training loop.
package gym

import (
	"fmt"

	"github.com/samuelfneumann/gogym"
	"gonum.org/v1/gonum/mat"

	env "github.com/defCoding/cartpole-ai/environment"
	ts "github.com/defCoding/cartpole-ai/timestep"
)

// Env adapts a GoGym environment to the environment.Environment
// interface
type Env struct {
	gogym.Environment

	currentStep ts.TimeStep
	discount    float64
}

// New returns a new Env with the given name, which must be a legal
// name from the OpenAI Gym suite, e.g. "CartPole-v0".
func New(name string, discount float64, seed uint64) (env.Environment,
	ts.TimeStep, error) {
	goGymEnv, err := gogym.Make(name)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not create "+
			"environment: %v", err)
	}

	goGymEnv.Seed(int(seed))
	obs, err := goGymEnv.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not reset "+
			"environment: %v", err)
	}

	gymEnv := &Env{
		Environment: goGymEnv,
		discount:    discount,
	}

	t := ts.New(ts.First, 0, discount, obs, 0)
	gymEnv.currentStep = t

	return gymEnv, t, nil
}

// Reset resets the environment to some starting state
func (g *Env) Reset() ts.TimeStep {
	obs, err := g.Environment.Reset()
	if err != nil {
		panic(fmt.Sprintf("reset: could not reset Gym environment: %v", err))
	}

	t := ts.New(ts.First, 0, g.discount, obs, 0)
	g.currentStep = t

	return t
}

// Step takes a single environmental step
func (g *Env) Step(a mat.Vector) (ts.TimeStep, bool) {
	action := mat.NewVecDense(a.Len(), nil)
	action.CloneFromVec(a)

	obs, reward, done, err := g.Environment.Step(action)
	if err != nil {
		panic(fmt.Sprintf("step: could not step Gym environment: %v", err))
	}

	t := ts.New(ts.Mid, reward, g.discount, obs, g.currentStep.Number+1)
	if done {
		t.StepType = ts.Last
	}
	g.currentStep = t

	return t, done
}

// ObservationSpec returns the observation spec of the environment
func (g *Env) ObservationSpec() env.Spec {
	space := g.ObservationSpace()

	var low, high, shape *mat.VecDense
	switch space.(type) {
	case *gogym.BoxSpace, *gogym.DiscreteSpace:
		low = space.Low()[0]
		high = space.High()[0]
		shape = mat.NewVecDense(low.Len(), nil)
	default:
		panic("observationSpec: package gym supports only GoGym's " +
			"BoxSpace or DiscreteSpace")
	}

	return env.NewSpec(shape, env.Observation, low, high, env.Continuous)
}

// ActionSpec returns the action specification of the environment
func (g *Env) ActionSpec() env.Spec {
	space := g.ActionSpace()

	var low, high, shape *mat.VecDense
	switch space.(type) {
	case *gogym.BoxSpace, *gogym.DiscreteSpace:
		low = space.Low()[0]
		high = space.High()[0]
		shape = mat.NewVecDense(low.Len(), nil)
	default:
		panic("actionSpec: package gym supports only GoGym's " +
			"BoxSpace or DiscreteSpace")
	}

	return env.NewSpec(shape, env.Action, low, high, env.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (g *Env) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{g.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

// Start implements the environment.Environment interface. Starting
// states are drawn inside Gym itself, so this function panics.
func (g *Env) Start() mat.Vector {
	panic("start: cannot calculate starting state for a Gym environment")
}

// GetReward implements the environment.Environment interface. Rewards
// are calculated inside Gym itself, so this function panics.
func (g *Env) GetReward(_, _, _ mat.Vector) float64 {
	panic("getReward: cannot calculate reward for a Gym environment")
}

// End implements the environment.Environment interface. Episode
// boundaries are determined inside Gym itself, so this function
// panics.
func (g *Env) End(*ts.TimeStep) bool {
	panic("end: cannot calculate ending for a Gym environment")
}

// AtGoal implements the environment.Environment interface. This
// function panics.
func (g *Env) AtGoal(mat.Vector) bool {
	panic("atGoal: cannot calculate at goal for a Gym environment")
}

// Close performs resource cleanup after the environment is no longer
// needed
func (g *Env) Close() error {
	g.Environment.Close()
	return nil
}
