// Package cartpole implements the cart-pole balancing environment
package cartpole

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	env "github.com/defCoding/cartpole-ai/environment"
	ts "github.com/defCoding/cartpole-ai/timestep"
)

const (
	// Physical constants
	Gravity        float64 = 9.8
	CartMass       float64 = 1.0
	PoleMass       float64 = 0.1
	HalfPoleLength float64 = 0.5  // half of pole length
	ForceMag       float64 = 10.0 // Magnitude of force applied to the cart
	Dt             float64 = 0.02 // seconds between state updates

	// Discrete actions: push the cart left or right
	MinDiscreteAction int = 0
	MaxDiscreteAction int = 1
)

// Cartpole implements the classic cart-pole control environment. A
// pole is attached by an unactuated joint to a cart that moves along a
// frictionless track, and the agent must keep the pole upright for as
// long as possible by pushing the cart.
//
// The state observation is continuous and consists of the cart's x
// position and velocity, followed by the pole's angle from vertical
// and the pole's angular velocity. Cart velocity and pole angular
// velocity are unbounded; the episode boundaries are determined by the
// environment Task.
//
// Actions are discrete:
//
//	Action	Meaning
//	  0		Push cart to the left
//	  1		Push cart to the right
type Cartpole struct {
	env.Task
	lastStep ts.TimeStep
	discount float64
}

// New constructs a new Cartpole environment with the given task, and
// returns the first timestep of the environment
func New(t env.Task, discount float64) (*Cartpole, ts.TimeStep) {
	state := t.Start()
	if state.Len() != 4 {
		panic(fmt.Sprintf("cartpole: starting state must have 4 features, "+
			"got %d", state.Len()))
	}

	firstStep := ts.New(ts.First, 0.0, discount, state, 0)
	cartpole := Cartpole{t, firstStep, discount}

	return &cartpole, firstStep
}

// Reset resets the environment and returns a starting state drawn from
// the environment Starter
func (c *Cartpole) Reset() ts.TimeStep {
	state := c.Start()
	startStep := ts.New(ts.First, 0, c.discount, state, 0)
	c.lastStep = startStep

	return startStep
}

// Step takes one environmental step given action a and returns the
// next state as a timestep.TimeStep and a bool indicating whether or
// not the episode has ended
func (c *Cartpole) Step(a mat.Vector) (ts.TimeStep, bool) {
	intAction := int(a.AtVec(0))
	if intAction < MinDiscreteAction || intAction > MaxDiscreteAction {
		panic(fmt.Sprintf("illegal action %v ∉ {0, 1}", intAction))
	}

	// Get state variables
	state := c.lastStep.Observation
	x, xDot := state.AtVec(0), state.AtVec(1)
	th, thDot := state.AtVec(2), state.AtVec(3)

	force := ForceMag
	if intAction == 0 {
		force = -ForceMag
	}

	// Calculate physical variables to determine the next state
	cosTheta := math.Cos(th)
	sinTheta := math.Sin(th)

	totalMass := PoleMass + CartMass
	poleMassLength := PoleMass * HalfPoleLength

	temp := (force + poleMassLength*thDot*thDot*sinTheta) / totalMass
	thAcc := (Gravity*sinTheta - cosTheta*temp) / (HalfPoleLength *
		(4.0/3.0 - PoleMass*cosTheta*cosTheta/totalMass))
	xAcc := temp - poleMassLength*thAcc*cosTheta/totalMass

	// Update state variables using Euler kinematic integration
	x += Dt * xDot
	xDot += Dt * xAcc
	th += Dt * thDot
	thDot += Dt * thAcc

	// Create the new timestep
	newState := mat.NewVecDense(4, []float64{x, xDot, th, thDot})
	reward := c.GetReward(c.lastStep.Observation, a, newState)
	nextStep := ts.New(ts.Mid, reward, c.discount, newState,
		c.lastStep.Number+1)

	// Check if the step ends the episode
	c.End(&nextStep)

	c.lastStep = nextStep
	return nextStep, nextStep.Last()
}

// DiscountSpec returns the discounting specification of the environment
func (c *Cartpole) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{c.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

// ObservationSpec returns the observation specification of the
// environment
func (c *Cartpole) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(4, nil)

	lower := []float64{-PositionLimit, math.Inf(-1), -FailAngle,
		math.Inf(-1)}
	lowerBound := mat.NewVecDense(4, lower)

	upper := []float64{PositionLimit, math.Inf(1), FailAngle, math.Inf(1)}
	upperBound := mat.NewVecDense(4, upper)

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Continuous)
}

// ActionSpec returns the action specification of the environment
func (c *Cartpole) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(1, []float64{float64(MaxDiscreteAction)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

func (c *Cartpole) String() string {
	msg := "Cartpole  |  Position: %v  |  Velocity: %v  |  Angle: %v" +
		"  |  Angular Velocity: %v"

	state := c.lastStep.Observation
	position, velocity := state.AtVec(0), state.AtVec(1)
	angle, angularVelocity := state.AtVec(2), state.AtVec(3)

	return fmt.Sprintf(msg, position, velocity, angle, angularVelocity)
}
