// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/defCoding/cartpole-ai/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() mat.Vector
}

// Ender determines whether an episode has ended. If so, End modifies
// the timestep so that its StepType field is timestep.Last.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Cardinality indicates whether the associated type is continuous or
// discrete
type Cardinality int

const (
	Discrete Cardinality = iota
	Continuous
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an action, an observation, or a discount
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

// Spec implements a specification, which tells the type, shape, and
// bounds of an action, observation, discount, or reward
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec constructs a new environment specification
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, c Cardinality) Spec {
	return Spec{shape, t, lowerBound, upperBound, c}
}

// Task implements the reward scheme and episode boundaries for taking
// actions in some environment
type Task interface {
	Starter
	Ender
	GetReward(state, action, nextState mat.Vector) float64
	AtGoal(state mat.Vector) bool
}

// Environment implements a simulated environment, which includes a
// Task to complete
type Environment interface {
	Task
	Reset() timestep.TimeStep // Resets between episodes
	Step(action mat.Vector) (timestep.TimeStep, bool)
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
