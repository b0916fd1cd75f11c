// Package agent defines an agent interface
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/defCoding/cartpole-ai/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Policy, which chooses actions in each
// state, and a Learner, which observes the transitions those actions
// produce and updates value estimates from them.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how value
// estimates are updated.
//
// Learners in this module are episodic: they observe every transition
// of an episode and perform their value updates when the episode ends,
// rather than on each step.
type Learner interface {
	ObserveFirst(timestep.TimeStep)
	Observe(action mat.Vector, nextObs timestep.TimeStep)

	// EndEpisode performs the value updates for the episode that just
	// finished. It must be called exactly once per episode, after the
	// last timestep has been observed.
	EndEpisode()
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions given the current
// timestep's observation.
type Policy interface {
	SelectAction(t timestep.TimeStep) mat.Vector
}
