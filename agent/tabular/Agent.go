// Package tabular implements a tabular agent that learns to balance
// the cart-pole through delayed, episode-end credit assignment.
//
// The agent discretizes the continuous observation into a finite grid,
// records the (state, action) pairs it takes over an episode, and
// updates its value table only after the episode terminates, assigning
// higher targets to actions taken further from the failure. Action
// selection is ε-greedy with an exploration rate that decays only when
// an episode outlasts the previous one.
package tabular

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/defCoding/cartpole-ai/environment"
	ts "github.com/defCoding/cartpole-ai/timestep"
)

// Agent ties the discretizing Grid, ValueTable, EGreedy policy,
// trajectory Recorder, and delayed-credit Learner into a single
// episodic agent
type Agent struct {
	grid     *Grid
	table    *ValueTable
	policy   *EGreedy
	learner  *Learner
	recorder *Recorder

	lastStep       ts.TimeStep
	previousLength int
}

// New creates a new tabular Agent acting in env, discretizing
// observations with grid
func New(env environment.Environment, grid *Grid, c Config,
	seed uint64) (*Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %v", err)
	}

	// Ensure actions are discrete and 1-dimensional
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("new: tabular agents support only discrete " +
			"actions")
	}
	if env.ActionSpec().Shape.Len() != 1 {
		return nil, fmt.Errorf("new: tabular agents support only " +
			"1-dimensional actions")
	}

	features := env.ObservationSpec().Shape.Len()
	if features != grid.Dims() {
		return nil, fmt.Errorf("new: environment has %d observation "+
			"features but grid has %d dimensions", features, grid.Dims())
	}

	actions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1
	table, err := NewValueTable(actions, c.LearningRate)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	policy, err := NewEGreedy(table, c.ExplorationDecay, c.WarmupEpisodes,
		seed)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	return &Agent{
		grid:     grid,
		table:    table,
		policy:   policy,
		learner:  NewLearner(table),
		recorder: &Recorder{},
	}, nil
}

// SelectAction selects an action for the observation in t using the
// agent's ε-greedy policy
func (a *Agent) SelectAction(t ts.TimeStep) mat.Vector {
	state := a.grid.Discretize(t.Observation)
	action := a.policy.SelectAction(state)

	return mat.NewVecDense(1, []float64{float64(action)})
}

// ObserveFirst observes and records the first episodic timestep
func (a *Agent) ObserveFirst(t ts.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n", t.Number)
	}

	// A leftover trajectory means the previous episode was abandoned
	// without EndEpisode; start cleanly.
	a.recorder.Drain()
	a.lastStep = t
}

// Observe records the transition produced by taking action at the
// previously observed timestep, appending the (discretized state,
// action) pair to the episode's trajectory
func (a *Agent) Observe(action mat.Vector, nextStep ts.TimeStep) {
	if action.Len() != 1 {
		fmt.Fprintf(os.Stderr, "Warning: tabular agents should not have "+
			"multi-dimensional actions (action dim = %d)\n", action.Len())
	}

	state := a.grid.Discretize(a.lastStep.Observation)
	a.recorder.Record(state, int(action.AtVec(0)))

	a.lastStep = nextStep
}

// EndEpisode drains the recorded trajectory, applies the delayed
// credit assignment to the value table, and gives the policy the
// chance to decay its exploration rate based on whether this episode
// outlasted the previous one
func (a *Agent) EndEpisode() {
	trajectory := a.recorder.Drain()
	length := len(trajectory)

	a.learner.Apply(trajectory, length)
	a.policy.MaybeDecay(a.previousLength, length)
	a.previousLength = length
}

// Epsilon returns the policy's current exploration rate
func (a *Agent) Epsilon() float64 {
	return a.policy.Epsilon()
}

// States returns the number of distinct discretized states the agent
// has values for
func (a *Agent) States() int {
	return a.table.States()
}
