package experiment

import (
	"fmt"

	"github.com/defCoding/cartpole-ai/agent"
	env "github.com/defCoding/cartpole-ai/environment"
	"github.com/defCoding/cartpole-ai/experiment/tracker"
	ts "github.com/defCoding/cartpole-ai/timestep"
)

// Online is an Experiment that trains an agent online for a fixed
// number of episodes. Episodes run strictly one after another to
// natural termination; the agent's episode-end update runs before the
// next reset.
type Online struct {
	env.Environment
	agent.Agent
	episodes int
	logEvery int
	trackers []tracker.Tracker
}

// NewOnline creates and returns a new online experiment training agent
// a on environment e for the given number of episodes. The trackers
// parameter determines what data is saved. If logEvery is positive,
// episode lengths are printed every logEvery episodes.
func NewOnline(e env.Environment, a agent.Agent, episodes, logEvery int,
	trackers ...tracker.Tracker) *Online {
	return &Online{e, a, episodes, logEvery, trackers}
}

// Register registers a tracker.Tracker with the Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode to termination, then performs the
// agent's episode-end update
func (o *Online) RunEpisode() {
	step := o.Environment.Reset()
	o.Agent.ObserveFirst(step)
	o.track(step)

	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _ = o.Environment.Step(action)

		// Observe the transition and cache it in each Tracker
		o.Agent.Observe(action, step)
		o.track(step)
	}

	o.Agent.EndEpisode()
}

// Run runs the entire experiment for all configured episodes
func (o *Online) Run() {
	for episode := 1; episode <= o.episodes; episode++ {
		o.RunEpisode()

		if o.logEvery > 0 && episode%o.logEvery == 0 {
			fmt.Printf("Finished episode %d\n", episode)
		}
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track caches the current timestep's data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}
