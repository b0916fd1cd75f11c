// Package experiment implements functionality for running training
// experiments
package experiment

import (
	"github.com/defCoding/cartpole-ai/experiment/tracker"
)

// Experiment outlines structs that can run training experiments.
// Experiments feed every environment TimeStep to registered Trackers,
// which cache data in RAM to be saved to disk by Save() once the
// experiment has finished. Run() runs all configured episodes;
// RunEpisode() runs a single episode to natural termination.
type Experiment interface {
	Run()
	RunEpisode()

	// Save all tracked data to disk
	Save()

	// Register adds a new tracker.Tracker to the (possibly already
	// running) experiment
	Register(t tracker.Tracker)
}
