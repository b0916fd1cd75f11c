// Package tracker implements Trackers, which record and save data
// generated while an experiment runs
package tracker

import (
	ts "github.com/defCoding/cartpole-ai/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}
