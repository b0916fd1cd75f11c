package tracker

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/defCoding/cartpole-ai/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to record its
// data. If the last episode in an experiment does not finish, that
// episode's length will not be saved.
type EpisodeLength struct {
	episodeLengths []int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length whenever the timestep passed to it
// is the last timestep in an episode. All other timesteps are ignored.
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
	}
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() {
	file, err := os.Create(e.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(e.episodeLengths); err != nil {
		log.Fatalf("could not encode episode length data: %v", err)
	}
}

// LoadLengths loads and returns the episode lengths saved by an
// EpisodeLength Tracker
func LoadLengths(filename string) []int {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []int

	if err = dec.Decode(&data); err != nil {
		log.Fatalf("could not decode episode length data: %v", err)
	}

	return data
}
