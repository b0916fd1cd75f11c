package tabular

// StateAction pairs a discretized state with the action that was taken
// in it
type StateAction struct {
	State  State
	Action int
}

// Trajectory is the ordered sequence of (state, action) pairs taken
// during one episode. Insertion order defines the temporal order used
// for credit assignment. Repeated identical pairs are kept as distinct
// entries.
type Trajectory []StateAction

// Recorder accumulates the Trajectory of the episode in progress
type Recorder struct {
	pairs Trajectory
}

// Record appends a (state, action) pair to the in-progress trajectory
func (r *Recorder) Record(state State, action int) {
	r.pairs = append(r.pairs, StateAction{state, action})
}

// Drain returns the recorded trajectory and clears the Recorder for
// the next episode
func (r *Recorder) Drain() Trajectory {
	pairs := r.pairs
	r.pairs = nil
	return pairs
}

// Len returns the number of pairs recorded so far this episode
func (r *Recorder) Len() int {
	return len(r.pairs)
}
