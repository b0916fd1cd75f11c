package tabular

// Learner assigns credit for a finished episode and applies the value
// updates to a ValueTable.
//
// Credit is assigned retrospectively from the episode outcome instead
// of through per-step bootstrapping: the i-th action of an episode
// that lasted episodeLength steps receives the target
//
//	episodeLength - i
//
// so actions further from the terminating failure receive higher
// targets, and the final action before termination receives 1. Each
// update uses its own target, so updates are independent of one
// another, but they are applied in trajectory order.
type Learner struct {
	table *ValueTable
}

// NewLearner returns a Learner that writes its updates to table
func NewLearner(table *ValueTable) *Learner {
	return &Learner{table}
}

// Apply assigns a target to every pair in trajectory and applies the
// table's update rule to each, in trajectory order. episodeLength is
// the number of steps the episode lasted.
func (l *Learner) Apply(trajectory Trajectory, episodeLength int) {
	for i, pair := range trajectory {
		target := float64(episodeLength - i)
		l.table.Update(pair.State, pair.Action, target)
	}
}
