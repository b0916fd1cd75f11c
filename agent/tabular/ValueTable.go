package tabular

import (
	"fmt"
)

// ValueTable stores a scalar value estimate for every (State, action)
// pair encountered during training. The table grows lazily: pairs that
// have never been updated read as 0.
//
// The table is not safe for concurrent use. Training is strictly
// sequential, so no locking is done here; callers sharing a table
// across goroutines must add their own mutual exclusion around
// Get/Update pairs.
type ValueTable struct {
	values       map[string][]float64
	actions      int
	learningRate float64
}

// NewValueTable returns an empty ValueTable for the given number of
// actions. The learning rate must be in [0, 1].
func NewValueTable(actions int, learningRate float64) (*ValueTable, error) {
	if actions < 1 {
		return nil, fmt.Errorf("newValueTable: need at least one action, "+
			"got %d", actions)
	}
	if learningRate < 0.0 || learningRate > 1.0 {
		return nil, fmt.Errorf("newValueTable: learning rate %v outside "+
			"[0, 1]", learningRate)
	}

	return &ValueTable{
		values:       make(map[string][]float64),
		actions:      actions,
		learningRate: learningRate,
	}, nil
}

// Get returns the value estimate for taking action in state. Unseen
// pairs have value 0.
func (v *ValueTable) Get(state State, action int) float64 {
	v.checkAction(action)

	row, ok := v.values[state.Key()]
	if !ok {
		return 0.0
	}
	return row[action]
}

// Update moves the value estimate for (state, action) toward target by
// the table's learning rate:
//
//	value <- value + learningRate * (target - value)
//
// The target is used directly; no next-state bootstrapping is applied.
func (v *ValueTable) Update(state State, action int, target float64) {
	v.checkAction(action)

	key := state.Key()
	row, ok := v.values[key]
	if !ok {
		row = make([]float64, v.actions)
		v.values[key] = row
	}

	row[action] += v.learningRate * (target - row[action])
}

// BestAction returns the action with the highest value estimate in
// state. Ties are broken toward the lowest-numbered action, so
// repeated calls on an unmodified table always return the same action.
func (v *ValueTable) BestAction(state State) int {
	row, ok := v.values[state.Key()]
	if !ok {
		return 0
	}

	best := 0
	for action := 1; action < v.actions; action++ {
		if row[action] > row[best] {
			best = action
		}
	}
	return best
}

// Actions returns the number of actions the table stores values for
func (v *ValueTable) Actions() int {
	return v.actions
}

// States returns the number of distinct states the table has seen
func (v *ValueTable) States() int {
	return len(v.values)
}

func (v *ValueTable) checkAction(action int) {
	if action < 0 || action >= v.actions {
		panic(fmt.Sprintf("valueTable: illegal action %d ∉ [0, %d)", action,
			v.actions))
	}
}
