package tabular

import (
	"encoding/gob"
	"fmt"
	"os"
)

// checkpoint is the gob-encoded snapshot of a trained agent: the value
// table keyed by (state, action) and the exploration rate scalar
type checkpoint struct {
	Values  map[string][]float64
	Actions int
	Epsilon float64
}

// Save writes the agent's value table and exploration rate to filename
func (a *Agent) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create checkpoint file: %v", err)
	}
	defer file.Close()

	check := checkpoint{
		Values:  a.table.values,
		Actions: a.table.actions,
		Epsilon: a.policy.epsilon,
	}

	en := gob.NewEncoder(file)
	if err := en.Encode(check); err != nil {
		return fmt.Errorf("save: could not encode checkpoint: %v", err)
	}
	return nil
}

// Restore replaces the agent's value table contents and exploration
// rate with a previously saved checkpoint
func (a *Agent) Restore(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("restore: could not open checkpoint file: %v", err)
	}
	defer file.Close()

	var check checkpoint
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&check); err != nil {
		return fmt.Errorf("restore: could not decode checkpoint: %v", err)
	}

	if check.Actions != a.table.actions {
		return fmt.Errorf("restore: checkpoint has %d actions, agent has "+
			"%d", check.Actions, a.table.actions)
	}

	a.table.values = check.Values
	a.policy.epsilon = check.Epsilon
	return nil
}
