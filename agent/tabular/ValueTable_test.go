package tabular

import (
	"math"
	"testing"
)

func TestValueTableUnseenPairsAreZero(t *testing.T) {
	table, err := NewValueTable(2, 0.05)
	if err != nil {
		t.Fatalf("could not create table: %v", err)
	}

	if got := table.Get(State{3, 1, 4}, 1); got != 0.0 {
		t.Errorf("expected 0 for unseen pair, got %v", got)
	}
	if table.States() != 0 {
		t.Errorf("Get should not grow the table, have %d states",
			table.States())
	}
}

func TestValueTableUpdateMovesTowardTarget(t *testing.T) {
	table, err := NewValueTable(2, 0.05)
	if err != nil {
		t.Fatalf("could not create table: %v", err)
	}
	state := State{0, 0, 17, 22}

	// From 0 toward a target of 10 with learning rate 0.05
	table.Update(state, 0, 10.0)
	if got := table.Get(state, 0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected 0.5 after first update, got %v", got)
	}

	// Second update moves the remaining distance by the same fraction
	table.Update(state, 0, 10.0)
	expected := 0.5 + 0.05*(10.0-0.5)
	if got := table.Get(state, 0); math.Abs(got-expected) > 1e-12 {
		t.Errorf("expected %v after second update, got %v", expected, got)
	}

	// The other action in the same state is untouched
	if got := table.Get(state, 1); got != 0.0 {
		t.Errorf("expected 0 for untouched action, got %v", got)
	}
}

func TestValueTableBestAction(t *testing.T) {
	table, err := NewValueTable(2, 0.5)
	if err != nil {
		t.Fatalf("could not create table: %v", err)
	}
	state := State{1, 2}

	// Ties (including fully unseen states) break toward action 0
	for i := 0; i < 10; i++ {
		if got := table.BestAction(state); got != 0 {
			t.Fatalf("expected tied best action 0, got %d", got)
		}
	}

	table.Update(state, 1, 4.0)
	if got := table.BestAction(state); got != 1 {
		t.Errorf("expected best action 1, got %d", got)
	}

	table.Update(state, 0, 100.0)
	if got := table.BestAction(state); got != 0 {
		t.Errorf("expected best action 0, got %d", got)
	}
}

func TestValueTableConfigurationErrors(t *testing.T) {
	if _, err := NewValueTable(0, 0.05); err == nil {
		t.Error("expected error for zero actions")
	}
	if _, err := NewValueTable(2, -0.1); err == nil {
		t.Error("expected error for negative learning rate")
	}
	if _, err := NewValueTable(2, 1.5); err == nil {
		t.Error("expected error for learning rate above 1")
	}
}
