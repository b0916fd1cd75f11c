package tabular

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/defCoding/cartpole-ai/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a ValueTable with a
// conditional, improvement-gated decay schedule.
//
// The exploration rate ε starts at 1.0 and is held there for a fixed
// number of warmup episodes so the agent explores broadly before any
// exploitation. After warmup, ε decreases by a fixed amount only when
// an episode outlasts the one before it. Exploration is given up only
// once the policy has demonstrated improvement; if performance
// stagnates, ε stays where it is.
type EGreedy struct {
	table          *ValueTable
	epsilon        float64
	decay          float64
	warmupEpisodes int
	episodes       int // episodes finished so far
	source         rand.Source
}

// NewEGreedy constructs a new EGreedy policy selecting actions from
// table, where decay is the amount subtracted from ε on demonstrated
// improvement and warmupEpisodes is the number of episodes for which
// ε is pinned at 1.0
func NewEGreedy(table *ValueTable, decay float64, warmupEpisodes int,
	seed uint64) (*EGreedy, error) {
	if decay < 0.0 || decay > 1.0 {
		return nil, fmt.Errorf("newEGreedy: decay %v outside [0, 1]", decay)
	}
	if warmupEpisodes < 0 {
		return nil, fmt.Errorf("newEGreedy: negative warmup episode count "+
			"%d", warmupEpisodes)
	}

	return &EGreedy{
		table:          table,
		epsilon:        1.0,
		decay:          decay,
		warmupEpisodes: warmupEpisodes,
		source:         rand.NewSource(seed),
	}, nil
}

// SelectAction selects an action from the ε-greedy policy: a uniformly
// random action with probability ε, and the table's best action for
// state otherwise
func (p *EGreedy) SelectAction(state State) int {
	numActions := p.table.Actions()

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(numActions)
	actionProbabilities := make([]float64, numActions)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	greedyAction := p.table.BestAction(state)
	actionProbabilities[greedyAction] += 1.0 - p.epsilon

	dist := distuv.NewCategorical(actionProbabilities, p.source)
	return int(dist.Rand())
}

// MaybeDecay finishes an episode and applies the decay rule. During
// the first warmupEpisodes episodes ε never changes, regardless of the
// episode lengths. Afterwards, ε decreases by the configured decay
// amount, floored at 0, only when currentLength is strictly greater
// than previousLength.
func (p *EGreedy) MaybeDecay(previousLength, currentLength int) {
	p.episodes++
	if p.episodes <= p.warmupEpisodes {
		return
	}

	if currentLength > previousLength {
		p.epsilon = floatutils.Max(0.0, p.epsilon-p.decay)
	}
}

// Epsilon returns the current exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}
