package tabular

import "fmt"

// Default configuration values
const (
	DefaultLearningRate     float64 = 0.05
	DefaultDiscountRate     float64 = 0.99
	DefaultExplorationDecay float64 = 0.01
	DefaultWarmupEpisodes   int     = 3000
)

// Config represents a configuration for a tabular Agent
type Config struct {
	// LearningRate scales each value-table update
	LearningRate float64

	// DiscountRate is accepted for bootstrapped extensions of the
	// update rule. The delayed credit-assignment scheme is single-step
	// and never applies it.
	DiscountRate float64

	// ExplorationDecay is the amount subtracted from ε when an episode
	// outlasts the previous one, after warmup
	ExplorationDecay float64

	// WarmupEpisodes is the number of episodes for which ε is held at
	// 1.0 regardless of performance
	WarmupEpisodes int
}

// DefaultConfig returns a Config with the default training parameters
func DefaultConfig() Config {
	return Config{
		LearningRate:     DefaultLearningRate,
		DiscountRate:     DefaultDiscountRate,
		ExplorationDecay: DefaultExplorationDecay,
		WarmupEpisodes:   DefaultWarmupEpisodes,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.LearningRate < 0.0 || c.LearningRate > 1.0 {
		return fmt.Errorf("learning rate %v outside [0, 1]", c.LearningRate)
	}
	if c.DiscountRate < 0.0 || c.DiscountRate > 1.0 {
		return fmt.Errorf("discount rate %v outside [0, 1]", c.DiscountRate)
	}
	if c.ExplorationDecay < 0.0 || c.ExplorationDecay > 1.0 {
		return fmt.Errorf("exploration decay %v outside [0, 1]",
			c.ExplorationDecay)
	}
	if c.WarmupEpisodes < 0 {
		return fmt.Errorf("negative warmup episode count %d",
			c.WarmupEpisodes)
	}
	return nil
}
