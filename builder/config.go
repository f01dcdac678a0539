// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// firstID is the id of vertex index 0.
	firstID int
	// rng for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// weightFn produces each edge weight.
	weightFn WeightFn
}

const (
	defaultFirstID = 1
)

// newBuilderConfig applies opts over deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		firstID:  defaultFirstID,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightFn == nil {
		cfg.weightFn = DefaultWeightFn
	}

	return cfg
}

// id maps a vertex index to its id.
func (c builderConfig) id(i int) int { return c.firstID + i }

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
