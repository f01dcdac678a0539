// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes builder behaviour.
type BuilderOption func(*builderConfig)

// WithFirstID numbers vertices from id instead of 1. Values below 1 are ignored.
func WithFirstID(id int) BuilderOption {
	return func(c *builderConfig) {
		if id >= 1 {
			c.firstID = id
		}
	}
}

// WithRand sets the RNG used by stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWeightFn sets the edge weight generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
