// File: types.go
// Role: options and sentinel errors for the Dijkstra runner.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNoSource indicates that Dijkstra was called without a Source option.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex id, valid only when HasSource is set.
// Target           – optional vertex id; the search stops once it is settled.
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – cap on distances to explore. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default math.MaxInt64.
type Options struct {
	Source           int
	HasSource        bool
	Target           int
	HasTarget        bool
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// WithTarget makes the search stop once id has its final distance.
// Distances of vertices not yet settled at that moment are upper bounds.
func WithTarget(id int) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed it are not explored.
// A negative value panics with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// A non-positive threshold panics with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source, no caps and no predecessor map.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
