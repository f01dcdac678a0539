package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transitnet/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("flow: source and sink are the same vertex")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d-%d: %d", e.From, e.To, e.Cap)
}

// CapacityFn maps an edge to its capacity.
type CapacityFn func(e core.Edge) int64

// FlowOptions configures EdmondsKarp.
//   - Capacity: per-edge capacity, default the edge weight.
type FlowOptions struct {
	Capacity CapacityFn
}

// Option configures FlowOptions.
type Option func(*FlowOptions)

// WithCapacity sets the capacity function. A nil fn keeps the default.
func WithCapacity(fn CapacityFn) Option {
	return func(o *FlowOptions) {
		if fn != nil {
			o.Capacity = fn
		}
	}
}

// WithUnitCapacity gives every edge capacity 1, so the flow value is the
// number of edge-disjoint paths.
func WithUnitCapacity() Option {
	return WithCapacity(func(core.Edge) int64 { return 1 })
}

// DefaultOptions uses edge weights as capacities.
func DefaultOptions() FlowOptions {
	return FlowOptions{Capacity: func(e core.Edge) int64 { return e.Weight }}
}

// Result is a maximum flow with a matching minimum cut.
type Result struct {
	// Value is the total flow from source to sink.
	Value int64

	// Cut holds the edges separating the source side from the sink side,
	// From < To, sorted. Its total capacity equals Value.
	Cut []core.Edge
}
