package transit

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/list"
)

// DefaultWeight is the travel time in minutes assigned between consecutive
// stops of a route added without an explicit weight.
const DefaultWeight int64 = 5

// Network binds the stop, route and schedule records to the stop graph.
type Network struct {
	stops     *list.List[Stop, int]
	routes    *list.List[Route, int]
	schedules *list.List[Schedule, int]
	graph     *core.Graph

	nextStop     int
	nextRoute    int
	nextSchedule int

	opts options
	log  *zap.Logger
}

// options collects Network configuration.
type options struct {
	graphOpts     []core.GraphOption
	defaultWeight int64
	maxDepth      int
	maxExpansions int
	searchTimeout time.Duration
	logger        *zap.Logger
}

// Option configures a Network.
type Option func(*options)

// WithLogger sets the logger used for mutations and plans. Defaults to zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithGraphOptions passes options through to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) {
		o.graphOpts = append(o.graphOpts, opts...)
	}
}

// WithDefaultWeight sets the travel time used by AddRoute. Negative values are ignored.
func WithDefaultWeight(w int64) Option {
	return func(o *options) {
		if w >= 0 {
			o.defaultWeight = w
		}
	}
}

// WithSearchLimits bounds longest-path plans: maxDepth in hops (≤ 0 means
// the stop count) and maxExpansions search steps (0 means unlimited).
func WithSearchLimits(maxDepth, maxExpansions int) Option {
	return func(o *options) {
		o.maxDepth = maxDepth
		o.maxExpansions = maxExpansions
	}
}

// WithSearchTimeout gives every longest-path plan a deadline. Zero disables it.
func WithSearchTimeout(d time.Duration) Option {
	return func(o *options) {
		o.searchTimeout = d
	}
}

// NewNetwork returns an empty network.
func NewNetwork(opts ...Option) *Network {
	o := options{defaultWeight: DefaultWeight, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return newNetwork(o)
}

func newNetwork(o options) *Network {
	return &Network{
		stops:        list.NewKeyed[Stop](),
		routes:       list.NewKeyed[Route](),
		schedules:    list.NewKeyed[Schedule](),
		graph:        core.NewGraph(o.graphOpts...),
		nextStop:     1,
		nextRoute:    1,
		nextSchedule: 1,
		opts:         o,
		log:          o.logger,
	}
}

// Graph exposes the stop graph for read-only algorithms. Callers must not mutate it.
func (n *Network) Graph() *core.Graph { return n.graph }

// Empty reports whether the network holds no stops, routes or schedules at all.
func (n *Network) Empty() bool {
	return n.stops.Len() == 0 && n.routes.Len() == 0 && n.schedules.Len() == 0
}

// Connect adds or lowers the travel time between two existing stops.
// It returns false when either stop is missing, from == to, or w < 0.
func (n *Network) Connect(from, to int, w int64) bool {
	if !n.stops.Contains(from) || !n.stops.Contains(to) {
		return false
	}
	ok := n.graph.AddEdge(from, to, w)
	if ok {
		n.log.Debug("stops connected", zap.Int("from", from), zap.Int("to", to), zap.Int64("weight", w))
	}

	return ok
}

// Stats summarises the network for status lines.
type Stats struct {
	Stops     int `json:"stops"`
	Routes    int `json:"routes"`
	Schedules int `json:"schedules"`
	Edges     int `json:"edges"`
}

// Stats returns record and edge counts.
func (n *Network) Stats() Stats {
	return Stats{
		Stops:     n.stops.Len(),
		Routes:    n.routes.Len(),
		Schedules: n.schedules.Len(),
		Edges:     n.graph.EdgeCount(),
	}
}
