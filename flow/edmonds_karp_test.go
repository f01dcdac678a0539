package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/transitnet/builder"
	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/flow"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.ctx = context.Background()
}

func graphOf(n int, edges ...core.Edge) *core.Graph {
	g := core.NewGraph()
	for id := 1; id <= n; id++ {
		g.AddVertex(id)
	}
	for _, e := range edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}

// TestSingleEdge: 1-2 (cap=5) => maxFlow = 5, the edge is the cut.
func (s *EdmondsKarpSuite) TestSingleEdge() {
	g := graphOf(2, core.Edge{From: 1, To: 2, Weight: 5})

	res, err := flow.EdmondsKarp(s.ctx, g, 1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Value)
	require.Equal(s.T(), []core.Edge{{From: 1, To: 2, Weight: 5}}, res.Cut)
}

// TestMultiPath: two routes => flow sums their bottlenecks (3 + 2).
func (s *EdmondsKarpSuite) TestMultiPath() {
	g := graphOf(3,
		core.Edge{From: 1, To: 2, Weight: 3},
		core.Edge{From: 1, To: 3, Weight: 4},
		core.Edge{From: 3, To: 2, Weight: 2},
	)

	res, err := flow.EdmondsKarp(s.ctx, g, 1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Value)
	require.Equal(s.T(), []core.Edge{{From: 1, To: 2, Weight: 3}, {From: 2, To: 3, Weight: 2}}, res.Cut)
}

// TestUndirectedReuse: flow may use an edge against the direction it was added.
func (s *EdmondsKarpSuite) TestUndirectedReuse() {
	g := graphOf(4,
		core.Edge{From: 2, To: 1, Weight: 4},
		core.Edge{From: 3, To: 2, Weight: 4},
		core.Edge{From: 4, To: 3, Weight: 4},
	)

	res, err := flow.EdmondsKarp(s.ctx, g, 1, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), res.Value)
	require.Len(s.T(), res.Cut, 1)
}

// TestUnitCapacity counts edge-disjoint paths: a 4-cycle has two between opposite corners.
func (s *EdmondsKarpSuite) TestUnitCapacity() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(9))}, builder.Cycle(4))
	require.NoError(s.T(), err)

	res, err := flow.EdmondsKarp(s.ctx, g, 1, 3, flow.WithUnitCapacity())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Value)
	require.Len(s.T(), res.Cut, 2)
}

// TestDisconnected: no path => zero flow and an empty cut.
func (s *EdmondsKarpSuite) TestDisconnected() {
	g := graphOf(4, core.Edge{From: 1, To: 2, Weight: 1}, core.Edge{From: 3, To: 4, Weight: 1})

	res, err := flow.EdmondsKarp(s.ctx, g, 1, 4)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Value)
	require.Empty(s.T(), res.Cut)
}

// TestZeroCapacity: zero-weight edges carry nothing and never appear in the cut.
func (s *EdmondsKarpSuite) TestZeroCapacity() {
	g := graphOf(3, core.Edge{From: 1, To: 2, Weight: 0}, core.Edge{From: 1, To: 3, Weight: 2}, core.Edge{From: 3, To: 2, Weight: 1})

	res, err := flow.EdmondsKarp(s.ctx, g, 1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), res.Value)
	require.Equal(s.T(), []core.Edge{{From: 2, To: 3, Weight: 1}}, res.Cut)
}

// TestNegativeCapacity yields EdgeError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	g := graphOf(2, core.Edge{From: 1, To: 2, Weight: 3})

	_, err := flow.EdmondsKarp(s.ctx, g, 1, 2, flow.WithCapacity(func(e core.Edge) int64 { return -e.Weight }))
	var ee flow.EdgeError
	require.True(s.T(), errors.As(err, &ee), "error must be EdgeError")
	require.Equal(s.T(), 1, ee.From)
	require.Equal(s.T(), 2, ee.To)
	require.Equal(s.T(), int64(-3), ee.Cap)
}

// TestValidation covers the sentinel errors.
func (s *EdmondsKarpSuite) TestValidation() {
	g := graphOf(2, core.Edge{From: 1, To: 2, Weight: 1})

	_, err := flow.EdmondsKarp(s.ctx, nil, 1, 2)
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)
	_, err = flow.EdmondsKarp(s.ctx, g, 7, 2)
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)
	_, err = flow.EdmondsKarp(s.ctx, g, 1, 7)
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)
	_, err = flow.EdmondsKarp(s.ctx, g, 1, 1)
	require.ErrorIs(s.T(), err, flow.ErrSameEndpoints)
}

// TestCancelled: a cancelled context aborts before the first augmentation.
func (s *EdmondsKarpSuite) TestCancelled() {
	g := graphOf(2, core.Edge{From: 1, To: 2, Weight: 1})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := flow.EdmondsKarp(ctx, g, 1, 2)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestCutMatchesValue: on random networks the cut capacity equals the flow value.
func (s *EdmondsKarpSuite) TestCutMatchesValue() {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
			builder.RandomSparse(15, 0.3))
		require.NoError(s.T(), err)

		res, err := flow.EdmondsKarp(s.ctx, g, 1, 15)
		require.NoError(s.T(), err)
		var sum int64
		for _, e := range res.Cut {
			sum += e.Weight
		}
		require.Equal(s.T(), res.Value, sum, "seed %d", seed)
	}
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
