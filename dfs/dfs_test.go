package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/builder"
	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dfs"
)

// buildChain creates the line 1–2–…–n with unit weights.
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		g.AddVertex(i)
	}
	for i := 1; i < n; i++ {
		g.AddEdge(i, i+1, 1)
	}

	return g
}

// buildBinaryTree creates a complete binary tree of depth d with ids 1..2^d-1.
func buildBinaryTree(depth int) *core.Graph {
	g := core.NewGraph(core.WithMaxVertices(0))
	maxD := (1 << depth) - 1
	for i := 1; i <= maxD; i++ {
		g.AddVertex(i)
		if i > 1 {
			g.AddEdge(i/2, i, 1)
		}
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(buildChain(3), 9)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_ChainOrderAndDepth(t *testing.T) {
	res, err := dfs.DFS(buildChain(4), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 2, 4: 3}, res.Depth)
	assert.Equal(t, map[int]int{2: 1, 3: 2, 4: 3}, res.Parent)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(buildChain(5), 1, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Visited, 3)
	assert.False(t, res.Visited[4])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildBinaryTree(3)
	res, err := dfs.DFS(g, 1, dfs.WithFilterNeighbor(func(id int) bool { return id != 2 }))
	require.NoError(t, err)
	assert.False(t, res.Visited[2])
	assert.False(t, res.Visited[4])
	assert.True(t, res.Visited[7])
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildChain(3)
	g.AddVertex(7)
	g.AddVertex(8)
	g.AddEdge(7, 8, 2)

	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
	assert.Equal(t, 0, res.Depth[7])
}

func TestDFS_HookErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	res, err := dfs.DFS(buildChain(3), 1, dfs.WithOnVisit(func(id int) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(3), 1, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReachable(t *testing.T) {
	g := buildChain(4)
	g.AddVertex(9)

	assert.True(t, dfs.Reachable(g, 1, 4))
	assert.True(t, dfs.Reachable(g, 4, 1))
	assert.True(t, dfs.Reachable(g, 9, 9))
	assert.False(t, dfs.Reachable(g, 1, 9))
	assert.False(t, dfs.Reachable(g, 1, 42))
	assert.False(t, dfs.Reachable(nil, 1, 2))
}

func TestReachable_MatchesFullWalk(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(14, 0.12))
		require.NoError(t, err)

		for _, a := range g.Vertices() {
			res, err := dfs.DFS(g, a)
			require.NoError(t, err)
			for _, b := range g.Vertices() {
				assert.Equal(t, res.Visited[b], dfs.Reachable(g, a, b), "seed %d: %d -> %d", seed, a, b)
			}
		}
	}
}
