package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/transitnet/core"
)

func TestAddVertex_Bounds(t *testing.T) {
	g := core.NewGraph()
	MustFalse(t, g.AddVertex(0), "AddVertex(0)")
	MustFalse(t, g.AddVertex(-3), "AddVertex(-3)")
	MustFalse(t, g.AddVertex(core.DefaultMaxVertices+1), "AddVertex(max+1)")
	MustTrue(t, g.AddVertex(core.DefaultMaxVertices), "AddVertex(max)")
	MustTrue(t, g.AddVertex(core.DefaultMaxVertices), "AddVertex(max) again")
	MustEqualInt(t, g.VertexCount(), 1, "VertexCount")
	MustEqualInt(t, g.HighWater(), core.DefaultMaxVertices, "HighWater")

	unbounded := core.NewGraph(core.WithMaxVertices(0))
	MustTrue(t, unbounded.AddVertex(10_000), "AddVertex unbounded")
}

func TestAddEdge_SymmetricAndNoSelfLoop(t *testing.T) {
	g := NewLine(t, 3, Weight2)
	MustWeight(t, g, 1, 2, Weight2)
	MustWeight(t, g, 2, 3, Weight2)

	MustFalse(t, g.AddEdge(1, 1, Weight1), "AddEdge self-loop")
	MustFalse(t, g.HasEdge(1, 1), "HasEdge(1,1)")
	MustFalse(t, g.AddEdge(1, 9, Weight1), "AddEdge to missing vertex")
	MustFalse(t, g.AddEdge(1, 3, -1), "AddEdge negative weight")
	MustEqualInt(t, g.EdgeCount(), 2, "EdgeCount")
	MustNoError(t, g.Validate(), "Validate")
}

func TestAddEdge_MinWeightReconciliation(t *testing.T) {
	g := NewLine(t, 2, Weight5)

	MustTrue(t, g.AddEdge(1, 2, Weight7), "AddEdge heavier")
	MustWeight(t, g, 1, 2, Weight5)

	MustTrue(t, g.AddEdge(2, 1, Weight3), "AddEdge lighter reversed")
	MustWeight(t, g, 1, 2, Weight3)

	MustTrue(t, g.AddEdge(1, 2, Weight0), "AddEdge zero")
	MustWeight(t, g, 1, 2, Weight0)

	MustEqualInt(t, g.Degree(1), 1, "Degree(1)")
	MustEqualInt(t, g.Degree(2), 1, "Degree(2)")
	MustEqualInt(t, g.EdgeCount(), 1, "EdgeCount")
}

func TestRemoveVertex_ScrubsAdjacency(t *testing.T) {
	g := NewLine(t, 4, Weight1)
	MustTrue(t, g.AddEdge(1, 3, Weight1), "AddEdge(1,3)")

	MustTrue(t, g.RemoveVertex(3), "RemoveVertex(3)")
	MustFalse(t, g.HasVertex(3), "HasVertex(3)")
	MustFalse(t, g.RemoveVertex(3), "RemoveVertex(3) again")
	for _, id := range []int{1, 2, 4} {
		for _, n := range g.Neighbors(id) {
			if n.ID == 3 {
				t.Fatalf("vertex %d still lists removed vertex 3", id)
			}
		}
	}
	MustEqualInt(t, g.Degree(3), 0, "Degree(3)")
	MustEqualInt(t, g.EdgeCount(), 1, "EdgeCount")
	MustEqualInts(t, g.Vertices(), []int{1, 2, 4}, "Vertices")
	MustFalse(t, g.AddEdge(2, 3, Weight1), "AddEdge to removed vertex")
	MustNoError(t, g.Validate(), "Validate")
}

func TestImplicitVertices(t *testing.T) {
	g := core.NewGraph(core.WithImplicitVertices())
	MustTrue(t, g.AddVertex(4), "AddVertex(4)")

	// ids below the high-water mark count as vertices without being added
	MustTrue(t, g.HasVertex(2), "HasVertex(2)")
	MustTrue(t, g.AddEdge(2, 3, Weight1), "AddEdge(2,3)")
	MustFalse(t, g.AddEdge(4, 5, Weight1), "AddEdge above high-water")
	MustEqualInts(t, g.Vertices(), []int{1, 2, 3, 4}, "Vertices")

	MustTrue(t, g.RemoveVertex(2), "RemoveVertex(2)")
	MustFalse(t, g.HasVertex(2), "HasVertex(2) after remove")
	MustFalse(t, g.HasEdge(3, 2), "HasEdge(3,2)")
	MustEqualInt(t, g.VertexCount(), 3, "VertexCount")

	MustTrue(t, g.AddVertex(2), "AddVertex(2) revive")
	MustTrue(t, g.AddEdge(2, 3, Weight2), "AddEdge(2,3) revived")
	MustWeight(t, g, 2, 3, Weight2)
}

func TestNeighbors_InsertionOrderAndCopy(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{1, 2, 3, 4} {
		g.AddVertex(id)
	}
	g.AddEdge(1, 4, Weight1)
	g.AddEdge(1, 2, Weight2)
	g.AddEdge(1, 3, Weight3)

	ns := g.Neighbors(1)
	got := make([]int, len(ns))
	for i, n := range ns {
		got[i] = n.ID
	}
	MustEqualInts(t, got, []int{4, 2, 3}, "Neighbors order")

	ns[0].Weight = 99
	MustWeight(t, g, 1, 4, Weight1)

	var seen []int
	g.ForEachNeighbor(1, func(n core.Neighbor) bool {
		seen = append(seen, n.ID)
		return len(seen) < 2
	})
	MustEqualInts(t, seen, []int{4, 2}, "ForEachNeighbor early stop")
	MustTrue(t, g.Neighbors(42) == nil, "Neighbors(unknown)")
}

func TestEdges_OncePerPairSorted(t *testing.T) {
	g := NewLine(t, 3, Weight1)
	g.AddEdge(3, 1, Weight5)

	edges := g.Edges()
	want := []core.Edge{{From: 1, To: 2, Weight: 1}, {From: 1, To: 3, Weight: 5}, {From: 2, To: 3, Weight: 1}}
	if len(edges) != len(want) {
		t.Fatalf("Edges: want %v; got %v", want, edges)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("Edges[%d]: want %v; got %v", i, want[i], edges[i])
		}
	}
}

func TestPathWeight(t *testing.T) {
	g := NewLine(t, 4, Weight2)

	w, ok := g.PathWeight(core.Path{1, 2, 3, 4})
	MustTrue(t, ok, "PathWeight ok")
	MustEqualInt(t, int(w), 6, "PathWeight")

	w, ok = g.PathWeight(core.Path{2})
	MustTrue(t, ok && w == 0, "PathWeight single")

	_, ok = g.PathWeight(core.Path{1, 3})
	MustFalse(t, ok, "PathWeight gap")
	_, ok = g.PathWeight(nil)
	MustFalse(t, ok, "PathWeight empty")
}

func TestAddWeights_Saturates(t *testing.T) {
	MustEqualInt(t, int(core.AddWeights(2, 3)), 5, "AddWeights small")
	MustTrue(t, core.AddWeights(math.MaxInt64-1, 5) == math.MaxInt64, "AddWeights saturates")
	MustTrue(t, core.AddWeights(math.MaxInt64, 0) == math.MaxInt64, "AddWeights at max")

	g := NewLine(t, 3, math.MaxInt64-1)
	w, ok := g.PathWeight(core.Path{1, 2, 3})
	MustTrue(t, ok, "PathWeight ok")
	MustTrue(t, w == math.MaxInt64, "PathWeight saturates")
}

// TestRandomMutations_KeepInvariants drives seeded random AddEdge/RemoveVertex
// sequences and checks symmetry and edge accounting after every step.
func TestRandomMutations_KeepInvariants(t *testing.T) {
	const n = 12
	for _, implicit := range []bool{false, true} {
		for seed := int64(1); seed <= 40; seed++ {
			rng := rand.New(rand.NewSource(seed))
			var opts []core.GraphOption
			if implicit {
				opts = append(opts, core.WithImplicitVertices())
			}
			g := core.NewGraph(opts...)
			for id := 1; id <= n; id++ {
				g.AddVertex(id)
			}

			for step := 0; step < 150; step++ {
				u, v := 1+rng.Intn(n), 1+rng.Intn(n)
				switch rng.Intn(10) {
				case 0:
					g.RemoveVertex(u)
				case 1:
					g.AddVertex(u)
				default:
					g.AddEdge(u, v, int64(rng.Intn(20)))
				}
				if err := g.Validate(); err != nil {
					t.Fatalf("implicit=%v seed=%d step=%d: Validate: %v", implicit, seed, step, err)
				}
				if got := len(g.Edges()); got != g.EdgeCount() {
					t.Fatalf("implicit=%v seed=%d step=%d: len(Edges)=%d EdgeCount=%d",
						implicit, seed, step, got, g.EdgeCount())
				}
			}
		}
	}
}

func TestPath_String(t *testing.T) {
	if got := (core.Path{1, 3, 4}).String(); got != "1 -> 3 -> 4" {
		t.Fatalf("String: got %q", got)
	}
	if got := core.Path(nil).String(); got != "(none)" {
		t.Fatalf("String empty: got %q", got)
	}
	MustTrue(t, core.Path(nil).Empty(), "Empty")
}

func TestClone_IsIndependent(t *testing.T) {
	g := NewLine(t, 3, Weight2)
	c := g.Clone()

	c.AddEdge(1, 2, Weight1)
	c.RemoveVertex(3)

	MustWeight(t, g, 1, 2, Weight2)
	MustTrue(t, g.HasVertex(3), "original keeps vertex 3")
	MustEqualInt(t, g.EdgeCount(), 2, "original EdgeCount")
	MustEqualInt(t, c.EdgeCount(), 1, "clone EdgeCount")
	MustNoError(t, c.Validate(), "clone Validate")
}

func TestClear_KeepsOptions(t *testing.T) {
	g := core.NewGraph(core.WithMaxVertices(5))
	g.AddVertex(5)
	g.Clear()

	st := g.Stats()
	MustEqualInt(t, st.VertexCount, 0, "VertexCount")
	MustEqualInt(t, st.HighWater, 0, "HighWater")
	MustEqualInt(t, st.MaxVertices, 5, "MaxVertices")
	MustFalse(t, g.AddVertex(6), "AddVertex above ceiling")
}
