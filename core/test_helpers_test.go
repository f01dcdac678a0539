// Package core_test contains test helpers for transitnet/core.
//
// Purpose:
//   - Provide small deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/transitnet/core"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// NewLine RETURNS a graph with vertices 1..n and edges i–(i+1) of weight w.
func NewLine(t *testing.T, n int, w int64) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for id := 1; id <= n; id++ {
		MustTrue(t, g.AddVertex(id), "AddVertex")
	}
	for id := 1; id < n; id++ {
		MustTrue(t, g.AddEdge(id, id+1, w), "AddEdge")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: want %d; got %d", op, want, got)
}

// MustEqualInts FAILS the test if the slices differ element-wise.
func MustEqualInts(t *testing.T, got, want []int, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: want %v; got %v", op, want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: want %v; got %v", op, want, got)
		}
	}
}

// MustWeight FAILS the test unless from–to exists in both directions with weight want.
func MustWeight(t *testing.T, g *core.Graph, from, to int, want int64) {
	t.Helper()

	for _, pair := range [][2]int{{from, to}, {to, from}} {
		w, ok := g.Weight(pair[0], pair[1])
		if !ok {
			t.Fatalf("Weight(%d,%d): edge missing", pair[0], pair[1])
		}
		if w != want {
			t.Fatalf("Weight(%d,%d): want %d; got %d", pair[0], pair[1], want, w)
		}
	}
}
