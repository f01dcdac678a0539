package transit

import (
	"fmt"

	"github.com/katalvlaran/transitnet/builder"
	"github.com/katalvlaran/transitnet/core"
)

// Generate builds a random demo network of size stops where each pair is
// directly connected with probability p and travel times are drawn from
// [1, 15]. Stops are laid out on a grid and named "Stop N". One route runs
// through the stops in id order wherever consecutive stops are connected,
// so the table view has something to show.
func Generate(size int, p float64, seed int64, opts ...Option) (*Network, error) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithMaxVertices(0)},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 15))},
		builder.RandomSparse(size, p),
	)
	if err != nil {
		return nil, fmt.Errorf("transit: generate: %w", err)
	}

	const cols = 10
	snap := Snapshot{Edges: g.Edges()}
	for _, id := range g.Vertices() {
		i := id - 1
		snap.Stops = append(snap.Stops, Stop{
			ID:   id,
			Name: fmt.Sprintf("Stop %d", id),
			X:    50 + 100*(i%cols),
			Y:    50 + 100*(i/cols),
		})
	}

	var line []int
	for _, id := range g.Vertices() {
		if len(line) > 0 && !g.HasEdge(line[len(line)-1], id) {
			break
		}
		line = append(line, id)
	}
	if len(line) >= 2 {
		snap.Routes = []Route{{ID: 1, Name: "Line 1", Color: Red, Stops: line}}
		snap.Schedules = []Schedule{{ID: 1, RouteID: 1, Time: "06:00"}}
	}

	return FromSnapshot(snap, opts...)
}
