// Package transitnet is an in-memory engine for public transport networks:
// stops, routes and departures on top of a weighted undirected graph, with
// trip planning, persistence and an HTTP API.
//
// What is inside?
//
//	A small stack of focused packages:
//		• Containers: ordered keyed list and FIFO queue
//		• Core graph: vertices, symmetric weighted adjacency, paths
//		• Trip search: Dijkstra (fastest), BFS (fewest stops), bounded DFS (longest)
//		• Network analysis: Floyd–Warshall travel times, spanning backbone, max-flow resilience
//		• Domain: stops, routes, schedules and the Network aggregate
//		• Persistence: text, YAML and JSON codecs, file and SQLite snapshot stores
//
// Under the hood:
//
//	list/         — List[T,K] and Queue[T]
//	core/         — Graph, Neighbor, Edge, Path
//	dijkstra/     — shortest travel time
//	bfs/          — fewest stops, level traversal
//	dfs/          — reachability and longest simple path with a search budget
//	matrix/       — dense matrices, Floyd–Warshall, travel-time Table
//	prim_kruskal/ — minimum spanning tree and forest
//	flow/         — Edmonds–Karp max flow and minimum cut
//	builder/      — seeded topology generators
//	transit/      — Stop, Route, Schedule, Network, Plan
//	codec/        — snapshot formats
//	repository/   — snapshot stores (file, sqlite)
//	config/, logging/, watcher/, server/ — the service around it
//	cmd/transitnet — command line entry point
//
// Quick ASCII example:
//
//	    1───2───3
//	        │   │
//	        5───4
//
//	Two routes sharing stop 2: the fastest trip 1 → 4 is planned over
//	whichever side is cheaper.
//
//	go install github.com/katalvlaran/transitnet/cmd/transitnet@latest
package transitnet
