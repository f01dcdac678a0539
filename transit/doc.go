// Package transit is the domain layer of transitnet: named stops, coloured
// routes and departure schedules kept in list.List collections, bound to a
// core.Graph whose vertices are stop ids and whose edge weights are travel
// minutes between consecutive stops.
//
// A Network is the single entry point used by the command line and the HTTP
// server. It assigns ids, keeps the graph in step with the records, and
// answers route plans:
//
//	shortest     minimum total minutes (dijkstra.ShortestPath)
//	longest      maximum total minutes over simple paths (dfs.LongestPath)
//	established  the stretch of an existing route from origin to destination
//	fewest       minimum number of hops (bfs.FewestStops)
//
// Records reference each other by id only. Removing a stop removes its vertex
// and every edge touching it; routes that listed the stop keep the id and
// render it as "unknown", the same way a deleted stop shows up on a printed
// timetable until it is reissued.
//
// A Network is not safe for concurrent use.
package transit
