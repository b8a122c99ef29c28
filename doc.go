// Package airnet is an in-memory model of a worldwide flight network and the
// two query families it answers.
//
// What is airnet?
//
//	A directed multigraph of airports (vertices, keyed by code) joined by
//	airline routes (edges carrying a distance and a time). Built once from
//	loader records, read-only afterwards.
//		• Airline-restricted reachability: depth-first or breadth-first
//		• Minimum-cost itineraries over all airlines: by distance or by time
//		• Single-source cost trees
//
// Under the hood, everything is organised into small subpackages:
//
//	records/    typed input records, semicolon-delimited decoding, directory loader
//	core/       Graph, Airport, Route and the Build constructor
//	dfs/        LIFO reachability restricted to one airline
//	bfs/        FIFO reachability restricted to one airline
//	dijkstra/   lazy-deletion Dijkstra parameterised by Metric
//	config/     YAML + .env configuration for the CLI
//	cmd/airnet  command-line front end
//
// Quick example:
//
//	CPH ──U2──▶ LGW ──U2──▶ JFK        ORD (isolated)
//
//	g, _ := airnet.BuildNetwork(airports, routes, airlines)
//	ok, _ := airnet.IsConnected(g, "CPH", "JFK", "U2", airnet.DepthFirst)   // true
//	res, _ := airnet.ShortestPath(g, "CPH", "JFK", dijkstra.Distance)      // 6000
//
// Both reachability orders always agree on the answer; only the order in
// which routes are visited differs.
//
// Complexity (A airports, R routes):
//
//   - BuildNetwork: O(A + R)
//   - IsConnected:  O(A + R)
//   - ShortestPath: O((A + R) log R)
package airnet
