// Package bfs provides breadth-first reachability over a core.Graph,
// restricted to the routes of a single airline.
//
// What
//
//   - Connected(g, start, end, airline, opts...) (bool, error)
//   - The frontier is a FIFO queue of routes: routes are explored in the
//     order they were discovered, layer by layer away from start.
//   - Each airport's routes are enqueued at most once, so cycles terminate.
//   - The first dequeued route whose destination is end answers true.
//   - Hooks:
//   - OnEnqueue (a route joins the queue)
//   - OnVisit   (a route leaves the queue; may abort with an error)
//
// Why
//
//   - Same answer as dfs.Connected for every input; the visit order differs.
//     A breadth-first search tends to find short hops first, which makes it a
//     good default when the target is usually close to the start.
//
// Edge cases
//
//   - Unknown start or end → false, nil.
//   - start == end → true only through a cycle of airline routes.
//
// Complexity
//
//   - Time O(A + R), Memory O(A + R).
package bfs
