// Package dfs implements depth-first reachability over a core.Graph,
// restricted to the routes of a single airline.
//
// What:
//
//   - Connected(g, start, end, airline) answers "can a passenger fly from
//     start to end using only this airline?".
//   - The frontier holds routes (edges), not airports. It is a stack: the
//     route discovered last is explored first.
//   - Every airport is expanded at most once, so cyclic route networks
//     terminate.
//   - The search stops at the first popped route whose destination is end.
//
// Edge cases:
//
//   - start or end unknown          → false, nil
//   - start has no routes of airline → false, nil
//   - start == end                   → true only via a cycle back to start
//
// Options:
//
//   - WithContext(ctx)  cancellation, checked once per popped route
//   - WithOnVisit(fn)   observe every popped route; an error aborts
//
// Complexity:
//
//   - Time O(A + R), Memory O(A + R) where A = airports, R = routes.
//
// Package bfs offers the same contract with a FIFO frontier; both always agree
// on the answer and differ only in the order routes are visited.
package dfs
