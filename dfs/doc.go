// Package dfs implements depth-first search traversal, path finding and
// cycle detection on an undirected core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, cancellation
//     via context.Context, depth limiting, edge filtering (WithEdgeSet) and
//     forest traversal (WithFullTraversal).
//   - Path: the tree path between two vertices. Restricted to the accepted
//     edges of an MST run it is the unique forest path, i.e. the cycle a
//     rejected edge would have closed.
//   - FindCycle: one cycle of the (filtered) graph, or nil for a forest.
//
// Complexity:
//
//   - DFS, Path, FindCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrNoPath               Path target unreachable
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
