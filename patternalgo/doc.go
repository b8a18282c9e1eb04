// Package patternalgo implements graph algorithms over a
// [patternquery.GraphQuery] snapshot: traversal (BFS, DFS), shortest and
// all simple paths, connected components, cycle detection, topological
// sort, minimum spanning tree, and centrality measures.
//
// Every algorithm accepts a [Weight], which selects how relationships
// are traversed (undirected, forward-only, reverse-only, or a
// caller-supplied cost function). Where an algorithm must break a tie
// (equal BFS depth, equal path cost, equal topological candidates), it
// breaks by ascending identity order, so results are deterministic.
package patternalgo
