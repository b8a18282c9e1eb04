package patternalgo

import (
	"sort"

	"github.com/relateby/pattern-go/internal/stack"
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patternquery"
)

// BFS returns nodes reachable from start in level order, under w.
// Visited tracking is keyed by identity; nodes discovered at the same
// level are emitted in ascending identity order.
func BFS[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V], start pattern.Pattern[V]) []pattern.Pattern[V] {
	startID := q.Identify(start.Value())
	visited := map[string]struct{}{startID: {}}
	order := []pattern.Pattern[V]{start}
	frontier := []pattern.Pattern[V]{start}

	for len(frontier) > 0 {
		var next []pattern.Pattern[V]
		for _, cur := range frontier {
			for _, e := range neighbors(q, w, cur) {
				id := q.Identify(e.To.Value())
				if _, ok := visited[id]; ok {
					continue
				}
				visited[id] = struct{}{}
				next = append(next, e.To)
			}
		}
		sort.Slice(next, func(i, j int) bool {
			return q.Identify(next[i].Value()) < q.Identify(next[j].Value())
		})
		order = append(order, next...)
		frontier = next
	}
	return order
}

// DFS returns nodes reachable from start in depth-first order, under w,
// using an explicit stack rather than host recursion. Among siblings,
// the lowest-identity neighbor is visited first.
func DFS[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V], start pattern.Pattern[V]) []pattern.Pattern[V] {
	visited := make(map[string]struct{})
	var order []pattern.Pattern[V]
	var frames stack.Stack[pattern.Pattern[V]]
	frames.Push(start)

	for frames.Len() > 0 {
		cur, _ := frames.Pop()

		id := q.Identify(cur.Value())
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		order = append(order, cur)

		neigh := neighbors(q, w, cur)
		for i := len(neigh) - 1; i >= 0; i-- {
			frames.Push(neigh[i].To)
		}
	}
	return order
}
