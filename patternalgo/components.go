package patternalgo

import (
	"sort"

	"github.com/relateby/pattern-go/internal/stack"
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patternquery"
)

// ConnectedComponents partitions every node in the graph into sets
// reachable from one another under w, each component ordered by
// ascending identity, and the components themselves ordered by their
// first node's identity.
func ConnectedComponents[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V]) []Path[V] {
	visited := make(map[string]struct{})
	var components []Path[V]

	for _, n := range q.Nodes() {
		id := q.Identify(n.Value())
		if _, ok := visited[id]; ok {
			continue
		}
		comp := BFS(q, w, n)
		for _, c := range comp {
			visited[q.Identify(c.Value())] = struct{}{}
		}
		sort.Slice(comp, func(i, j int) bool {
			return q.Identify(comp[i].Value()) < q.Identify(comp[j].Value())
		})
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool {
		return q.Identify(components[i][0].Value()) < q.Identify(components[j][0].Value())
	})
	return components
}

type colorState int

const (
	white colorState = iota
	gray
	black
)

// HasCycle reports whether the graph contains a cycle under w. In
// Undirected mode a cycle is a back-edge to a visited node other than
// the immediate parent; otherwise a cycle is any edge to a node
// currently on the active DFS path (a gray node).
func HasCycle[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V]) bool {
	if w.kind == wUndirected {
		return hasCycleUndirected(q, w)
	}
	return hasCycleDirected(q, w)
}

func hasCycleUndirected[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V]) bool {
	visited := make(map[string]struct{})

	for _, start := range q.Nodes() {
		startID := q.Identify(start.Value())
		if _, ok := visited[startID]; ok {
			continue
		}
		type frame struct {
			node   pattern.Pattern[V]
			parent string
		}
		var frames stack.Stack[frame]
		frames.Push(frame{node: start, parent: ""})
		for frames.Len() > 0 {
			f, _ := frames.Pop()
			id := q.Identify(f.node.Value())
			if _, ok := visited[id]; ok {
				continue
			}
			visited[id] = struct{}{}
			for _, e := range neighbors(q, w, f.node) {
				nid := q.Identify(e.To.Value())
				if nid == f.parent {
					continue
				}
				if _, ok := visited[nid]; ok {
					return true
				}
				frames.Push(frame{node: e.To, parent: id})
			}
		}
	}
	return false
}

func hasCycleDirected[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V]) bool {
	color := make(map[string]colorState)

	var visit func(n pattern.Pattern[V]) bool
	visit = func(n pattern.Pattern[V]) bool {
		id := q.Identify(n.Value())
		color[id] = gray
		for _, e := range neighbors(q, w, n) {
			nid := q.Identify(e.To.Value())
			switch color[nid] {
			case gray:
				return true
			case white:
				if visit(e.To) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, n := range q.Nodes() {
		id := q.Identify(n.Value())
		if color[id] == white {
			if visit(n) {
				return true
			}
		}
	}
	return false
}

// TopologicalSort returns a topological ordering of the graph's nodes
// under Directed traversal via Kahn's algorithm, or false if a cycle
// exists. Among nodes with equal in-degree, the lowest identity is
// emitted first.
func TopologicalSort[Extra, V any](q patternquery.GraphQuery[Extra, V]) (Path[V], bool) {
	w := Directed[V]()
	indeg := make(map[string]int)
	nodesByID := make(map[string]pattern.Pattern[V])

	for _, n := range q.Nodes() {
		id := q.Identify(n.Value())
		nodesByID[id] = n
		if _, ok := indeg[id]; !ok {
			indeg[id] = 0
		}
	}
	for _, n := range q.Nodes() {
		for _, e := range neighbors(q, w, n) {
			indeg[q.Identify(e.To.Value())]++
		}
	}

	var ready []string
	for id, d := range indeg {
		if d == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	var order Path[V]
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, nodesByID[id])

		var freed []string
		for _, e := range neighbors(q, w, nodesByID[id]) {
			nid := q.Identify(e.To.Value())
			indeg[nid]--
			if indeg[nid] == 0 {
				freed = append(freed, nid)
			}
		}
		sort.Strings(freed)
		ready = mergeSorted(ready, freed)
	}

	if len(order) != len(nodesByID) {
		return nil, false
	}
	return order, true
}

func mergeSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
