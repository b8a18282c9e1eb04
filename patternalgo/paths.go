package patternalgo

import (
	"container/heap"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patternquery"
)

// Path is an ordered sequence alternating node, relationship, node, …
// from a path's start to its end.
type Path[V any] []pattern.Pattern[V]

type pqItem[V any] struct {
	id   string
	node pattern.Pattern[V]
	dist float64
}

type priorityQueue[V any] []*pqItem[V]

func (pq priorityQueue[V]) Len() int { return len(pq) }
func (pq priorityQueue[V]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq priorityQueue[V]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue[V]) Push(x any)        { *pq = append(*pq, x.(*pqItem[V])) }
func (pq *priorityQueue[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPath returns the least-cost path from start to end under w
// using Dijkstra's algorithm (w must carry non-negative costs), or
// false if end is unreachable from start. Equal-cost ties among
// frontier candidates break by ascending identity.
func ShortestPath[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V], start, end pattern.Pattern[V]) (Path[V], bool) {
	startID := q.Identify(start.Value())
	endID := q.Identify(end.Value())

	dist := map[string]float64{startID: 0}
	prevVia := map[string]pattern.Pattern[V]{}
	prevFrom := map[string]string{}
	nodes := map[string]pattern.Pattern[V]{startID: start}
	visited := map[string]struct{}{}

	pq := &priorityQueue[V]{{id: startID, node: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*pqItem[V])
		if _, ok := visited[cur.id]; ok {
			continue
		}
		visited[cur.id] = struct{}{}
		if cur.id == endID {
			break
		}

		for _, e := range neighbors(q, w, cur.node) {
			nid := q.Identify(e.To.Value())
			if _, ok := visited[nid]; ok {
				continue
			}
			nd := cur.dist + e.Cost
			if existing, ok := dist[nid]; !ok || nd < existing {
				dist[nid] = nd
				prevVia[nid] = e.Via
				prevFrom[nid] = cur.id
				nodes[nid] = e.To
				heap.Push(pq, &pqItem[V]{id: nid, node: e.To, dist: nd})
			}
		}
	}

	if _, ok := dist[endID]; !ok {
		return nil, false
	}

	var reversed Path[V]
	id := endID
	for id != startID {
		reversed = append(reversed, nodes[id])
		reversed = append(reversed, prevVia[id])
		id = prevFrom[id]
	}
	reversed = append(reversed, start)

	out := make(Path[V], len(reversed))
	for i, p := range reversed {
		out[len(reversed)-1-i] = p
	}
	return out, true
}

// AllPaths enumerates every simple path (no repeated node) from start
// to end under w, via depth-first backtracking. Results are ordered by
// ascending length, then by the identity sequence of their nodes.
func AllPaths[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V], start, end pattern.Pattern[V]) []Path[V] {
	endID := q.Identify(end.Value())
	onPath := map[string]struct{}{q.Identify(start.Value()): {}}

	var results []Path[V]
	var walk func(cur pattern.Pattern[V], soFar Path[V])
	walk = func(cur pattern.Pattern[V], soFar Path[V]) {
		if q.Identify(cur.Value()) == endID {
			found := make(Path[V], len(soFar))
			copy(found, soFar)
			results = append(results, found)
			return
		}
		for _, e := range neighbors(q, w, cur) {
			id := q.Identify(e.To.Value())
			if _, ok := onPath[id]; ok {
				continue
			}
			onPath[id] = struct{}{}
			next := make(Path[V], len(soFar), len(soFar)+2)
			copy(next, soFar)
			next = append(next, e.Via, e.To)
			walk(e.To, next)
			delete(onPath, id)
		}
	}
	walk(start, Path[V]{start})

	sortPaths(q, results)
	return results
}

func sortPaths[Extra, V any](q patternquery.GraphQuery[Extra, V], paths []Path[V]) {
	key := func(p Path[V]) string {
		s := ""
		for i := 0; i < len(p); i += 2 {
			s += q.Identify(p[i].Value()) + "/"
		}
		return s
	}
	for i := 1; i < len(paths); i++ {
		for j := i; j > 0; j-- {
			a, b := paths[j-1], paths[j]
			swap := len(a) > len(b) || (len(a) == len(b) && key(a) > key(b))
			if !swap {
				break
			}
			paths[j-1], paths[j] = paths[j], paths[j-1]
		}
	}
}
