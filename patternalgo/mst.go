package patternalgo

import (
	"sort"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patternquery"
)

// MinimumSpanningTree returns the relationships forming a minimum
// spanning forest (one tree per connected component) under w, via
// Kruskal's algorithm with union-find. Candidate edges of equal cost
// break ties by the identity of the relationship pattern.
func MinimumSpanningTree[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V]) []pattern.Pattern[V] {
	type candidate struct {
		rel      pattern.Pattern[V]
		a, b     string
		cost     float64
		identity string
	}

	seen := make(map[string]struct{})
	var candidates []candidate
	for _, n := range q.Nodes() {
		for _, e := range neighbors(q, w, n) {
			relID := q.Identify(e.Via.Value())
			if _, ok := seen[relID]; ok {
				continue
			}
			seen[relID] = struct{}{}
			candidates = append(candidates, candidate{
				rel:      e.Via,
				a:        q.Identify(n.Value()),
				b:        q.Identify(e.To.Value()),
				cost:     e.Cost,
				identity: relID,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].cost != candidates[j].cost {
			return candidates[i].cost < candidates[j].cost
		}
		return candidates[i].identity < candidates[j].identity
	})

	parent := make(map[string]string)
	var find func(string) string
	find = func(x string) string {
		if _, ok := parent[x]; !ok {
			parent[x] = x
		}
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	var result []pattern.Pattern[V]
	for _, c := range candidates {
		ra, rb := find(c.a), find(c.b)
		if ra == rb {
			continue
		}
		parent[ra] = rb
		result = append(result, c.rel)
	}
	return result
}
