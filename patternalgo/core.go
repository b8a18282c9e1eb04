package patternalgo

import (
	"sort"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patternquery"
)

// Edge is one traversable step out of a node: the relationship pattern
// crossed, the node reached, and the cost of crossing it under the
// active Weight.
type Edge[V any] struct {
	Via  pattern.Pattern[V]
	To   pattern.Pattern[V]
	Cost float64
}

// neighbors returns every edge leaving node under w, in ascending
// identity order of the reached node.
func neighbors[Extra, V any](q patternquery.GraphQuery[Extra, V], w Weight[V], node pattern.Pattern[V]) []Edge[V] {
	nodeID := q.Identify(node.Value())
	var out []Edge[V]

	for _, rel := range q.IncidentRels(node) {
		src, okSrc := q.Source(rel)
		tgt, okTgt := q.Target(rel)
		if !okSrc || !okTgt {
			continue
		}
		isSrc := q.Identify(src.Value()) == nodeID
		isTgt := q.Identify(tgt.Value()) == nodeID

		switch w.kind {
		case wUndirected:
			if isSrc {
				out = append(out, Edge[V]{Via: rel, To: tgt, Cost: 1})
			}
			if isTgt {
				out = append(out, Edge[V]{Via: rel, To: src, Cost: 1})
			}
		case wDirected:
			if isSrc {
				out = append(out, Edge[V]{Via: rel, To: tgt, Cost: 1})
			}
		case wDirectedReverse:
			if isTgt {
				out = append(out, Edge[V]{Via: rel, To: src, Cost: 1})
			}
		case wFunction:
			if isSrc {
				if cost, ok := w.fn(rel, Forward); ok {
					out = append(out, Edge[V]{Via: rel, To: tgt, Cost: cost})
				}
			}
			if isTgt {
				if cost, ok := w.fn(rel, Reverse); ok {
					out = append(out, Edge[V]{Via: rel, To: src, Cost: cost})
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return q.Identify(out[i].To.Value()) < q.Identify(out[j].To.Value())
	})
	return out
}
