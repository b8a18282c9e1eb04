package patternview

import (
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patternalgo"
	"github.com/relateby/pattern-go/patternquery"
)

// ParaGraph folds bottom-up over the view's node elements: a
// topological order comes from one patternalgo.TopologicalSort call
// over the view's query, then f is invoked for each node, in order,
// with the results already computed for its directed predecessors. It
// returns (nil, false) if the underlying relationships do not form a
// DAG; use ParaGraphFixed for cyclic graphs instead.
func ParaGraph[Extra, V, R any](view GraphView[Extra, V], f func(patternquery.GraphQuery[Extra, V], pattern.Pattern[V], []R) R) (map[string]R, bool) {
	q := view.query
	order, ok := patternalgo.TopologicalSort(q)
	if !ok {
		return nil, false
	}

	results := make(map[string]R, len(order))
	for _, n := range order {
		results[q.Identify(n.Value())] = f(q, n, directedPredecessorResults(q, n, results))
	}
	return results, true
}

// ParaGraphFixed iterates the same bottom-up fold as ParaGraph, but
// over every node each round regardless of cycles (a Jacobi-style
// fixed-point iteration: every node's result is recomputed from the
// previous round's results for its predecessors), until converged
// reports the previous and next result maps as equal. Use this when
// the underlying relationships may contain a cycle, where ParaGraph's
// single topological pass would be unsound.
func ParaGraphFixed[Extra, V, R any](view GraphView[Extra, V], init map[string]R, converged func(previous, next map[string]R) bool, f func(patternquery.GraphQuery[Extra, V], pattern.Pattern[V], []R) R) map[string]R {
	q := view.query
	nodes := q.Nodes()

	current := make(map[string]R, len(nodes))
	for k, v := range init {
		current[k] = v
	}

	for {
		next := make(map[string]R, len(nodes))
		for _, n := range nodes {
			next[q.Identify(n.Value())] = f(q, n, directedPredecessorResults(q, n, current))
		}
		if converged(current, next) {
			return next
		}
		current = next
	}
}

// directedPredecessorResults collects the results already recorded for
// every node with a directed relationship into n.
func directedPredecessorResults[Extra, V, R any](q patternquery.GraphQuery[Extra, V], n pattern.Pattern[V], results map[string]R) []R {
	selfID := q.Identify(n.Value())
	var preds []R
	for _, rel := range q.IncidentRels(n) {
		tgt, ok := q.Target(rel)
		if !ok || q.Identify(tgt.Value()) != selfID {
			continue
		}
		src, ok := q.Source(rel)
		if !ok {
			continue
		}
		if r, done := results[q.Identify(src.Value())]; done {
			preds = append(preds, r)
		}
	}
	return preds
}
