package patternview

import (
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patterngraph"
	"github.com/relateby/pattern-go/reconcile"
)

// UnfoldGraph calls expand on every seed to obtain a list of patterns,
// merges all of them under policy via patterngraph.FromPatternsWithPolicy,
// and returns the resulting view.
func UnfoldGraph[Extra, V any](classifier patterngraph.GraphClassifier[Extra, V], identify func(V) string, policy reconcile.Policy[V], expand func(V) []pattern.Pattern[V], seeds []V) GraphView[Extra, V] {
	var all []pattern.Pattern[V]
	for _, seed := range seeds {
		all = append(all, expand(seed)...)
	}
	graph := patterngraph.FromPatternsWithPolicy(classifier, identify, policy, all)
	return FromPatternGraph(graph)
}

// Materialize produces a fresh PatternGraph by re-running classification
// and reconciliation over the view's current elements under policy.
// Chaining view -> transform -> Materialize is safe with respect to
// classification: re-classifying an element that a transform left
// structurally unchanged yields the same class it already carried.
func Materialize[Extra, V any](classifier patterngraph.GraphClassifier[Extra, V], identify func(V) string, policy reconcile.Policy[V], view GraphView[Extra, V]) patterngraph.PatternGraph[Extra, V] {
	patterns := make([]pattern.Pattern[V], len(view.elements))
	for i, el := range view.elements {
		patterns[i] = el.Pattern
	}
	return patterngraph.FromPatternsWithPolicy(classifier, identify, policy, patterns)
}
