package patterngraph

import "github.com/relateby/pattern-go/pattern"

// GraphClassifier is a first-class strategy: a closure from a pattern
// to its GraphClass. Use [CanonicalClassifier] for the standard shape
// rules, or wrap any func(pattern.Pattern[V]) GraphClass[Extra] of your
// own via [NewClassifier].
type GraphClassifier[Extra, V any] struct {
	classify func(pattern.Pattern[V]) GraphClass[Extra]
}

// NewClassifier wraps an arbitrary classification function as a
// GraphClassifier.
func NewClassifier[Extra, V any](f func(pattern.Pattern[V]) GraphClass[Extra]) GraphClassifier[Extra, V] {
	return GraphClassifier[Extra, V]{classify: f}
}

// Classify applies the classifier to p.
func (c GraphClassifier[Extra, V]) Classify(p pattern.Pattern[V]) GraphClass[Extra] {
	return c.classify(p)
}

// CanonicalClassifier wraps classifyByShape: the standard five-category
// shape classification, with struct{} as the GOther payload. identify
// supplies the stable identity used by the walk frontier algorithm.
func CanonicalClassifier[V any](identify func(V) string) GraphClassifier[struct{}, V] {
	return NewClassifier(func(p pattern.Pattern[V]) GraphClass[struct{}] {
		return classifyByShape(p, identify)
	})
}

// FromTestNode lifts a node predicate into a two-category classifier:
// GNode when predicate holds, GOther(struct{}{}) otherwise. This
// supports predicate-based lens APIs written against the graph layer
// without a full shape classification.
func FromTestNode[V any](predicate func(pattern.Pattern[V]) bool) GraphClassifier[struct{}, V] {
	return NewClassifier(func(p pattern.Pattern[V]) GraphClass[struct{}] {
		if predicate(p) {
			return Node[struct{}]()
		}
		return Other[struct{}](struct{}{})
	})
}
