package patternview

import (
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patterngraph"
	"github.com/relateby/pattern-go/patternquery"
)

// MapAllGraph applies f to every element's pattern, preserving each
// element's classification.
func MapAllGraph[Extra, V any](view GraphView[Extra, V], f func(pattern.Pattern[V]) pattern.Pattern[V]) GraphView[Extra, V] {
	out := make([]Element[Extra, V], len(view.elements))
	for i, el := range view.elements {
		out[i] = Element[Extra, V]{Class: el.Class, Pattern: f(el.Pattern)}
	}
	return withElements(view, out)
}

// MapGraph applies a per-class mapper to each element; classes with no
// entry in mappers pass through unchanged.
func MapGraph[Extra, V any](view GraphView[Extra, V], mappers map[patterngraph.ClassKind]func(pattern.Pattern[V]) pattern.Pattern[V]) GraphView[Extra, V] {
	out := make([]Element[Extra, V], len(view.elements))
	for i, el := range view.elements {
		f, ok := mappers[el.Class.Kind]
		if !ok {
			out[i] = el
			continue
		}
		out[i] = Element[Extra, V]{Class: el.Class, Pattern: f(el.Pattern)}
	}
	return withElements(view, out)
}

// MapWithContext calls f(snapshotQuery, pattern) for every element
// whose class appears in classes (or every element, when classes is
// empty). snapshotQuery is the view's query as of the start of this
// transform: later elements in the same call observe the pre-transform
// graph, not partial results from earlier elements in this call.
func MapWithContext[Extra, V any](view GraphView[Extra, V], classes []patterngraph.ClassKind, f func(patternquery.GraphQuery[Extra, V], pattern.Pattern[V]) pattern.Pattern[V]) GraphView[Extra, V] {
	var allowed map[patterngraph.ClassKind]struct{}
	if len(classes) > 0 {
		allowed = make(map[patterngraph.ClassKind]struct{}, len(classes))
		for _, c := range classes {
			allowed[c] = struct{}{}
		}
	}

	snapshot := view.query
	out := make([]Element[Extra, V], len(view.elements))
	for i, el := range view.elements {
		if allowed != nil {
			if _, ok := allowed[el.Class.Kind]; !ok {
				out[i] = el
				continue
			}
		}
		out[i] = Element[Extra, V]{Class: el.Class, Pattern: f(snapshot, el.Pattern)}
	}
	return withElements(view, out)
}

// FoldGraph reduces every (class, pattern) element with an explicit
// empty value and an associative combine, in the view's element order.
func FoldGraph[Extra, V, R any](view GraphView[Extra, V], empty R, combine func(R, R) R, f func(patterngraph.GraphClass[Extra], pattern.Pattern[V]) R) R {
	acc := empty
	for _, el := range view.elements {
		acc = combine(acc, f(el.Class, el.Pattern))
	}
	return acc
}

// substitutionKind names how FilterGraph repairs a walk or annotation
// container when one of its members fails the predicate.
type substitutionKind int

const (
	subDeleteContainer substitutionKind = iota
	subSpliceGap
	subReplaceWithSurrogate
)

// Substitution controls how FilterGraph repairs a container (walk or
// annotation) when a predicate removes one of its members.
type Substitution[V any] struct {
	kind      substitutionKind
	surrogate pattern.Pattern[V]
}

// DeleteContainer drops the entire enclosing walk or annotation when
// one of its members is removed.
func DeleteContainer[V any]() Substitution[V] { return Substitution[V]{kind: subDeleteContainer} }

// SpliceGap removes the failing member and closes the gap among its
// siblings, keeping the container itself.
func SpliceGap[V any]() Substitution[V] { return Substitution[V]{kind: subSpliceGap} }

// ReplaceWithSurrogate substitutes surrogate in place of the failing
// member, keeping the container's shape.
func ReplaceWithSurrogate[V any](surrogate pattern.Pattern[V]) Substitution[V] {
	return Substitution[V]{kind: subReplaceWithSurrogate, surrogate: surrogate}
}

// FilterGraph removes every element failing predicate. When a removed
// element was a member of a surviving walk or annotation, substitution
// decides how that container is repaired.
func FilterGraph[Extra, V any](view GraphView[Extra, V], predicate func(pattern.Pattern[V]) bool, substitution Substitution[V]) GraphView[Extra, V] {
	identify := view.query.Identify

	removed := make(map[string]struct{})
	for _, el := range view.elements {
		if !predicate(el.Pattern) {
			removed[identify(el.Pattern.Value())] = struct{}{}
		}
	}

	var out []Element[Extra, V]
	for _, el := range view.elements {
		if _, gone := removed[identify(el.Pattern.Value())]; gone {
			continue
		}
		switch el.Class.Kind {
		case patterngraph.GWalk, patterngraph.GAnnotation:
			repaired, keep := repairContainer(el.Pattern, removed, identify, substitution)
			if !keep {
				continue
			}
			out = append(out, Element[Extra, V]{Class: el.Class, Pattern: repaired})
		default:
			out = append(out, el)
		}
	}
	return withElements(view, out)
}

func repairContainer[V any](p pattern.Pattern[V], removed map[string]struct{}, identify func(V) string, substitution Substitution[V]) (pattern.Pattern[V], bool) {
	children := p.Elements()
	anyRemoved := false
	for _, c := range children {
		if _, gone := removed[identify(c.Value())]; gone {
			anyRemoved = true
			break
		}
	}
	if !anyRemoved {
		return p, true
	}
	if substitution.kind == subDeleteContainer {
		return pattern.Pattern[V]{}, false
	}

	var next []pattern.Pattern[V]
	for _, c := range children {
		if _, gone := removed[identify(c.Value())]; !gone {
			next = append(next, c)
			continue
		}
		if substitution.kind == subReplaceWithSurrogate {
			next = append(next, substitution.surrogate)
		}
		// subSpliceGap: drop the child, closing the gap.
	}
	return pattern.New(p.Value(), next...), true
}
