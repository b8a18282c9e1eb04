package patternview

import (
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patterngraph"
	"github.com/relateby/pattern-go/patternquery"
)

// Element pairs one classified pattern with the GraphClass it was
// classified under at snapshot time.
type Element[Extra, V any] struct {
	Class   patterngraph.GraphClass[Extra]
	Pattern pattern.Pattern[V]
}

// GraphView is a snapshot of a query plus its classified elements.
// Transforms in this package consume and produce GraphViews; only
// Materialize turns a view back into a PatternGraph.
type GraphView[Extra, V any] struct {
	query    patternquery.GraphQuery[Extra, V]
	elements []Element[Extra, V]
}

// Query returns the view's underlying read-only query. Because a
// PatternGraph is immutable, the query reflects exactly the graph this
// view was built from, regardless of any later graph mutation
// elsewhere.
func (v GraphView[Extra, V]) Query() patternquery.GraphQuery[Extra, V] { return v.query }

// Elements returns the view's classified elements, in the fixed order
// nodes, relationships, walks, annotations, other, each category itself
// ordered by identity (see patterngraph's accessors).
func (v GraphView[Extra, V]) Elements() []Element[Extra, V] {
	out := make([]Element[Extra, V], len(v.elements))
	copy(out, v.elements)
	return out
}

// FromPatternGraph builds a view from a graph: the view's query wraps
// the graph itself, and its elements are every node, relationship,
// walk, annotation, and other-classified pattern the graph holds,
// paired with their canonical classification.
func FromPatternGraph[Extra, V any](graph patterngraph.PatternGraph[Extra, V]) GraphView[Extra, V] {
	var elements []Element[Extra, V]
	for _, n := range graph.Nodes() {
		elements = append(elements, Element[Extra, V]{Class: patterngraph.Node[Extra](), Pattern: n})
	}
	for _, r := range graph.Relationships() {
		elements = append(elements, Element[Extra, V]{Class: patterngraph.Relationship[Extra](), Pattern: r})
	}
	for _, w := range graph.Walks() {
		elements = append(elements, Element[Extra, V]{Class: patterngraph.Walk[Extra](), Pattern: w})
	}
	for _, a := range graph.Annotations() {
		elements = append(elements, Element[Extra, V]{Class: patterngraph.Annotation[Extra](), Pattern: a})
	}
	for _, o := range graph.Other() {
		elements = append(elements, Element[Extra, V]{Class: patterngraph.Other[Extra](o.Extra), Pattern: o.Pattern})
	}
	return GraphView[Extra, V]{query: patternquery.New(graph), elements: elements}
}

func withElements[Extra, V any](v GraphView[Extra, V], elements []Element[Extra, V]) GraphView[Extra, V] {
	return GraphView[Extra, V]{query: v.query, elements: elements}
}
