package patternquery

import (
	"sort"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patterngraph"
)

// GraphQuery is a read-only snapshot over a PatternGraph, built once at
// construction. Incidence, walk-membership, and annotation-membership
// indices are computed eagerly so later lookups read a prebuilt index
// (list-returning lookups sort a copy of it by identity) rather than
// re-scanning the graph on every call.
type GraphQuery[Extra, V any] struct {
	graph patterngraph.PatternGraph[Extra, V]

	incident    map[string][]pattern.Pattern[V]
	walkMembers map[string][]pattern.Pattern[V]
	annotates   map[string][]pattern.Pattern[V]
}

// New builds a GraphQuery snapshot over g.
func New[Extra, V any](g patterngraph.PatternGraph[Extra, V]) GraphQuery[Extra, V] {
	q := GraphQuery[Extra, V]{
		graph:       g,
		incident:    make(map[string][]pattern.Pattern[V]),
		walkMembers: make(map[string][]pattern.Pattern[V]),
		annotates:   make(map[string][]pattern.Pattern[V]),
	}

	for _, rel := range g.Relationships() {
		for _, endpoint := range rel.Elements() {
			key := g.Identify(endpoint.Value())
			q.incident[key] = append(q.incident[key], rel)
		}
	}

	for _, walk := range g.Walks() {
		seen := make(map[string]struct{})
		for _, rel := range walk.Elements() {
			for _, endpoint := range rel.Elements() {
				key := g.Identify(endpoint.Value())
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				q.walkMembers[key] = append(q.walkMembers[key], walk)
			}
		}
	}

	for _, ann := range g.Annotations() {
		if inner, ok := ann.GetElement(0); ok {
			key := g.Identify(inner.Value())
			q.annotates[key] = append(q.annotates[key], ann)
		}
	}

	return q
}

// Nodes returns every node pattern, ordered by identity.
func (q GraphQuery[Extra, V]) Nodes() []pattern.Pattern[V] { return q.graph.Nodes() }

// Relationships returns every relationship pattern, ordered by identity.
func (q GraphQuery[Extra, V]) Relationships() []pattern.Pattern[V] { return q.graph.Relationships() }

// Walks returns every walk pattern, ordered by identity.
func (q GraphQuery[Extra, V]) Walks() []pattern.Pattern[V] { return q.graph.Walks() }

// Annotations returns every annotation pattern, ordered by identity.
func (q GraphQuery[Extra, V]) Annotations() []pattern.Pattern[V] { return q.graph.Annotations() }

// Identify exposes the underlying graph's identity function, for
// callers (such as patternalgo) that need to compute a value's identity
// the same way the graph does.
func (q GraphQuery[Extra, V]) Identify(v V) string { return q.graph.Identify(v) }

// NodeByID looks up a node pattern directly by identity.
func (q GraphQuery[Extra, V]) NodeByID(id string) (pattern.Pattern[V], bool) {
	return q.graph.NodeByID(id)
}

// RelationshipByID looks up a relationship pattern directly by identity.
func (q GraphQuery[Extra, V]) RelationshipByID(id string) (pattern.Pattern[V], bool) {
	return q.graph.RelationshipByID(id)
}

// Source returns rel's first endpoint, resolved against the node
// collection stored in the graph, or false if no such node is present.
func (q GraphQuery[Extra, V]) Source(rel pattern.Pattern[V]) (pattern.Pattern[V], bool) {
	return q.endpoint(rel, 0)
}

// Target returns rel's second endpoint, resolved against the node
// collection stored in the graph, or false if no such node is present.
func (q GraphQuery[Extra, V]) Target(rel pattern.Pattern[V]) (pattern.Pattern[V], bool) {
	return q.endpoint(rel, 1)
}

func (q GraphQuery[Extra, V]) endpoint(rel pattern.Pattern[V], index int) (pattern.Pattern[V], bool) {
	child, ok := rel.GetElement(index)
	if !ok {
		var zero pattern.Pattern[V]
		return zero, false
	}
	return q.graph.NodeByID(q.graph.Identify(child.Value()))
}

// IncidentRels returns every relationship with node as either endpoint,
// ordered by identity.
func (q GraphQuery[Extra, V]) IncidentRels(node pattern.Pattern[V]) []pattern.Pattern[V] {
	return sortedByIdentity(q.incident[q.graph.Identify(node.Value())], q.graph.Identify)
}

// Degree returns the count of relationships incident to node.
func (q GraphQuery[Extra, V]) Degree(node pattern.Pattern[V]) int {
	return len(q.incident[q.graph.Identify(node.Value())])
}

// WalksContaining returns every walk that has node as an endpoint of at
// least one of its component relationships, ordered by identity.
func (q GraphQuery[Extra, V]) WalksContaining(node pattern.Pattern[V]) []pattern.Pattern[V] {
	return sortedByIdentity(q.walkMembers[q.graph.Identify(node.Value())], q.graph.Identify)
}

// CoMembers returns every other node that shares at least one walk with
// node, ordered by identity.
func (q GraphQuery[Extra, V]) CoMembers(node pattern.Pattern[V]) []pattern.Pattern[V] {
	self := q.graph.Identify(node.Value())
	seen := map[string]struct{}{self: {}}
	var out []pattern.Pattern[V]

	for _, walk := range q.walkMembers[self] {
		for _, rel := range walk.Elements() {
			for _, endpoint := range rel.Elements() {
				key := q.graph.Identify(endpoint.Value())
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, endpoint)
			}
		}
	}
	return sortedByIdentity(out, q.graph.Identify)
}

// AnnotationsOf returns every annotation whose inner element identifies
// to node, ordered by identity.
func (q GraphQuery[Extra, V]) AnnotationsOf(node pattern.Pattern[V]) []pattern.Pattern[V] {
	return sortedByIdentity(q.annotates[q.graph.Identify(node.Value())], q.graph.Identify)
}

func sortedByIdentity[V any](ps []pattern.Pattern[V], identify func(V) string) []pattern.Pattern[V] {
	out := make([]pattern.Pattern[V], len(ps))
	copy(out, ps)
	sort.Slice(out, func(i, j int) bool {
		return identify(out[i].Value()) < identify(out[j].Value())
	})
	return out
}
