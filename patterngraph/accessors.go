package patterngraph

import (
	"sort"

	"github.com/relateby/pattern-go/pattern"
)

// Nodes returns every node pattern, ordered by identity.
func (g PatternGraph[Extra, V]) Nodes() []pattern.Pattern[V] { return sortedValues(g.nodes) }

// Relationships returns every relationship pattern, ordered by
// identity.
func (g PatternGraph[Extra, V]) Relationships() []pattern.Pattern[V] {
	return sortedValues(g.relationships)
}

// Walks returns every walk pattern, ordered by identity.
func (g PatternGraph[Extra, V]) Walks() []pattern.Pattern[V] { return sortedValues(g.walks) }

// Annotations returns every annotation pattern, ordered by identity.
func (g PatternGraph[Extra, V]) Annotations() []pattern.Pattern[V] {
	return sortedValues(g.annotations)
}

// OtherEntry pairs a GOther pattern with the classifier tag it carried.
type OtherEntry[Extra, V any] struct {
	Extra   Extra
	Pattern pattern.Pattern[V]
}

// Other returns every pattern classified GOther, ordered by identity,
// paired with its classifier-supplied tag.
func (g PatternGraph[Extra, V]) Other() []OtherEntry[Extra, V] {
	keys := make([]string, 0, len(g.other))
	for k := range g.other {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]OtherEntry[Extra, V], len(keys))
	for i, k := range keys {
		e := g.other[k]
		out[i] = OtherEntry[Extra, V]{Extra: e.extra, Pattern: e.pattern}
	}
	return out
}

// Conflicts returns the patterns that could not be reconciled, keyed by
// identity.
func (g PatternGraph[Extra, V]) Conflicts() map[string][]pattern.Pattern[V] {
	out := make(map[string][]pattern.Pattern[V], len(g.conflicts))
	for k, v := range g.conflicts {
		cp := make([]pattern.Pattern[V], len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// NodeByID returns the node pattern with the given identity, and true,
// or the zero pattern and false.
func (g PatternGraph[Extra, V]) NodeByID(id string) (pattern.Pattern[V], bool) {
	p, ok := g.nodes[id]
	return p, ok
}

// RelationshipByID returns the relationship pattern with the given
// identity, and true, or the zero pattern and false.
func (g PatternGraph[Extra, V]) RelationshipByID(id string) (pattern.Pattern[V], bool) {
	p, ok := g.relationships[id]
	return p, ok
}

// Identify exposes the graph's configured identity function, for
// callers (such as patternquery.GraphQuery) that need to compute a
// value's identity the same way the graph does.
func (g PatternGraph[Extra, V]) Identify(v V) string { return g.identify(v) }

// Stats is a read-only snapshot of per-category counts, useful for
// logging and diagnostics.
type Stats struct {
	Nodes         int
	Relationships int
	Walks         int
	Annotations   int
	Other         int
	Conflicts     int
}

// Stats returns the current per-category counts.
func (g PatternGraph[Extra, V]) Stats() Stats {
	conflictCount := 0
	for _, v := range g.conflicts {
		conflictCount += len(v)
	}
	return Stats{
		Nodes:         len(g.nodes),
		Relationships: len(g.relationships),
		Walks:         len(g.walks),
		Annotations:   len(g.annotations),
		Other:         len(g.other),
		Conflicts:     conflictCount,
	}
}

func sortedValues[V any](m map[string]pattern.Pattern[V]) []pattern.Pattern[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]pattern.Pattern[V], len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}
