package patternalgo

import "github.com/relateby/pattern-go/pattern"

// Direction names which way a relationship is being traversed relative
// to its stored (source, target) child order.
type Direction int

const (
	// Forward traverses from the relationship's source endpoint to its
	// target endpoint.
	Forward Direction = iota
	// Reverse traverses from target to source.
	Reverse
)

type weightKind int

const (
	wUndirected weightKind = iota
	wDirected
	wDirectedReverse
	wFunction
)

// Weight selects how relationships are traversed: in both directions at
// cost 1 (Undirected, the default), forward-only at cost 1 (Directed),
// backward-only at cost 1 (DirectedReverse), or under a caller-supplied
// cost function (Function) that also decides whether a given direction
// is traversable at all.
type Weight[V any] struct {
	kind weightKind
	fn   func(rel pattern.Pattern[V], dir Direction) (cost float64, traversable bool)
}

// Undirected returns the default weight: every relationship traversable
// in both directions at cost 1.
func Undirected[V any]() Weight[V] { return Weight[V]{kind: wUndirected} }

// Directed returns a weight that only allows traversal from a
// relationship's source to its target, at cost 1.
func Directed[V any]() Weight[V] { return Weight[V]{kind: wDirected} }

// DirectedReverse returns a weight that only allows traversal from a
// relationship's target to its source, at cost 1.
func DirectedReverse[V any]() Weight[V] { return Weight[V]{kind: wDirectedReverse} }

// Function returns a weight driven by fn: for each relationship and
// candidate direction, fn reports the traversal cost and whether that
// direction is allowed at all. This is the escape hatch for
// non-uniform or direction-sensitive costs; it is the slow path, one
// callback per candidate edge.
func Function[V any](fn func(rel pattern.Pattern[V], dir Direction) (cost float64, traversable bool)) Weight[V] {
	return Weight[V]{kind: wFunction, fn: fn}
}

// Uniform is an alias for Undirected, named to match the convenience
// constructors callers expect alongside FromProperty.
func Uniform[V any]() Weight[V] { return Undirected[V]() }

// FromProperty returns a Function weight that reads a numeric property
// named key off a relationship's value via read, traversing in both
// directions at that cost. A relationship missing the property, or
// carrying a non-numeric value for it, is not traversable.
func FromProperty[V any](read func(v V, key string) (float64, bool), key string) Weight[V] {
	return Function(func(rel pattern.Pattern[V], _ Direction) (float64, bool) {
		return read(rel.Value(), key)
	})
}
