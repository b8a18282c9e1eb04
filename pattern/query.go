package pattern

// AnyValue reports whether any value in the tree rooted at p satisfies
// pred, in pre-order, short-circuiting on the first match.
func (p Pattern[V]) AnyValue(pred func(V) bool) bool {
	found := false
	forEachPreorder(p, func(cur Pattern[V]) bool {
		if pred(cur.value) {
			found = true
			return false
		}
		return true
	})
	return found
}

// AllValues reports whether every value in the tree rooted at p
// satisfies pred, in pre-order, short-circuiting on the first failure.
func (p Pattern[V]) AllValues(pred func(V) bool) bool {
	all := true
	forEachPreorder(p, func(cur Pattern[V]) bool {
		if !pred(cur.value) {
			all = false
			return false
		}
		return true
	})
	return all
}

// Filter collects every subpattern at any depth whose value satisfies
// pred, in pre-order.
func (p Pattern[V]) Filter(pred func(V) bool) []Pattern[V] {
	var out []Pattern[V]
	forEachPreorder(p, func(cur Pattern[V]) bool {
		if pred(cur.value) {
			out = append(out, cur)
		}
		return true
	})
	return out
}

// FindFirst returns the first subpattern in pre-order whose value
// satisfies pred, and true, or the zero Pattern and false if none does.
func (p Pattern[V]) FindFirst(pred func(V) bool) (Pattern[V], bool) {
	var result Pattern[V]
	found := false
	forEachPreorder(p, func(cur Pattern[V]) bool {
		if pred(cur.value) {
			result = cur
			found = true
			return false
		}
		return true
	})
	return result, found
}

// Matches reports structural equality between p and other using eq to
// compare values: same value (by eq) and same elements in the same
// order, recursively.
func (p Pattern[V]) Matches(other Pattern[V], eq func(V, V) bool) bool {
	if !eq(p.value, other.value) {
		return false
	}
	if len(p.elements) != len(other.elements) {
		return false
	}
	for i := range p.elements {
		if !p.elements[i].Matches(other.elements[i], eq) {
			return false
		}
	}
	return true
}

// Contains reports whether some subpattern of p, at any depth,
// Matches(sub, eq).
func (p Pattern[V]) Contains(sub Pattern[V], eq func(V, V) bool) bool {
	found := false
	forEachPreorder(p, func(cur Pattern[V]) bool {
		if cur.Matches(sub, eq) {
			found = true
			return false
		}
		return true
	})
	return found
}
