package pattern

// Map rebuilds p, applying f to every value, bottom-up and without host
// recursion; the resulting tree has the same shape as p.
func Map[V, W any](p Pattern[V], f func(V) W) Pattern[W] {
	return reduceBottomUp(p, func(node flatNode[V], childResults []Pattern[W]) Pattern[W] {
		return New(f(node.orig.value), childResults...)
	})
}

// Fold performs a strict left fold over every value in the tree rooted
// at p, in pre-order, visiting each value exactly once.
func Fold[V, A any](p Pattern[V], init A, f func(A, V) A) A {
	acc := init
	forEachPreorder(p, func(cur Pattern[V]) bool {
		acc = f(acc, cur.value)
		return true
	})
	return acc
}

// Para is the paramorphism: a bottom-up fold where each node's
// combining function receives the subpattern rooted there together with
// the results already computed for its own children, in order. For an
// atomic pattern, Para(p, f) == f(p, nil).
func Para[V, W any](p Pattern[V], f func(Pattern[V], []W) W) W {
	return reduceBottomUp(p, func(node flatNode[V], childResults []W) W {
		return f(node.orig, childResults)
	})
}

// Combine produces a new pattern whose value is merge(p.value,
// other.value) and whose elements are p's elements followed by other's
// elements.
func (p Pattern[V]) Combine(other Pattern[V], merge func(V, V) V) Pattern[V] {
	elems := make([]Pattern[V], 0, len(p.elements)+len(other.elements))
	elems = append(elems, p.elements...)
	elems = append(elems, other.elements...)
	return Pattern[V]{value: merge(p.value, other.value), elements: elems}
}
