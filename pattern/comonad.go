package pattern

// Extract returns p's own value. Together with Extend, it makes Pattern
// a comonad: Extend(p, Extract) == p; Extract(Extend(p, f)) == f(p).
func (p Pattern[V]) Extract() V { return p.value }

// Extend applies f to the subpattern rooted at every position of p,
// yielding a new pattern of the same shape carrying f's results as
// decorations.
func Extend[V, W any](p Pattern[V], f func(Pattern[V]) W) Pattern[W] {
	return reduceBottomUp(p, func(node flatNode[V], childResults []Pattern[W]) Pattern[W] {
		return New(f(node.orig), childResults...)
	})
}

// DepthAt decorates every position of p with the depth of the
// subpattern rooted there. Shorthand for Extend(p, Pattern[V].Depth).
func DepthAt[V any](p Pattern[V]) Pattern[int] {
	return Extend(p, func(sub Pattern[V]) int { return sub.Depth() })
}

// SizeAt decorates every position of p with the size of the subpattern
// rooted there. Shorthand for Extend(p, Pattern[V].Size).
func SizeAt[V any](p Pattern[V]) Pattern[int] {
	return Extend(p, func(sub Pattern[V]) int { return sub.Size() })
}

// IndicesAt decorates every position of p with its path from the root:
// the sequence of element indices taken to reach it. The root's path is
// the empty slice.
func IndicesAt[V any](p Pattern[V]) Pattern[[]int] {
	return reduceBottomUp(p, func(node flatNode[V], childResults []Pattern[[]int]) Pattern[[]int] {
		path := make([]int, len(node.path))
		copy(path, node.path)
		return New(path, childResults...)
	})
}
