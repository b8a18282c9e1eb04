package pattern

import "github.com/relateby/pattern-go/internal/stack"

// flatNode is one entry of a pre-order flattening of a Pattern: the
// original subpattern rooted here, and the flat indices of its direct
// children, in order.
type flatNode[V any] struct {
	orig     Pattern[V]
	children []int
	path     []int
}

// flattenPreorder lays p out as a pre-order sequence with parent-child
// index links, built with an explicit stack rather than host recursion.
// Every child has a strictly larger index than its parent, so walking
// the result in reverse visits every node after all of its descendants.
// Each entry also records its path from the root as the sequence of
// element indices taken to reach it (the root's path is empty).
func flattenPreorder[V any](p Pattern[V]) []flatNode[V] {
	type frame struct {
		pat    Pattern[V]
		parent int
		path   []int
	}
	var flat []flatNode[V]
	var frames stack.Stack[frame]
	frames.Push(frame{p, -1, nil})
	for frames.Len() > 0 {
		f, _ := frames.Pop()

		idx := len(flat)
		flat = append(flat, flatNode[V]{orig: f.pat, path: f.path})
		if f.parent >= 0 {
			flat[f.parent].children = append(flat[f.parent].children, idx)
		}
		for i := len(f.pat.elements) - 1; i >= 0; i-- {
			childPath := make([]int, len(f.path)+1)
			copy(childPath, f.path)
			childPath[len(f.path)] = i
			frames.Push(frame{f.pat.elements[i], idx, childPath})
		}
	}
	return flat
}

// reduceBottomUp flattens p and folds it from the leaves up: combine is
// called once per node, after all of that node's children have already
// been combined, and receives their results in original child order.
func reduceBottomUp[V, W any](p Pattern[V], combine func(node flatNode[V], childResults []W) W) W {
	flat := flattenPreorder(p)
	results := make([]W, len(flat))
	for i := len(flat) - 1; i >= 0; i-- {
		var childResults []W
		if n := len(flat[i].children); n > 0 {
			childResults = make([]W, n)
			for j, ci := range flat[i].children {
				childResults[j] = results[ci]
			}
		}
		results[i] = combine(flat[i], childResults)
	}
	if len(results) == 0 {
		var zero W
		return zero
	}
	return results[0]
}
