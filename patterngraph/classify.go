package patterngraph

import "github.com/relateby/pattern-go/pattern"

// classifyByShape applies the priority-ordered shape rules:
//
//  1. no elements -> GNode
//  2. one element -> GAnnotation
//  3. two elements, both atomic -> GRelationship
//  4. every element is relationship-shaped and the chain is a valid
//     walk -> GWalk
//  5. otherwise -> GOther
//
// identify supplies the stable identity used to test walk connectivity.
func classifyByShape[V any](p pattern.Pattern[V], identify func(V) string) GraphClass[struct{}] {
	switch p.Length() {
	case 0:
		return Node[struct{}]()
	case 1:
		return Annotation[struct{}]()
	case 2:
		c0, _ := p.GetElement(0)
		c1, _ := p.GetElement(1)
		if c0.IsAtomic() && c1.IsAtomic() {
			return Relationship[struct{}]()
		}
	}

	children := p.Elements()
	if len(children) > 0 {
		allRelationshipShaped := true
		for _, c := range children {
			if !isRelationshipShaped(c) {
				allRelationshipShaped = false
				break
			}
		}
		if allRelationshipShaped && isValidWalk(children, identify) {
			return Walk[struct{}]()
		}
	}
	return Other[struct{}](struct{}{})
}

// isRelationshipShaped reports whether p has exactly two atomic
// children, i.e. would itself classify as GRelationship.
func isRelationshipShaped[V any](p pattern.Pattern[V]) bool {
	if p.Length() != 2 {
		return false
	}
	c0, _ := p.GetElement(0)
	c1, _ := p.GetElement(1)
	return c0.IsAtomic() && c1.IsAtomic()
}

// isValidWalk implements the frontier algorithm: relationships form a
// valid walk iff each consecutive relationship shares an endpoint with
// the running frontier, direction-agnostic, all the way through the
// chain.
func isValidWalk[V any](relationships []pattern.Pattern[V], identify func(V) string) bool {
	if len(relationships) == 0 {
		return false
	}

	endpoints := func(r pattern.Pattern[V]) (string, string) {
		c0, _ := r.GetElement(0)
		c1, _ := r.GetElement(1)
		return identify(c0.Value()), identify(c1.Value())
	}

	a0, b0 := endpoints(relationships[0])
	frontier := map[string]struct{}{a0: {}, b0: {}}

	for _, r := range relationships[1:] {
		a, b := endpoints(r)
		_, aMatches := frontier[a]
		_, bMatches := frontier[b]

		next := make(map[string]struct{})
		if aMatches {
			next[b] = struct{}{}
		}
		if bMatches {
			next[a] = struct{}{}
		}
		frontier = next
		if len(frontier) == 0 {
			return false
		}
	}
	return len(frontier) > 0
}
