package patternview

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patterngraph"
	"github.com/relateby/pattern-go/patternquery"
	"github.com/relateby/pattern-go/reconcile"
)

func identify(v int) string { return strconv.Itoa(v) }

func node(id int) pattern.Pattern[int] { return pattern.Of(id) }

func rel(id, a, b int) pattern.Pattern[int] {
	return pattern.New(id, node(a), node(b))
}

func classifier() patterngraph.GraphClassifier[struct{}, int] {
	return patterngraph.CanonicalClassifier(identify)
}

func buildView(t *testing.T, ps []pattern.Pattern[int]) GraphView[struct{}, int] {
	t.Helper()
	g := patterngraph.FromPatterns(classifier(), identify, ps)
	return FromPatternGraph(g)
}

func TestFromPatternGraphOrdersByCategory(t *testing.T) {
	view := buildView(t, []pattern.Pattern[int]{rel(10, 1, 2)})
	var kinds []patterngraph.ClassKind
	for _, el := range view.Elements() {
		kinds = append(kinds, el.Class.Kind)
	}
	// two nodes sorted by identity ("1", "2"), then the relationship.
	assert.Equal(t, []patterngraph.ClassKind{
		patterngraph.GNode, patterngraph.GNode, patterngraph.GRelationship,
	}, kinds)
}

func TestMapAllGraph(t *testing.T) {
	view := buildView(t, []pattern.Pattern[int]{node(1), node(2)})
	mapped := MapAllGraph(view, func(p pattern.Pattern[int]) pattern.Pattern[int] {
		return pattern.Of(p.Value() * 10)
	})
	var values []int
	for _, el := range mapped.Elements() {
		values = append(values, el.Pattern.Value())
	}
	assert.Equal(t, []int{10, 20}, values)
}

func TestMapGraphPerClass(t *testing.T) {
	view := buildView(t, []pattern.Pattern[int]{rel(10, 1, 2)})
	mapped := MapGraph(view, map[patterngraph.ClassKind]func(pattern.Pattern[int]) pattern.Pattern[int]{
		patterngraph.GNode: func(p pattern.Pattern[int]) pattern.Pattern[int] {
			return pattern.Of(p.Value() + 100)
		},
	})
	for _, el := range mapped.Elements() {
		if el.Class.Kind == patterngraph.GNode {
			assert.Greater(t, el.Pattern.Value(), 100)
		}
	}
}

func TestFoldGraphCountsElements(t *testing.T) {
	view := buildView(t, []pattern.Pattern[int]{rel(10, 1, 2)})
	count := FoldGraph(view, 0, func(a, b int) int { return a + b }, func(_ patterngraph.GraphClass[struct{}], _ pattern.Pattern[int]) int {
		return 1
	})
	assert.Equal(t, 3, count) // 2 nodes + 1 relationship
}

func TestFilterGraphDeleteContainer(t *testing.T) {
	// walk 100: 1 --> 2 --> 3 through relationships 10 and 20; removing
	// relationship 10 drops the whole walk.
	view := buildView(t, []pattern.Pattern[int]{pattern.New(100, rel(10, 1, 2), rel(20, 2, 3))})
	filtered := FilterGraph(view, func(p pattern.Pattern[int]) bool {
		return p.Value() != 10
	}, DeleteContainer[int]())

	for _, el := range filtered.Elements() {
		assert.NotEqual(t, 10, el.Pattern.Value())
		assert.NotEqual(t, patterngraph.GWalk, el.Class.Kind)
	}
}

func TestFilterGraphSpliceGapKeepsContainer(t *testing.T) {
	// walk 100: 1 --> 2 --> 3 through relationships 10 and 20; removing
	// relationship 10 leaves the walk with relationship 20 only.
	view := buildView(t, []pattern.Pattern[int]{pattern.New(100, rel(10, 1, 2), rel(20, 2, 3))})
	filtered := FilterGraph(view, func(p pattern.Pattern[int]) bool {
		return p.Value() != 10
	}, SpliceGap[int]())

	var relCount, walkCount int
	for _, el := range filtered.Elements() {
		if el.Class.Kind == patterngraph.GRelationship {
			relCount++
		}
		if el.Class.Kind == patterngraph.GWalk {
			walkCount++
			assert.Equal(t, 1, el.Pattern.Length())
		}
	}
	assert.Equal(t, 1, relCount)
	assert.Equal(t, 1, walkCount)
}

func TestParaGraphSumsAlongChain(t *testing.T) {
	view := buildView(t, []pattern.Pattern[int]{rel(10, 1, 2), rel(20, 2, 3)})
	results, ok := ParaGraph(view, func(_ patternquery.GraphQuery[struct{}, int], n pattern.Pattern[int], preds []int) int {
		sum := n.Value()
		for _, p := range preds {
			sum += p
		}
		return sum
	})
	require.True(t, ok)
	assert.Equal(t, 1, results["1"])
	assert.Equal(t, 3, results["2"])  // 2 + 1
	assert.Equal(t, 6, results["3"]) // 3 + 3
}

func TestParaGraphFixedConverges(t *testing.T) {
	view := buildView(t, []pattern.Pattern[int]{rel(10, 1, 2), rel(20, 2, 1)}) // cycle
	final := ParaGraphFixed(view, nil, func(previous, next map[string]int) bool {
		if len(previous) != len(next) {
			return false
		}
		for k, v := range previous {
			if next[k] != v {
				return false
			}
		}
		return true
	}, func(_ patternquery.GraphQuery[struct{}, int], n pattern.Pattern[int], preds []int) int {
		best := n.Value()
		for _, p := range preds {
			if p > best {
				best = p
			}
		}
		return best
	})
	assert.Equal(t, 2, final["1"])
	assert.Equal(t, 2, final["2"])
}

func TestMaterializeRebuildsGraph(t *testing.T) {
	view := buildView(t, []pattern.Pattern[int]{rel(10, 1, 2)})
	graph := Materialize(classifier(), identify, reconcile.LastWriteWins[int](), view)
	assert.Len(t, graph.Nodes(), 2)
	assert.Len(t, graph.Relationships(), 1)
}

func TestUnfoldGraphBuildsFromSeeds(t *testing.T) {
	expand := func(seed int) []pattern.Pattern[int] {
		return []pattern.Pattern[int]{rel(seed*10, seed, seed+1)}
	}
	view := UnfoldGraph(classifier(), identify, reconcile.LastWriteWins[int](), expand, []int{1, 2})
	var relCount int
	for _, el := range view.Elements() {
		if el.Class.Kind == patterngraph.GRelationship {
			relCount++
		}
	}
	assert.Equal(t, 2, relCount)
}
