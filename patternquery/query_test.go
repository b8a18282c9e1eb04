package patternquery

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/patterngraph"
)

func identify(v int) string { return strconv.Itoa(v) }

func node(id int) pattern.Pattern[int] { return pattern.Of(id) }

func rel(id, a, b int) pattern.Pattern[int] {
	return pattern.New(id, node(a), node(b))
}

func buildGraph(t *testing.T, ps []pattern.Pattern[int]) patterngraph.PatternGraph[struct{}, int] {
	t.Helper()
	return patterngraph.FromPatterns(patterngraph.CanonicalClassifier(identify), identify, ps)
}

func TestSourceAndTarget(t *testing.T) {
	g := buildGraph(t, []pattern.Pattern[int]{rel(10, 1, 2)})
	q := New(g)

	r, ok := g.RelationshipByID("10")
	require.True(t, ok)

	src, ok := q.Source(r)
	require.True(t, ok)
	assert.Equal(t, 1, src.Value())

	tgt, ok := q.Target(r)
	require.True(t, ok)
	assert.Equal(t, 2, tgt.Value())
}

func TestIncidentAndDegree(t *testing.T) {
	g := buildGraph(t, []pattern.Pattern[int]{rel(10, 1, 2), rel(20, 2, 3)})
	q := New(g)

	n2, ok := g.NodeByID("2")
	require.True(t, ok)

	incident := q.IncidentRels(n2)
	assert.Len(t, incident, 2)
	assert.Equal(t, 2, q.Degree(n2))

	n1, ok := g.NodeByID("1")
	require.True(t, ok)
	assert.Equal(t, 1, q.Degree(n1))
}

func TestWalksContainingAndCoMembers(t *testing.T) {
	walk := pattern.New(100, rel(10, 1, 2), rel(20, 2, 3))
	g := buildGraph(t, []pattern.Pattern[int]{walk})
	q := New(g)

	n2, ok := g.NodeByID("2")
	require.True(t, ok)

	walks := q.WalksContaining(n2)
	require.Len(t, walks, 1)
	assert.Equal(t, 100, walks[0].Value())

	co := q.CoMembers(n2)
	require.Len(t, co, 2)
	assert.Equal(t, 1, co[0].Value())
	assert.Equal(t, 3, co[1].Value())
}

func TestAnnotationsOf(t *testing.T) {
	ann := pattern.New(1, node(2))
	g := buildGraph(t, []pattern.Pattern[int]{ann})
	q := New(g)

	n2, ok := g.NodeByID("2")
	require.True(t, ok)

	anns := q.AnnotationsOf(n2)
	require.Len(t, anns, 1)
	assert.Equal(t, 1, anns[0].Value())
}

func TestNoIncidenceForIsolatedNode(t *testing.T) {
	g := buildGraph(t, []pattern.Pattern[int]{node(5)})
	q := New(g)

	n5, ok := g.NodeByID("5")
	require.True(t, ok)

	assert.Empty(t, q.IncidentRels(n5))
	assert.Equal(t, 0, q.Degree(n5))
	assert.Empty(t, q.WalksContaining(n5))
	assert.Empty(t, q.CoMembers(n5))
	assert.Empty(t, q.AnnotationsOf(n5))
}
