package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relateby/pattern-go/value"
)

func TestMergeValueUnionLabelsShallowProperties(t *testing.T) {
	existing := New("alice").WithLabel("Person").WithProperty("age", value.NewInteger(30))
	incoming := New("alice").WithLabel("Employee").WithProperty("title", value.NewString("engineer"))

	merge := MergeValue(MergeStrategy{Labels: UnionLabels, Properties: ShallowMergeProperties})
	out := merge(existing, incoming)

	assert.True(t, out.HasLabel("Person"))
	assert.True(t, out.HasLabel("Employee"))

	age, ok := out.Property("age")
	require.True(t, ok)
	i, _ := age.AsInteger()
	assert.Equal(t, int64(30), i)

	title, ok := out.Property("title")
	require.True(t, ok)
	s, _ := title.AsString()
	assert.Equal(t, "engineer", s)
}

func TestMergeValueIntersectLabels(t *testing.T) {
	existing := New("x").WithLabel("A").WithLabel("B")
	incoming := New("x").WithLabel("B").WithLabel("C")

	merge := MergeValue(MergeStrategy{Labels: IntersectLabels, Properties: ReplaceProperties})
	out := merge(existing, incoming)

	assert.ElementsMatch(t, []string{"B"}, out.Labels())
}

func TestMergeValueReplaceLabelsAndProperties(t *testing.T) {
	existing := New("x").WithLabel("A").WithProperty("k", value.NewInteger(1))
	incoming := New("x").WithLabel("B").WithProperty("k", value.NewInteger(2))

	merge := MergeValue(MergeStrategy{Labels: ReplaceLabels, Properties: ReplaceProperties})
	out := merge(existing, incoming)

	assert.ElementsMatch(t, []string{"B"}, out.Labels())
	k, _ := out.Property("k")
	i, _ := k.AsInteger()
	assert.Equal(t, int64(2), i)
}

func TestMergeValueDeepMergesMapProperties(t *testing.T) {
	existingMap := value.NewMap(map[string]value.Value{"a": value.NewInteger(1)})
	incomingMap := value.NewMap(map[string]value.Value{"b": value.NewInteger(2)})

	existing := New("x").WithProperty("nested", existingMap)
	incoming := New("x").WithProperty("nested", incomingMap)

	merge := MergeValue(MergeStrategy{Labels: UnionLabels, Properties: DeepMergeProperties})
	out := merge(existing, incoming)

	nested, ok := out.Property("nested")
	require.True(t, ok)
	m, ok := nested.AsMap()
	require.True(t, ok)
	assert.Len(t, m, 2)
}
