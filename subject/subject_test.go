package subject

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relateby/pattern-go/value"
)

func TestNewAndAccessors(t *testing.T) {
	s := New("alice").WithLabel("Person").WithProperty("age", value.NewInteger(30))

	assert.Equal(t, "alice", s.Identity())
	assert.Equal(t, "alice", s.IdentityOf())
	assert.True(t, s.HasLabel("Person"))
	assert.False(t, s.HasLabel("Company"))

	age, ok := s.Property("age")
	require.True(t, ok)
	i, _ := age.AsInteger()
	assert.Equal(t, int64(30), i)

	_, ok = s.Property("missing")
	assert.False(t, ok)
}

func TestImmutableMutators(t *testing.T) {
	s := New("x").WithLabel("A")
	s2 := s.WithLabel("B")

	assert.False(t, s.HasLabel("B"))
	assert.True(t, s2.HasLabel("B"))
	assert.True(t, s2.HasLabel("A"))

	s3 := s2.WithoutLabel("A")
	assert.True(t, s2.HasLabel("A"))
	assert.False(t, s3.HasLabel("A"))
}

func TestEqual(t *testing.T) {
	a := New("x").WithLabel("Person").WithProperty("n", value.NewInteger(1))
	b := New("x").WithLabel("Person").WithProperty("n", value.NewInteger(1))
	assert.True(t, a.Equal(b))

	c := New("y").WithLabel("Person").WithProperty("n", value.NewInteger(1))
	assert.False(t, a.Equal(c))

	d := New("x").WithLabel("Company").WithProperty("n", value.NewInteger(1))
	assert.False(t, a.Equal(d))

	e := New("x").WithLabel("Person").WithProperty("n", value.NewInteger(2))
	assert.False(t, a.Equal(e))
}

func TestHashable(t *testing.T) {
	a := New("x").WithProperty("n", value.NewInteger(1))
	assert.True(t, a.Hashable())

	b := New("x").WithProperty("n", value.NewDecimal(math.NaN()))
	assert.False(t, b.Hashable())
}

func TestNFCNormalizationEquality(t *testing.T) {
	// "é" as a precomposed codepoint vs. "e" + combining acute accent.
	precomposed := New("café")
	decomposed := New("café")
	assert.True(t, precomposed.Equal(decomposed))
}

func TestBuilder(t *testing.T) {
	s := NewBuilder("bob").
		Label("Person").
		Labels("Employee", "Manager").
		Property("level", value.NewInteger(3)).
		Build()

	assert.Equal(t, "bob", s.Identity())
	assert.True(t, s.HasLabel("Person"))
	assert.True(t, s.HasLabel("Employee"))
	assert.True(t, s.HasLabel("Manager"))
	assert.ElementsMatch(t, []string{"Employee", "Manager", "Person"}, s.Labels())
}
