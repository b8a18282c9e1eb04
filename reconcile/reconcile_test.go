package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relateby/pattern-go/pattern"
)

func TestLastFirstWriteWins(t *testing.T) {
	existing := pattern.Of(1)
	incoming := pattern.Of(2)

	got, err := Reconcile(LastWriteWins[int](), existing, incoming)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Value())

	got, err = Reconcile(FirstWriteWins[int](), existing, incoming)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Value())
}

func TestStrict(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	same := pattern.Of(1)
	got, err := Reconcile(Strict(eq), same, pattern.Of(1))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Value())

	_, err = Reconcile(Strict(eq), same, pattern.Of(2))
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrConflict, rerr.Code)
}

func TestMergeReplaceElements(t *testing.T) {
	existing := pattern.New(1, pattern.Of(10))
	incoming := pattern.New(2, pattern.Of(20))

	p := Merge(ReplaceElements, func(a, b int) int { return a + b })
	got, err := Reconcile(p, existing, incoming)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Value())
	assert.Equal(t, 1, got.Length())
	e0, _ := got.GetElement(0)
	assert.Equal(t, 20, e0.Value())
}

func TestMergeAppendElements(t *testing.T) {
	existing := pattern.New(1, pattern.Of(10))
	incoming := pattern.New(2, pattern.Of(20))

	p := Merge(AppendElements, func(a, b int) int { return a + b })
	got, err := Reconcile(p, existing, incoming)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Length())
}

func TestMergeUnionElements(t *testing.T) {
	existing := pattern.New(1, pattern.Of(10), pattern.Of(20))
	incoming := pattern.New(2, pattern.Of(20), pattern.Of(30))

	identity := func(v int) string { return string(rune('a' + v)) }
	p := Merge(UnionElements, func(a, b int) int { return b }, WithIdentity(identity))
	got, err := Reconcile(p, existing, incoming)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Length())
}

func TestMergeUnionWithoutIdentityPanics(t *testing.T) {
	assert.Panics(t, func() {
		Merge(UnionElements, func(a, b int) int { return b })
	})
}
