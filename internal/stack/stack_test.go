package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopIsLIFO(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, 1, s.Len())
}

func TestPeekDoesNotRemove(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", top)
	assert.Equal(t, 2, s.Len())
}

func TestPopEmptyReturnsFalse(t *testing.T) {
	var s Stack[int]
	_, ok := s.Pop()
	assert.False(t, ok)

	_, ok = s.Peek()
	assert.False(t, ok)
}
