package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Pattern[int] {
	// 1
	// ├── 2
	// │   ├── 4
	// │   └── 5
	// └── 3
	leaf4 := Of(4)
	leaf5 := Of(5)
	node2 := New(2, leaf4, leaf5)
	node3 := Of(3)
	return New(1, node2, node3)
}

func TestConstructionAndInspection(t *testing.T) {
	p := sample()

	assert.False(t, p.IsAtomic())
	assert.Equal(t, 2, p.Length())
	assert.Equal(t, 5, p.Size())
	assert.Equal(t, 2, p.Depth())
	assert.Equal(t, []int{1, 2, 4, 5, 3}, p.Values())

	leaf := Of(7)
	assert.True(t, leaf.IsAtomic())
	assert.Equal(t, 0, leaf.Length())
	assert.Equal(t, 1, leaf.Size())
	assert.Equal(t, 0, leaf.Depth())

	child, ok := p.GetElement(0)
	require.True(t, ok)
	assert.Equal(t, 2, child.Value())

	_, ok = p.GetElement(9)
	assert.False(t, ok)
}

func TestAddElement(t *testing.T) {
	p := Of(1)
	p2 := p.AddElement(Of(2))

	assert.Equal(t, 0, p.Length())
	assert.Equal(t, 1, p2.Length())
	c, _ := p2.GetElement(0)
	assert.Equal(t, 2, c.Value())
}

func TestFromValues(t *testing.T) {
	ps := FromValues([]int{1, 2, 3})
	require.Len(t, ps, 3)
	for i, v := range []int{1, 2, 3} {
		assert.True(t, ps[i].IsAtomic())
		assert.Equal(t, v, ps[i].Value())
	}
}

func TestQuery(t *testing.T) {
	p := sample()

	assert.True(t, p.AnyValue(func(v int) bool { return v == 5 }))
	assert.False(t, p.AnyValue(func(v int) bool { return v == 99 }))

	assert.True(t, p.AllValues(func(v int) bool { return v > 0 }))
	assert.False(t, p.AllValues(func(v int) bool { return v > 1 }))

	found := p.Filter(func(v int) bool { return v%2 == 0 })
	require.Len(t, found, 2)
	assert.Equal(t, 2, found[0].Value())
	assert.Equal(t, 4, found[1].Value())

	first, ok := p.FindFirst(func(v int) bool { return v > 3 })
	require.True(t, ok)
	assert.Equal(t, 4, first.Value())

	_, ok = p.FindFirst(func(v int) bool { return v > 100 })
	assert.False(t, ok)

	eq := func(a, b int) bool { return a == b }
	assert.True(t, p.Matches(sample(), eq))
	assert.False(t, p.Matches(Of(1), eq))

	assert.True(t, p.Contains(Of(5), eq))
	assert.False(t, p.Contains(Of(99), eq))
}

func TestFunctorLaws(t *testing.T) {
	p := sample()
	id := func(v int) int { return v }
	assert.Equal(t, p.Values(), Map(p, id).Values())

	f := func(v int) int { return v * 2 }
	g := func(v int) string { return string(rune('a' + v)) }

	lhs := Map(Map(p, f), g)
	rhs := Map(p, func(v int) string { return g(f(v)) })
	assert.Equal(t, rhs.Values(), lhs.Values())
}

func TestFoldVisitsEveryValueOnceInPreorder(t *testing.T) {
	p := sample()
	var visited []int
	Fold(p, struct{}{}, func(acc struct{}, v int) struct{} {
		visited = append(visited, v)
		return acc
	})
	assert.Equal(t, []int{1, 2, 4, 5, 3}, visited)

	sum := Fold(p, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 15, sum)
}

func TestParaAnchorOnAtomic(t *testing.T) {
	leaf := Of(9)
	f := func(p Pattern[int], results []string) string {
		if len(results) == 0 {
			return "leaf"
		}
		return "branch"
	}
	assert.Equal(t, "leaf", Para(leaf, f))
}

func TestParaBottomUp(t *testing.T) {
	p := sample()
	sizeByPara := Para(p, func(pat Pattern[int], sizes []int) int {
		total := 1
		for _, s := range sizes {
			total += s
		}
		return total
	})
	assert.Equal(t, p.Size(), sizeByPara)
}

func TestCombine(t *testing.T) {
	a := New(1, Of(2))
	b := New(10, Of(20))
	c := a.Combine(b, func(x, y int) int { return x + y })
	assert.Equal(t, 11, c.Value())
	assert.Equal(t, 2, c.Length())
	e0, _ := c.GetElement(0)
	e1, _ := c.GetElement(1)
	assert.Equal(t, 2, e0.Value())
	assert.Equal(t, 20, e1.Value())
}

func TestComonadLaws(t *testing.T) {
	p := sample()

	// extend(extract) == id
	extended := Extend(p, Pattern[int].Extract)
	assert.Equal(t, p.Values(), extended.Values())

	// extract . extend(f) == f
	f := func(sub Pattern[int]) int { return sub.Size() }
	assert.Equal(t, f(p), Extend(p, f).Extract())

	// extend(f) . extend(g) == extend(x -> f(extend(g)(x)))
	g := func(sub Pattern[int]) int { return sub.Depth() }
	lhs := Extend(Extend(p, g), f)
	rhs := Extend(p, func(sub Pattern[int]) int { return f(Extend(sub, g)) })
	assert.Equal(t, rhs.Values(), lhs.Values())
}

func TestDepthAtSizeAtIndicesAt(t *testing.T) {
	p := sample()

	depths := DepthAt(p)
	assert.Equal(t, 2, depths.Value())
	c0, _ := depths.GetElement(0)
	assert.Equal(t, 1, c0.Value())

	sizes := SizeAt(p)
	assert.Equal(t, 5, sizes.Value())

	indices := IndicesAt(p)
	assert.Equal(t, []int{}, indices.Value())
	i0, _ := indices.GetElement(0)
	assert.Equal(t, []int{0}, i0.Value())
	i0c1, _ := i0.GetElement(1)
	assert.Equal(t, []int{0, 1}, i0c1.Value())
}

func TestUnfold(t *testing.T) {
	// Unfold a countdown: seed n produces value n and children [n-1]
	// down to 0.
	p := Unfold(3, func(n int) (int, []int) {
		if n == 0 {
			return n, nil
		}
		return n, []int{n - 1}
	})
	assert.Equal(t, []int{3, 2, 1, 0}, p.Values())
	assert.Equal(t, 3, p.Depth())
}

func TestUnfoldBranching(t *testing.T) {
	// Binary tree of depth 2 from a seed.
	p := Unfold(0, func(depth int) (int, []int) {
		if depth >= 2 {
			return depth, nil
		}
		return depth, []int{depth + 1, depth + 1}
	})
	assert.Equal(t, 7, p.Size())
	assert.Equal(t, 2, p.Depth())
}

func TestDeepNestingWithoutStackOverflow(t *testing.T) {
	const depth = 500
	p := Unfold(depth, func(n int) (int, []int) {
		if n == 0 {
			return n, nil
		}
		return n, []int{n - 1}
	})
	assert.Equal(t, depth, p.Depth())
	assert.Equal(t, depth+1, p.Size())

	doubled := Map(p, func(v int) int { return v * 2 })
	assert.Equal(t, depth*2, doubled.Value())

	total := Fold(p, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, depth*(depth+1)/2, total)
}
