package core

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func always[T any](c Change[T]) RuleFunc[T] {
	return func(View[T], image.Point) (Change[T], bool) { return c, true }
}

func TestNewPatternValidates(t *testing.T) {
	_, err := NewPattern(Square(2), []bool{true, false}, Set(true))
	assert.Error(t, err)

	_, err = NewPattern[bool](nil, nil, Set(true))
	assert.Error(t, err)

	_, err = NewPattern(skewed{Square(2)}, make([]bool, 10), Set(true))
	assert.Error(t, err)

	assert.Panics(t, func() { MustPattern(Line(2), []bool{true}, Set(true)) })
}

func TestPatternMatch(t *testing.T) {
	f, err := FieldFromRows([][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	p := MustPattern(Square(2), []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, Set[uint8](0))
	c, ok := p.Match(f, image.Pt(1, 1))
	require.True(t, ok)
	assert.Equal(t, ChangeSet, c.Kind)

	// Around (0,0) the window wraps to the opposite edges.
	wrapped := MustPattern(Square(2), []uint8{9, 7, 8, 3, 1, 2, 6, 4, 5}, Set[uint8](0))
	_, ok = wrapped.Match(f, image.Pt(0, 0))
	assert.True(t, ok)

	_, ok = p.Match(f, image.Pt(2, 2))
	assert.False(t, ok)

	v, ok := p.Expect(image.Pt(1, -1))
	assert.True(t, ok)
	assert.Equal(t, uint8(3), v)
	_, ok = p.Expect(image.Pt(2, 0))
	assert.False(t, ok)
}

func TestPatternCopiesValues(t *testing.T) {
	want := []bool{true, false, true}
	p := MustPattern(Line(2), want, Set(true))
	want[0] = false
	v, _ := p.Expect(image.Pt(-1, 0))
	assert.True(t, v)
}

func TestChangeResolve(t *testing.T) {
	f := NewField[int](3, 3)
	f.Set(2, 0, 7)
	assert.Equal(t, 4, Set(4).Resolve(f))
	assert.Equal(t, 7, Clone[int](image.Pt(-1, 3)).Resolve(f))
}

func TestFirstMatchWins(t *testing.T) {
	f := NewField[int](4, 4)
	specific := MustPattern(Square(1), []int{0}, Set(2))
	ctx := NewRuleContext[int](always(Set(1)), specific)

	_, ok := specific.Match(f, image.Pt(0, 0))
	require.True(t, ok)

	f.Tick(ctx)
	assert.Equal(t, 16, f.Count(func(v int) bool { return v == 1 }))
	assert.Equal(t, 2, ctx.Len())
}

func TestUnmatchedCarriesForward(t *testing.T) {
	f := NewField[int](3, 3)
	f.Set(1, 1, 5)
	ctx := NewRuleContext(Rule[int](MustPattern(Square(1), []int{5}, Set(6))))
	ctx.With(nil)
	assert.Equal(t, 1, ctx.Len())

	f.Tick(ctx)
	assert.Equal(t, 6, f.Get(1, 1))
	assert.Equal(t, 0, f.Get(0, 0))

	_, ok := NewRuleContext[int]().Resolve(f, image.Pt(0, 0))
	assert.False(t, ok)
}
