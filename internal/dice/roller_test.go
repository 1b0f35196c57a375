package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-crawl/internal/dice"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

// stepSource returns the configured values in order and then repeats the last one
type stepSource struct {
	values []int
	calls  int
}

func (s *stepSource) next(size int) int {
	v := s.values[len(s.values)-1]
	if s.calls < len(s.values) {
		v = s.values[s.calls]
	}
	s.calls++
	if v > size {
		return size
	}
	return v
}

func (s *stepSource) Roll(size int) (int, error) { return s.next(size), nil }

func (s *stepSource) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.next(size)
	}
	return out, nil
}

func TestRoller_SumsDrawsAndModifier(t *testing.T) {
	roller := dice.NewRoller(&stepSource{values: []int{2, 5, 1}})

	total, err := roller.Roll("3d6+4")
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestRoller_NegativeModifier(t *testing.T) {
	roller := dice.NewRoller(&stepSource{values: []int{1}})

	total, err := roller.Roll("1d4-3")
	require.NoError(t, err)
	assert.Equal(t, -2, total)
}

func TestRoller_ParseErrorDoesNotRoll(t *testing.T) {
	src := &stepSource{values: []int{3}}
	roller := dice.NewRoller(src)

	_, err := roller.Roll("banana")
	require.ErrorIs(t, err, dice.ErrParse)
	assert.Zero(t, src.calls)
}

func TestRoller_RollExpressionRejectsEmptyPool(t *testing.T) {
	src := &stepSource{values: []int{3}}
	roller := dice.NewRoller(src)

	_, err := roller.RollExpression(dice.Expression{Count: 0, Sides: 6})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.NotErrorIs(t, err, dice.ErrParse)
	assert.Zero(t, src.calls)
}

func TestRoller_Chance(t *testing.T) {
	roller := dice.NewRoller(&stepSource{values: []int{40, 41}})

	hit, err := roller.Chance(40)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = roller.Chance(40)
	require.NoError(t, err)
	assert.False(t, hit)

	always, _ := roller.Chance(100)
	never, _ := roller.Chance(0)
	assert.True(t, always)
	assert.False(t, never)
}

func TestRoller_DefaultSourceStaysInRange(t *testing.T) {
	roller := dice.NewRoller(nil)
	expr := dice.MustParse("2d6+1")

	for i := 0; i < 200; i++ {
		total, err := roller.RollExpression(expr)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, expr.Min())
		assert.LessOrEqual(t, total, expr.Max())
	}
}

func TestSeededSource_Replays(t *testing.T) {
	a := dice.NewRoller(dice.NewSeededSource(7))
	b := dice.NewRoller(dice.NewSeededSource(7))

	for i := 0; i < 20; i++ {
		x, err := a.Roll("4d10")
		require.NoError(t, err)
		y, err := b.Roll("4d10")
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestSeededSource_RejectsBadSizes(t *testing.T) {
	src := dice.NewSeededSource(1)

	_, err := src.Roll(0)
	assert.Error(t, err)
	_, err = src.RollN(0, 6)
	assert.Error(t, err)
}
