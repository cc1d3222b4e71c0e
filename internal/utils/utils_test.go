package utils

import (
	"math"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ dice.Roller = (*PRNGService)(nil)

func TestBetweenIsInclusive(t *testing.T) {
	rng := NewPRNGService(42)
	seenMin, seenMax := false, false
	for i := 0; i < 2000; i++ {
		v := rng.Between(2, 9)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 9)
		seenMin = seenMin || v == 2
		seenMax = seenMax || v == 9
	}
	assert.True(t, seenMin)
	assert.True(t, seenMax)
}

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.EqualValues(t, 7, a.Seed())
}

func TestRoll(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 200; i++ {
		v, err := rng.Roll(6)
		require.NoError(t, err)
		assert.True(t, v >= 1 && v <= 6)
	}
	_, err := rng.Roll(0)
	assert.Error(t, err)

	rolls, err := rng.RollN(3, 8)
	require.NoError(t, err)
	assert.Len(t, rolls, 3)
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.InDelta(t, 5, Distance(0, 0, 3, 4), 1e-9)
	assert.False(t, math.IsNaN(x))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:09", FormatClock(9.9))
	assert.Equal(t, "01:05", FormatClock(65))
	assert.Equal(t, "12:00", FormatClock(720))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 960))
	assert.Equal(t, 960.0, Clamp(1000, 0, 960))
	assert.Equal(t, 5.0, Clamp(5, 0, 960))
}
