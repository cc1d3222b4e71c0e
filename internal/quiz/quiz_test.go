package quiz_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ender-sword/internal/quiz"
	quizmock "ender-sword/internal/quiz/mock"
	"ender-sword/internal/utils"
)

func TestChallengeShape(t *testing.T) {
	gen := quiz.NewGenerator(utils.NewPRNGService(99))

	for i := 0; i < 500; i++ {
		c, err := gen.Next()
		require.NoError(t, err)

		assert.True(t, c.A >= 2 && c.A <= 9)
		assert.True(t, c.B >= 2 && c.B <= 9)
		assert.Equal(t, c.A*c.B, c.Answers[c.Correct])

		seen := map[int]bool{}
		for idx, v := range c.Answers {
			assert.False(t, seen[v], "duplicate answer %d", v)
			seen[v] = true
			if idx != c.Correct {
				assert.True(t, v >= 4 && v <= 81, "distractor %d out of range", v)
			}
		}
	}
}

func TestScriptedRolls(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := quizmock.NewMockRoller(ctrl)

	gomock.InOrder(
		roller.EXPECT().Roll(8).Return(2, nil),   // a = 3
		roller.EXPECT().Roll(8).Return(3, nil),   // b = 4
		roller.EXPECT().Roll(78).Return(9, nil),  // 12, same as the product, rerolled
		roller.EXPECT().Roll(78).Return(1, nil),  // 4
		roller.EXPECT().Roll(78).Return(1, nil),  // 4 again, rerolled
		roller.EXPECT().Roll(78).Return(78, nil), // 81
		roller.EXPECT().Roll(78).Return(17, nil), // 20
		// shuffle: i=3 -> j in [0,3], i=2 -> [0,2], i=1 -> [0,1]; identity swaps
		roller.EXPECT().Roll(4).Return(4, nil),
		roller.EXPECT().Roll(3).Return(3, nil),
		roller.EXPECT().Roll(2).Return(2, nil),
	)

	c, err := quiz.NewGenerator(roller).Next()
	require.NoError(t, err)

	assert.Equal(t, 3, c.A)
	assert.Equal(t, 4, c.B)
	assert.Equal(t, [4]int{12, 4, 81, 20}, c.Answers)
	assert.Equal(t, 0, c.Correct)
	assert.True(t, c.IsCorrect(0))
	assert.False(t, c.IsCorrect(2))
	assert.Equal(t, "What is 3 × 4?", c.Question())
}

func TestRollerErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := quizmock.NewMockRoller(ctrl)
	roller.EXPECT().Roll(gomock.Any()).Return(0, stderrors.New("no entropy"))

	_, err := quiz.NewGenerator(roller).Next()
	assert.Error(t, err)
}
