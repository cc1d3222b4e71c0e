package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		name   string
		frame  Frame
		wx, wy float64
	}{
		{"idle", Frame{}, 0, 0},
		{"diagonal", Frame{Right: true, Down: true}, 1, 1},
		{"left beats right", Frame{Left: true, Right: true}, -1, 0},
		{"up beats down", Frame{Up: true, Down: true}, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.frame.Axis()
			assert.Equal(t, tt.wx, x)
			assert.Equal(t, tt.wy, y)
		})
	}
}

func TestMergeKeepsFirstPick(t *testing.T) {
	kb := Frame{Left: true, Answer: 2}
	mouse := Frame{Answer: 3, Card: 1, Confirm: true}

	got := kb.Merge(mouse)
	assert.True(t, got.Left)
	assert.True(t, got.Confirm)
	assert.Equal(t, 2, got.Answer)
	assert.Equal(t, 1, got.Card)
}
