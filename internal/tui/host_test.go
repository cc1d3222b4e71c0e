package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ender-sword/internal/config"
	"ender-sword/internal/entity"
	"ender-sword/internal/hud"
	"ender-sword/internal/input"
	"ender-sword/internal/intent"
	intentmock "ender-sword/internal/intent/mock"
	"ender-sword/internal/interfaces"
	interfacesmock "ender-sword/internal/interfaces/mock"
)

func TestHostTickRoutesSoundAndClampsDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	game := interfacesmock.NewMockGame(ctrl)
	sound := intentmock.NewMockSoundPlayer(ctrl)
	screen := newSimScreen(t, 80, 24)

	game.EXPECT().HUD().Return(hud.Snapshot{Gate: "running"}).Times(2)
	game.EXPECT().Step(input.Frame{}, config.MaxDeltaTime).Return([]intent.Intent{
		{Kind: intent.SoundHit},
		{Kind: intent.DamageNumber, Value: 10},
	})
	game.EXPECT().World().Return(entity.NewECS())
	sound.EXPECT().PlayHit()

	h := NewHost(screen, func() interfaces.Game { return game }, sound)
	h.restart()
	h.Tick(5, 1.0)
}

func TestHostRestartsAfterGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := interfacesmock.NewMockGame(ctrl)
	second := interfacesmock.NewMockGame(ctrl)
	screen := newSimScreen(t, 80, 24)

	first.EXPECT().HUD().Return(hud.Snapshot{Gate: "game_over"})
	second.EXPECT().HUD().Return(hud.Snapshot{Gate: "running"})

	games := []interfaces.Game{first, second}
	created := 0
	h := NewHost(screen, func() interfaces.Game {
		g := games[created]
		created++
		return g
	}, nil)
	h.restart()

	h.keys.Handle(runeKey('r'), 0)
	h.Tick(0, 0.016)

	assert.Equal(t, 2, created)
	assert.Equal(t, "running", h.last.Gate)
}
