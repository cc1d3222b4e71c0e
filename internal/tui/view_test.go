package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ender-sword/internal/app"
	"ender-sword/internal/hud"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestCellScalesArena(t *testing.T) {
	screen := newSimScreen(t, 96, 56)
	v := NewView(screen)

	x, y := v.Cell(0, 0)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y, "row 0 is the status line")

	x, y = v.Cell(480, 270)
	assert.Equal(t, 48, x)
	assert.Equal(t, 28, y)

	x, y = v.Cell(5000, 5000)
	assert.Equal(t, 95, x)
	assert.Equal(t, 54, y)
}

func TestViewDrawsPlayerAndStatus(t *testing.T) {
	screen := newSimScreen(t, 96, 56)
	v := NewView(screen)
	game := app.NewGame(42, nil)

	v.Draw(game.World(), game.HUD())

	pos := game.World().PlayerPosition()
	cx, cy := v.Cell(pos.X, pos.Y)
	r, _, _, _ := screen.GetContent(cx, cy)
	assert.Equal(t, GlyphPlayer, r)

	status := rowText(screen, 0)
	assert.Contains(t, status, "HP 30/30")
	assert.Contains(t, status, "Wave 1 0/50")
	assert.Contains(t, status, "Gold 0")
}

func TestStatusLineShowsUnlockedPowerUps(t *testing.T) {
	s := hud.Snapshot{
		HealthText: "12/30", WaveText: "Wave 3", ProgressText: "20/110", Clock: "01:05",
		PowerUps: []hud.PowerUpIcon{
			{Name: "Dash", Unlocked: true, Uses: 2},
			{Name: "Poison", Unlocked: true, Cooldown: 4.2, Uses: -1},
			{Name: "Ultra", Unlocked: false, Uses: 2},
		},
	}
	line := StatusLine(s)
	assert.Contains(t, line, "Dash x2")
	assert.Contains(t, line, "Poison 4s")
	assert.NotContains(t, line, "Ultra")
}

func TestViewGameOverBanner(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	v := NewView(screen)
	game := app.NewGame(1, nil)
	s := game.HUD()
	s.Gate = "game_over"
	s.WavesSurvived = 2

	v.Draw(game.World(), s)

	var all strings.Builder
	for y := 0; y < 24; y++ {
		all.WriteString(rowText(screen, y))
	}
	assert.Contains(t, all.String(), "GAME OVER")
	assert.Contains(t, all.String(), "Waves survived: 2")
	assert.Contains(t, all.String(), "Press R to restart")
}
