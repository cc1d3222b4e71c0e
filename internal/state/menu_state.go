// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ender-sword/internal/config"
	"ender-sword/internal/ui"
)

// MenuState is the intro screen with the START GAME button
type MenuState struct {
	sm     *StateMachine
	deps   Deps
	button *ui.MenuButton
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps, button: ui.NewMenuButton()}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := PollKeyboard().Start
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.button.Contains(x, y)
	}
	if start {
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundDojo)
	ui.DrawCentered(screen, "ENDER SWORD", config.ScreenWidth/2, config.ScreenHeight/2-60, config.TextLightColor)
	ui.DrawCentered(screen, "Survive seven waves. Collect scrolls. Answer to re-arm.", config.ScreenWidth/2, config.ScreenHeight/2-30, config.TextLightColor)
	ui.DrawCentered(screen, "WASD move, E power-up, M math", config.ScreenWidth/2, config.ScreenHeight/2-10, config.TextLightColor)

	x, y := ebiten.CursorPosition()
	m.button.Draw(screen, m.button.Contains(x, y))
}

func (m *MenuState) Exit() {}
