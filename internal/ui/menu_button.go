// internal/ui/menu_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ender-sword/internal/config"
)

// MenuButton is the START GAME button of the intro screen.
type MenuButton struct {
	Button
}

func NewMenuButton() *MenuButton {
	const w, h = 200, 48
	return &MenuButton{Button: NewButton((config.ScreenWidth-w)/2, config.ScreenHeight/2+40, w, h, "START GAME")}
}

func (m *MenuButton) Draw(screen *ebiten.Image, hovered bool) {
	border := config.PanelStrokeColor
	if hovered {
		border = config.WaveBarColor
	}
	m.Button.Draw(screen, config.PanelColor, border)
}
