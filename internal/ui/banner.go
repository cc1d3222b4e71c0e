// internal/ui/banner.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ender-sword/internal/config"
)

// DrawBanner dims the screen and prints lines centered on it.
func DrawBanner(screen *ebiten.Image, lines []string, c color.Color) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.CooldownColor, false)
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		DrawCentered(screen, line, config.ScreenWidth/2, y, c)
		y += 20
	}
}

// DrawNotice is a one-line strip along the top edge that does not block play.
func DrawNotice(screen *ebiten.Image, msg string, c color.Color) {
	w := float32(TextWidth(msg) + 24)
	x := (config.ScreenWidth - w) / 2
	vector.DrawFilledRect(screen, x, 84, w, 22, config.PanelColor, false)
	DrawCentered(screen, msg, config.ScreenWidth/2, 99, c)
}
