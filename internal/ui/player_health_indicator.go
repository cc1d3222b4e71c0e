// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ender-sword/internal/config"
	"ender-sword/internal/hud"
)

// Bar is a horizontal gauge with its value written on top.
type Bar struct {
	X, Y          float32
	Width, Height float32
}

func (b Bar) Draw(screen *ebiten.Image, fraction float64, label string, fill color.RGBA) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, config.BarBackColor, false)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width*float32(fraction), b.Height, fill, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, config.TextLightColor, false)
	DrawCentered(screen, label, int(b.X+b.Width/2), int(b.Y+b.Height/2)+config.TextOffsetY, config.TextLightColor)
}

// PlayerHealthIndicator отображает здоровье игрока.
type PlayerHealthIndicator struct {
	bar Bar
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{bar: Bar{X: x, Y: y, Width: 180, Height: 16}}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, s hud.Snapshot) {
	i.bar.Draw(screen, hud.Fraction(s.Health, s.MaxHealth), "HP "+s.HealthText, config.HealthBarColor)
}
