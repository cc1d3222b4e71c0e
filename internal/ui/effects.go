// internal/ui/effects.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ender-sword/internal/config"
	"ender-sword/internal/hud"
	"ender-sword/pkg/render"
)

// DrawEffects draws blast rings and floating damage numbers.
func DrawEffects(screen *ebiten.Image, fx *hud.Effects) {
	for _, r := range fx.Rings() {
		radius := float32(r.Radius * r.Progress())
		c := render.WithAlpha(config.BlastColor, 1-r.Progress())
		vector.DrawFilledCircle(screen, float32(r.X), float32(r.Y), radius, c, true)
	}
	for _, t := range fx.Texts() {
		c := render.WithAlpha(config.IncorrectColor, t.Alpha())
		DrawCentered(screen, t.Text, int(t.X), int(t.Y-t.Rise()), c)
	}
}
