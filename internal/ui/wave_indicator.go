// internal/ui/wave_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"ender-sword/internal/config"
	"ender-sword/internal/hud"
)

// WaveIndicator shows the wave number, its progress bar and the run counters.
type WaveIndicator struct {
	X, Y float32
	bar  Bar
}

func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, bar: Bar{X: x, Y: y + 8, Width: 220, Height: 16}}
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, s hud.Snapshot) {
	DrawText(screen, s.WaveText, int(i.X), int(i.Y), config.TextLightColor)
	i.bar.Draw(screen, hud.Fraction(s.WaveProgress, s.WaveTarget), s.ProgressText, config.WaveBarColor)

	line := fmt.Sprintf("%s   Kills %d   Gold %d", s.Clock, s.Kills, s.Currency)
	DrawText(screen, line, int(i.X), int(i.Y)+44, config.TextLightColor)
}
