// internal/ui/indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ender-sword/internal/config"
	"ender-sword/internal/hud"
)

const (
	iconSize    = 36
	iconSpacing = 8
)

// PowerUpIndicator draws the row of ability icons.
type PowerUpIndicator struct {
	X, Y float32
}

func NewPowerUpIndicator(x, y float32) *PowerUpIndicator {
	return &PowerUpIndicator{X: x, Y: y}
}

func (i *PowerUpIndicator) Draw(screen *ebiten.Image, icons []hud.PowerUpIcon) {
	for n, icon := range icons {
		x := i.X + float32(n*(iconSize+iconSpacing))
		y := i.Y

		bg := config.LockedColor
		if icon.Unlocked {
			bg = config.PanelColor
		}
		vector.DrawFilledRect(screen, x, y, iconSize, iconSize, bg, false)

		border := config.PanelStrokeColor
		if icon.Active {
			border = config.CorrectColor
		}
		vector.StrokeRect(screen, x, y, iconSize, iconSize, config.StrokeWidth, border, false)

		DrawCentered(screen, initial(icon.Name), int(x+iconSize/2), int(y+iconSize/2)+config.TextOffsetY, config.TextLightColor)

		// затемнение сверху вниз по остатку перезарядки
		if icon.Cooldown > 0 {
			full := cooldownOf(icon)
			h := float32(iconSize * icon.Cooldown / full)
			vector.DrawFilledRect(screen, x, y, iconSize, h, config.CooldownColor, false)
		}
		if icon.Uses >= 0 && icon.Unlocked {
			DrawText(screen, fmt.Sprintf("x%d", icon.Uses), int(x)+2, int(y)+iconSize+12, config.TextLightColor)
		}
	}
}

func cooldownOf(icon hud.PowerUpIcon) float64 {
	if icon.Uses >= 0 {
		return config.UltraCooldown
	}
	return config.PoisonCooldown
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}
