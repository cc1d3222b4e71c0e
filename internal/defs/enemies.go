// internal/defs/enemies.go
package defs

import (
	"image/color"
	"math"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
)

type Visuals struct {
	Color    color.RGBA
	EyeColor color.RGBA
	Radius   float32
	Glyph    rune // terminal host
}

// EnemyDefinition holds the static data for an enemy skin.
type EnemyDefinition struct {
	Skin    component.Skin
	Name    string
	Health  int
	Visuals Visuals
}

var EnemyLibrary = map[component.Skin]EnemyDefinition{
	component.SkinEnderman: {
		Skin:   component.SkinEnderman,
		Name:   "Enderman",
		Health: config.EnemyMaxHealth,
		Visuals: Visuals{
			Color:    config.EndermanColor,
			EyeColor: config.EndermanEyeColor,
			Radius:   config.EnemyRadius,
			Glyph:    'E',
		},
	},
	component.SkinSpiderJockey: {
		Skin:   component.SkinSpiderJockey,
		Name:   "Spider Jockey",
		Health: config.EnemyMaxHealth,
		Visuals: Visuals{
			Color:    config.SpiderColor,
			EyeColor: config.SpiderEyeColor,
			Radius:   config.EnemyRadius,
			Glyph:    'S',
		},
	},
}

// EnemyForWave: odd waves send endermen, even waves spider jockeys
func EnemyForWave(wave int) EnemyDefinition {
	if wave%2 == 0 {
		return EnemyLibrary[component.SkinSpiderJockey]
	}
	return EnemyLibrary[component.SkinEnderman]
}

// EnemySpeed is 100 px/s on wave 1 plus 4% per later wave, floored.
func EnemySpeed(wave int) float64 {
	mult := 1 + config.EnemySpeedPerWave*float64(wave-1)
	return math.Floor(config.EnemyBaseSpeed * mult)
}
