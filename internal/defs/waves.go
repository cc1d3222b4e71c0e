package defs

import (
	"ender-sword/internal/component"
	"ender-sword/internal/config"
)

// WaveTarget is the wave progress needed to clear the wave
func WaveTarget(wave int) int {
	return config.WaveTargetBase + (wave-1)*config.WaveTargetPerWave
}

// SpawnCount is how many enemies one spawner tick adds.
func SpawnCount(wave, live int) int {
	n := wave/2 + 1
	if n > config.MaxSpawnPerTick {
		n = config.MaxSpawnPerTick
	}
	if free := config.MaxEnemies - live; n > free {
		n = free
	}
	if n < 0 {
		return 0
	}
	return n
}

func ThemeForWave(wave int) component.Theme {
	switch {
	case wave >= 5:
		return component.ThemeGate
	case wave >= 3:
		return component.ThemeVillage
	default:
		return component.ThemeDojo
	}
}

func IsVictoryWave(wave int) bool {
	return wave == config.VictoryWave
}
