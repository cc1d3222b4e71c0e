// internal/system/status_effect.go
package system

import (
	"ender-sword/internal/config"
	"ender-sword/internal/entity"
)

// StatusEffectSystem ticks power-up cooldowns and the dash timer.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	state := s.ecs.PowerUps

	state.Poison.Cooldown = tickDown(state.Poison.Cooldown, deltaTime)
	state.Ultra.Cooldown = tickDown(state.Ultra.Cooldown, deltaTime)

	if state.Dash.Active {
		state.Dash.Timer -= deltaTime
		if state.Dash.Timer <= 0 {
			state.Dash.Active = false
			state.Dash.Timer = 0
			if player := s.ecs.Player(); player != nil {
				player.Speed = config.PlayerBaseSpeed
			}
		}
	}
}

func tickDown(v, deltaTime float64) float64 {
	if v <= 0 {
		return 0
	}
	v -= deltaTime
	if v < 0 {
		return 0
	}
	return v
}
