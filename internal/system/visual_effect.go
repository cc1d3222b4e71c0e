// internal/system/visual_effect.go
package system

import (
	"ender-sword/internal/config"
	"ender-sword/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update decays damage flashes and fades the player while dashing.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	if r := s.ecs.Renderables[s.ecs.PlayerID]; r != nil {
		if s.ecs.PowerUps.Dash.Active {
			r.Color = config.PlayerDashColor
		} else {
			r.Color = config.PlayerColor
		}
	}
}
