// internal/system/area_attack_system.go
package system

import (
	"math"

	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
)

// BlastRadius covers about 70% of the play field.
var BlastRadius = math.Sqrt(config.UltraAreaFraction * config.ScreenWidth * config.ScreenHeight / math.Pi)

// AreaAttackSystem наносит урон по области: the ultra blast.
type AreaAttackSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	fx              *intent.Buffer
}

func NewAreaAttackSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, fx *intent.Buffer) *AreaAttackSystem {
	return &AreaAttackSystem{ecs: ecs, eventDispatcher: eventDispatcher, fx: fx}
}

// Ready: unlocked, uses left and off cooldown
func (s *AreaAttackSystem) Ready() bool {
	ultra := s.ecs.PowerUps.Ultra
	return ultra.Unlocked && ultra.Uses > 0 && ultra.Cooldown <= 0
}

// Fire kills every enemy strictly inside BlastRadius around the player.
// Returns the number of enemies hit, or -1 when the blast was not ready.
func (s *AreaAttackSystem) Fire() int {
	pos := s.ecs.PlayerPosition()
	if !s.Ready() || pos == nil {
		return -1
	}

	victims := EnemiesWithin(s.ecs, pos.X, pos.Y, BlastRadius)
	for _, id := range victims {
		ApplyDamage(s.ecs, s.eventDispatcher, s.fx, id, config.UltraDamage, defs.SourceBlast)
	}

	ultra := &s.ecs.PowerUps.Ultra
	ultra.Uses--
	ultra.Cooldown = config.UltraCooldown
	s.fx.Push(intent.Intent{Kind: intent.BlastFired, X: pos.X, Y: pos.Y, Radius: BlastRadius, Value: len(victims)})
	return len(victims)
}
