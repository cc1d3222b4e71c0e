// internal/system/collision.go
package system

import (
	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

// CollisionSystem resolves enemy contact with the player.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	player          *PlayerSystem
	progression     *ProgressionSystem
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, player *PlayerSystem, progression *ProgressionSystem) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher, player: player, progression: progression}
}

// Contacts returns the enemies touching the player and how many enemies
// crowd the player, both from the current positions.
func (s *CollisionSystem) Contacts() ([]types.EntityID, int) {
	pos := s.ecs.PlayerPosition()
	if pos == nil {
		return nil, 0
	}
	var touching []types.EntityID
	nearby := 0
	for _, id := range s.ecs.EnemyIDs() {
		ep := s.ecs.Positions[id]
		if ep == nil || !s.ecs.IsEnemyAlive(id) {
			continue
		}
		d := utils.Distance(pos.X, pos.Y, ep.X, ep.Y)
		if d < config.ContactRadius {
			touching = append(touching, id)
		}
		if d < config.CrowdRadius {
			nearby++
		}
	}
	return touching, nearby
}

// ContactDamage is the hit taken when nearby enemies crowd the player.
func ContactDamage(nearby int) int {
	if nearby > config.ContactCrowdCap {
		nearby = config.ContactCrowdCap
	}
	dmg := config.ContactDamageStep * nearby
	if dmg > config.ContactDamageMax {
		dmg = config.ContactDamageMax
	}
	return dmg
}

// Update snapshots every contact first and applies the outcome afterwards,
// so the result never depends on which enemy is looked at first. A dashing
// player destroys everything it touches and each kill is worth a scroll of
// wave progress on the spot; otherwise the crowd deals a single hit and the
// colliding enemies survive.
func (s *CollisionSystem) Update(deltaTime float64) {
	touching, nearby := s.Contacts()
	if len(touching) == 0 {
		return
	}

	if s.ecs.PowerUps.Dash.Active {
		for _, id := range touching {
			if !KillEnemy(s.ecs, s.eventDispatcher, id, defs.SourceContact) {
				continue
			}
			// a finished wave has already cleared the field
			if s.progression.Credit(config.DropWaveProgress) {
				return
			}
		}
		return
	}

	if !s.player.Vulnerable() {
		return
	}
	if s.player.Damage(ContactDamage(nearby)) > 0 {
		if player := s.ecs.Player(); player != nil {
			player.InvulnTimer = config.PlayerInvulnSeconds
		}
	}
}
