// internal/system/player_system.go
package system

import (
	"math"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/input"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

// PlayerSystem отвечает за здоровье, неуязвимость и движение игрока.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Spawn creates the player at the start position with full health.
func (s *PlayerSystem) Spawn() types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.PlayerID = id
	s.ecs.Positions[id] = &component.Position{X: config.PlayerStartX, Y: config.PlayerStartY}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Radius: config.PlayerRadius, HasStroke: true}
	s.ecs.Players[id] = &component.Player{
		Speed:     config.PlayerBaseSpeed,
		CanAttack: true,
	}
	return id
}

// RegenRate is health per second.
func (s *PlayerSystem) RegenRate() float64 {
	rate := config.BaseRegenRate
	if s.ecs.PowerUps.Recovery.Unlocked {
		rate += config.RecoveryRegenRate
	}
	return rate
}

// Update ticks invulnerability and regeneration.
func (s *PlayerSystem) Update(deltaTime float64) {
	player := s.ecs.Player()
	health := s.ecs.PlayerHealth()
	if player == nil || health == nil {
		return
	}

	if player.InvulnTimer > 0 {
		player.InvulnTimer -= deltaTime
		if player.InvulnTimer < 0 {
			player.InvulnTimer = 0
		}
	}

	if health.Full() {
		player.RegenAccumulator = 0
		return
	}
	player.RegenAccumulator += s.RegenRate() * deltaTime
	// the epsilon keeps 1/60 s frames from landing a hair under a whole unit
	whole := math.Floor(player.RegenAccumulator + 1e-9)
	if whole > 0 {
		health.Value += int(whole)
		if health.Value > health.Max {
			health.Value = health.Max
		}
		player.RegenAccumulator -= whole
	}
}

// Move sets velocity from the held directions and integrates it. Diagonals
// are not normalized.
func (s *PlayerSystem) Move(deltaTime float64, frame input.Frame) {
	player := s.ecs.Player()
	pos := s.ecs.PlayerPosition()
	vel := s.ecs.Velocities[s.ecs.PlayerID]
	if player == nil || pos == nil || vel == nil {
		return
	}

	ax, ay := frame.Axis()
	vel.X = ax * player.Speed
	vel.Y = ay * player.Speed
	if vel.X < 0 {
		player.FacingLeft = true
	} else if vel.X > 0 {
		player.FacingLeft = false
	}

	pos.X = utils.Clamp(pos.X+vel.X*deltaTime, 0, config.ScreenWidth)
	pos.Y = utils.Clamp(pos.Y+vel.Y*deltaTime, 0, config.ScreenHeight)
}

// Vulnerable reports whether damage would land right now
func (s *PlayerSystem) Vulnerable() bool {
	player := s.ecs.Player()
	if player == nil {
		return false
	}
	return player.InvulnTimer <= 0 && !s.ecs.PowerUps.Dash.Active
}

// Damage subtracts health unless the player is invulnerable or dashing.
// Reaching zero dispatches PlayerDied. Returns the damage actually taken.
func (s *PlayerSystem) Damage(amount int) int {
	health := s.ecs.PlayerHealth()
	if health == nil || amount <= 0 || !s.Vulnerable() || health.Value <= 0 {
		return 0
	}
	if amount > health.Value {
		amount = health.Value
	}
	health.Value -= amount

	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: amount})
	if health.Value <= 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
	return amount
}
