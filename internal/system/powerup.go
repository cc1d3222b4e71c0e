// internal/system/powerup.go
package system

import (
	"log/slog"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/intent"
	"ender-sword/internal/scheduler"
)

// Ability is what one press of the activation key did.
type Ability string

const (
	AbilityNone   Ability = ""
	AbilityPoison Ability = "poison"
	AbilityUltra  Ability = "ultra"
	AbilityDash   Ability = "dash"
)

// PowerUpSystem resolves the activation key.
type PowerUpSystem struct {
	ecs       *entity.ECS
	scheduler *scheduler.Scheduler
	blast     *AreaAttackSystem
	fx        *intent.Buffer
}

func NewPowerUpSystem(ecs *entity.ECS, sched *scheduler.Scheduler, blast *AreaAttackSystem, fx *intent.Buffer) *PowerUpSystem {
	return &PowerUpSystem{ecs: ecs, scheduler: sched, blast: blast, fx: fx}
}

// Activate picks the first ready ability in the order poison, ultra, dash.
// The chosen ability may still abort: poison with no enemy on the field
// does nothing and does not fall through to the next ability.
func (s *PowerUpSystem) Activate() Ability {
	state := s.ecs.PowerUps
	switch {
	case state.Poison.Unlocked && state.Poison.Cooldown <= 0:
		if !s.firePoison() {
			return AbilityNone
		}
		return AbilityPoison
	case s.blast.Ready():
		s.blast.Fire()
		return AbilityUltra
	case state.Dash.Unlocked && state.Dash.Uses > 0 && !state.Dash.Active:
		s.startDash()
		return AbilityDash
	}
	return AbilityNone
}

func (s *PowerUpSystem) firePoison() bool {
	from := s.ecs.PlayerPosition()
	if from == nil {
		return false
	}
	targetID, _, ok := NearestEnemy(s.ecs, from.X, from.Y)
	if !ok {
		return false
	}
	to := s.ecs.Positions[targetID]

	id := LaunchProjectile(s.ecs, s.scheduler, component.ProjectilePoison, targetID,
		from.X, from.Y, to.X, to.Y, config.PoisonBallSpeed, config.PoisonBallTimeout)
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PoisonBallColor, Radius: 8}
	s.ecs.PowerUps.Poison.Cooldown = config.PoisonCooldown
	s.fx.Push(intent.Intent{Kind: intent.ProjectileFired, EntityID: id, X: from.X, Y: from.Y})
	return true
}

// startDash never spends a use; the dash can be reactivated as soon as it
// wears off.
func (s *PowerUpSystem) startDash() {
	dash := &s.ecs.PowerUps.Dash
	dash.Active = true
	dash.Timer = config.DashDuration
	if player := s.ecs.Player(); player != nil {
		player.Speed = config.PlayerDashSpeed
	}
}

// Reset puts the runtime state back to the start-of-wave loadout.
func (s *PowerUpSystem) Reset() {
	ResetPowerUps(s.ecs)
}

// ResetPowerUps locks everything, ends the dash and refills the use counters.
func ResetPowerUps(ecs *entity.ECS) {
	*ecs.PowerUps = component.PowerUpState{
		Dash:  component.DashState{Uses: config.DashUses},
		Ultra: component.UltraState{Uses: config.UltraUses},
	}
	if player := ecs.Player(); player != nil {
		player.Speed = config.PlayerBaseSpeed
	}
}

// SyncUnlocked mirrors catalog levels into the runtime unlocked flags.
func SyncUnlocked(state *component.PowerUpState, catalog []defs.PowerUpDefinition) {
	for _, def := range catalog {
		owned := def.Owned()
		switch def.ID {
		case defs.PowerUpDash:
			state.Dash.Unlocked = owned
		case defs.PowerUpRecovery:
			state.Recovery.Unlocked = owned
		case defs.PowerUpPoison:
			state.Poison.Unlocked = owned
		case defs.PowerUpUltra:
			state.Ultra.Unlocked = owned
		default:
			slog.Warn("unknown power-up in catalog", "id", def.ID)
		}
	}
}
