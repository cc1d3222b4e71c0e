// internal/system/combat.go
package system

import (
	"log/slog"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
	"ender-sword/internal/scheduler"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

// CombatSystem управляет автоатакой игрока.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *scheduler.Scheduler
	fx              *intent.Buffer
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, sched *scheduler.Scheduler, fx *intent.Buffer) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       sched,
		fx:              fx,
	}
}

// Ready reports whether the attack cooldown has passed. The cooldown is
// measured from the timestamp of the last arrow, not accumulated.
func (s *CombatSystem) Ready() bool {
	player := s.ecs.Player()
	if player == nil || !player.CanAttack {
		return false
	}
	return !player.HasAttacked || s.ecs.GameTime-player.LastAttack >= config.AttackCooldown
}

// CooldownProgress is how much of the attack cooldown has run, in [0, 1].
// Before the first arrow it is 1.
func CooldownProgress(ecs *entity.ECS) float64 {
	player := ecs.Player()
	if player == nil || !player.HasAttacked {
		return 1
	}
	return utils.Clamp((ecs.GameTime-player.LastAttack)/config.AttackCooldown, 0, 1)
}

// Update fires one arrow at the nearest enemy in range. Without a target the
// cooldown is left untouched.
func (s *CombatSystem) Update(deltaTime float64) {
	if !s.Ready() {
		return
	}
	pos := s.ecs.PlayerPosition()
	if pos == nil {
		return
	}
	targetID, dist, ok := NearestEnemy(s.ecs, pos.X, pos.Y)
	if !ok || dist > config.AttackRange {
		return
	}
	s.fireArrow(targetID)
}

func (s *CombatSystem) fireArrow(targetID types.EntityID) {
	player := s.ecs.Player()
	from := s.ecs.PlayerPosition()
	to := s.ecs.Positions[targetID]

	id := LaunchProjectile(s.ecs, s.scheduler, component.ProjectileArrow, targetID,
		from.X, from.Y, to.X, to.Y, config.ArrowSpeed, config.ArrowLifetime)
	s.ecs.Projectiles[id].Damage = config.ArrowDamage
	s.ecs.Renderables[id] = &component.Renderable{Color: config.ArrowColor, Radius: 4}

	player.LastAttack = s.ecs.GameTime
	player.HasAttacked = true
	player.ShotsFired++
	s.fx.Push(intent.Intent{Kind: intent.ProjectileFired, EntityID: id, X: from.X, Y: from.Y})

	if player.ShotsFired%config.ShotsBeforeQuiz == 0 {
		RequireMath(s.ecs, s.eventDispatcher, "shots")
	}
}

// RequireMath suspends attacking until the challenge is answered correctly.
func RequireMath(ecs *entity.ECS, dispatcher *event.Dispatcher, reason string) {
	if player := ecs.Player(); player != nil {
		player.CanAttack = false
	}
	if ecs.Progression.AwaitingMath {
		return
	}
	ecs.Progression.AwaitingMath = true
	slog.Debug("math challenge required", "reason", reason)
	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{Type: event.MathRequired, Data: reason})
	}
}

// LaunchProjectile creates a projectile heading from (fx, fy) toward (tx, ty)
// and arms its lifetime timer on the simulation lane.
func LaunchProjectile(ecs *entity.ECS, sched *scheduler.Scheduler, kind component.ProjectileKind, targetID types.EntityID, fx, fy, tx, ty, speed, lifetime float64) types.EntityID {
	dx, dy := utils.Normalize(tx-fx, ty-fy)
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: fx, Y: fy}
	ecs.Velocities[id] = &component.Velocity{X: dx * speed, Y: dy * speed}
	ecs.Projectiles[id] = &component.Projectile{
		Kind:     kind,
		TargetID: targetID,
		DirX:     dx,
		DirY:     dy,
		Speed:    speed,
		Timeout: sched.ScheduleOnce(scheduler.LaneSim, lifetime,
			scheduler.Message{Kind: MsgProjectileTimeout, EntityID: id}),
	}
	return id
}
