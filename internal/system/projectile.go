// internal/system/projectile.go
package system

import (
	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
	"ender-sword/internal/scheduler"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *scheduler.Scheduler
	zones           *ZoneSystem
	fx              *intent.Buffer
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, sched *scheduler.Scheduler, zones *ZoneSystem, fx *intent.Buffer) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       sched,
		zones:           zones,
		fx:              fx,
	}
}

// Update moves every projectile along its launch direction and resolves hits
// against its own target only. A projectile whose target is gone keeps
// flying until its lifetime timer removes it.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if proj == nil || pos == nil {
			s.removeProjectile(id)
			continue
		}

		pos.X += proj.DirX * proj.Speed * deltaTime
		pos.Y += proj.DirY * proj.Speed * deltaTime

		if !s.ecs.IsEnemyAlive(proj.TargetID) {
			continue
		}
		target := s.ecs.Positions[proj.TargetID]
		if utils.Distance(pos.X, pos.Y, target.X, target.Y) < hitRadius(proj.Kind) {
			s.hitTarget(id, proj, target.X, target.Y)
		}
	}
}

func hitRadius(kind component.ProjectileKind) float64 {
	if kind == component.ProjectilePoison {
		return config.PoisonBallRadius
	}
	return config.ArrowHitRadius
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, x, y float64) {
	s.removeProjectile(projectileID)

	switch proj.Kind {
	case component.ProjectilePoison:
		s.zones.Spawn(x, y)
	default:
		ApplyDamage(s.ecs, s.eventDispatcher, s.fx, proj.TargetID, proj.Damage, defs.SourceArrow)
	}
}

// OnTimeout removes a projectile that never hit anything. A poison ball that
// times out leaves no zone.
func (s *ProjectileSystem) OnTimeout(id types.EntityID) {
	if _, ok := s.ecs.Projectiles[id]; !ok {
		return
	}
	s.ecs.RemoveEntity(id)
}

// removeProjectile cancels the lifetime timer before the entity goes away.
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	if proj := s.ecs.Projectiles[id]; proj != nil && proj.Timeout != 0 {
		s.scheduler.Cancel(proj.Timeout)
	}
	s.ecs.RemoveEntity(id)
}

// Clear removes all projectiles together with their timers.
func (s *ProjectileSystem) Clear() {
	for _, id := range s.ecs.ProjectileIDs() {
		s.removeProjectile(id)
	}
}
