// internal/system/zone.go
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
)

// ZoneSystem owns poison clouds. A zone lives on two timers: a repeating
// damage tick and a one-shot expiry that cancels the tick first.
type ZoneSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *scheduler.Scheduler
	fx              *intent.Buffer
}

func NewZoneSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, sched *scheduler.Scheduler, fx *intent.Buffer) *ZoneSystem {
	return &ZoneSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       sched,
		fx:              fx,
	}
}

// Spawn creates a poison zone at (x, y).
func (s *ZoneSystem) Spawn(x, y float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PoisonZoneColor, Radius: config.PoisonZoneRadius}
	s.ecs.Zones[id] = &component.EffectZone{
		Radius:     config.PoisonZoneRadius,
		TickDamage: config.PoisonTickDamage,
		Ticker: s.scheduler.ScheduleRepeating(scheduler.LaneSim, config.PoisonTickEvery, config.PoisonTickRepeats,
			scheduler.Message{Kind: MsgZoneTick, EntityID: id}),
		Expiry: s.scheduler.ScheduleOnce(scheduler.LaneSim, config.PoisonZoneLife,
			scheduler.Message{Kind: MsgZoneExpire, EntityID: id}),
	}
	s.fx.Push(intent.Intent{Kind: intent.ZoneSpawned, EntityID: id, X: x, Y: y, Radius: config.PoisonZoneRadius})
	return id
}

// OnTick damages every enemy inside the zone. The victims are collected
// before any damage is applied.
func (s *ZoneSystem) OnTick(id types.EntityID) int {
	zone, ok := s.ecs.Zones[id]
	pos := s.ecs.Positions[id]
	if !ok || pos == nil {
		return 0
	}
	victims := EnemiesWithin(s.ecs, pos.X, pos.Y, zone.Radius)
	for _, enemyID := range victims {
		ApplyDamage(s.ecs, s.eventDispatcher, s.fx, enemyID, zone.TickDamage, defs.SourcePoison)
	}
	return len(victims)
}

// OnExpire removes the zone.
func (s *ZoneSystem) OnExpire(id types.EntityID) {
	s.remove(id)
}

// Clear removes every zone and its timers.
func (s *ZoneSystem) Clear() {
	for _, id := range s.ecs.ZoneIDs() {
		s.remove(id)
	}
}

func (s *ZoneSystem) remove(id types.EntityID) {
	zone, ok := s.ecs.Zones[id]
	if !ok {
		return
	}
	s.scheduler.Cancel(zone.Ticker)
	s.scheduler.Cancel(zone.Expiry)
	s.ecs.RemoveEntity(id)
}
