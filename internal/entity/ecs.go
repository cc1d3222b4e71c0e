// internal/entity/ecs.go
package entity

import (
	"sort"

	"ender-sword/internal/component"
	"ender-sword/internal/types"
)

// ECS is the entity registry. Entities are plain ids; components live in
// per-kind maps and an entity exists as long as any map holds it.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	PlayerID      types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Players       map[types.EntityID]*component.Player
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Drops         map[types.EntityID]*component.Drop
	Zones         map[types.EntityID]*component.EffectZone
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Progression   *component.Progression
	PowerUps      *component.PowerUpState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Players:       make(map[types.EntityID]*component.Player),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Drops:         make(map[types.EntityID]*component.Drop),
		Zones:         make(map[types.EntityID]*component.EffectZone),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Progression:   &component.Progression{Wave: 1},
		PowerUps:      &component.PowerUpState{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id. Removing an unknown id is a no-op.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Drops, id)
	delete(ecs.Zones, id)
	delete(ecs.DamageFlashes, id)
}

// IsEnemyAlive - the enemy exists and still has health left
func (ecs *ECS) IsEnemyAlive(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; !ok {
		return false
	}
	h, ok := ecs.Healths[id]
	return ok && h.Value > 0
}

func (ecs *ECS) Player() *component.Player {
	return ecs.Players[ecs.PlayerID]
}

func (ecs *ECS) PlayerPosition() *component.Position {
	return ecs.Positions[ecs.PlayerID]
}

func (ecs *ECS) PlayerHealth() *component.Health {
	return ecs.Healths[ecs.PlayerID]
}

// EnemyIDs returns live enemy ids in creation order so that every pass over
// the enemies is deterministic for a given seed.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

func (ecs *ECS) DropIDs() []types.EntityID {
	return sortedKeys(ecs.Drops)
}

func (ecs *ECS) ZoneIDs() []types.EntityID {
	return sortedKeys(ecs.Zones)
}

func sortedKeys[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
