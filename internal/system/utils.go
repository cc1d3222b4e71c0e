// internal/system/utils.go
package system

import (
	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

// ApplyDamage наносит урон врагу. Every damage source goes through here:
// a hit on a missing or already dead enemy is a no-op. Returns true when
// the hit was lethal.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, fx *intent.Buffer, enemyID types.EntityID, damage int, source defs.DamageSource) bool {
	if damage <= 0 || !ecs.IsEnemyAlive(enemyID) {
		return false
	}
	health := ecs.Healths[enemyID]
	pos := ecs.Positions[enemyID]

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	fx.Push(intent.Intent{Kind: intent.SoundHit, EntityID: enemyID})
	if pos != nil {
		fx.Push(intent.Intent{Kind: intent.DamageNumber, EntityID: enemyID, X: pos.X, Y: pos.Y, Value: damage})
	}
	ecs.DamageFlashes[enemyID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}

	if health.Value > 0 {
		return false
	}
	KillEnemy(ecs, dispatcher, enemyID, source)
	return true
}

// KillEnemy leaves a scroll where the enemy stood, removes it and counts
// the kill. Returns false when there was no such enemy.
func KillEnemy(ecs *entity.ECS, dispatcher *event.Dispatcher, enemyID types.EntityID, source defs.DamageSource) bool {
	if _, ok := ecs.Enemies[enemyID]; !ok {
		return false
	}
	var x, y float64
	if pos := ecs.Positions[enemyID]; pos != nil {
		x, y = pos.X, pos.Y
	}
	dropID := SpawnDrop(ecs, x, y)
	ecs.RemoveEntity(enemyID)

	ecs.Progression.KillsThisWave++
	ecs.Progression.TotalKills++

	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{EnemyID: enemyID, DropID: dropID, X: x, Y: y, Source: string(source)},
		})
	}
	return true
}

func SpawnDrop(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Drops[id] = &component.Drop{Value: config.DropWaveProgress}
	ecs.Renderables[id] = &component.Renderable{Color: config.ScrollColor, Radius: 6}
	return id
}

// NearestEnemy returns the closest live enemy to (x, y). Ties go to the
// older enemy.
func NearestEnemy(ecs *entity.ECS, x, y float64) (types.EntityID, float64, bool) {
	var best types.EntityID
	bestDist := 0.0
	found := false
	for _, id := range ecs.EnemyIDs() {
		if !ecs.IsEnemyAlive(id) {
			continue
		}
		pos := ecs.Positions[id]
		if pos == nil {
			continue
		}
		d := utils.Distance(x, y, pos.X, pos.Y)
		if !found || d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, bestDist, found
}

// EnemiesWithin lists live enemies strictly closer than radius to (x, y).
func EnemiesWithin(ecs *entity.ECS, x, y, radius float64) []types.EntityID {
	var out []types.EntityID
	for _, id := range ecs.EnemyIDs() {
		pos := ecs.Positions[id]
		if pos == nil || !ecs.IsEnemyAlive(id) {
			continue
		}
		if utils.Distance(x, y, pos.X, pos.Y) < radius {
			out = append(out, id)
		}
	}
	return out
}
