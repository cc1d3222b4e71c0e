// internal/system/movement.go
package system

import (
	"math"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/entity"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

// MovementSystem drives enemy AI: separation, pursuit of a private point
// around the player, and the zigzag pattern.
type MovementSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewMovementSystem(ecs *entity.ECS, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{ecs: ecs, rng: rng}
}

// Update runs separation for every enemy before any of them steers, so the
// result does not depend on iteration order.
func (s *MovementSystem) Update(deltaTime float64) {
	ids := s.ecs.EnemyIDs()
	s.separate(ids, deltaTime)

	player := s.ecs.PlayerPosition()
	if player == nil {
		return
	}
	for _, id := range ids {
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if enemy == nil || pos == nil || vel == nil {
			continue
		}

		tx := player.X + enemy.OffsetX + float64(s.rng.Between(-config.TargetJitter, config.TargetJitter))
		ty := player.Y + enemy.OffsetY + float64(s.rng.Between(-config.TargetJitter, config.TargetJitter))
		vel.X, vel.Y = Steer(enemy, pos.X, pos.Y, tx, ty)

		if vel.X > 0 {
			enemy.FacingLeft = false
		} else if vel.X < 0 {
			enemy.FacingLeft = true
		}

		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
	}
}

func (s *MovementSystem) separate(ids []types.EntityID, deltaTime float64) {
	type point struct{ x, y float64 }
	snapshot := make(map[types.EntityID]point, len(ids))
	for _, id := range ids {
		if pos := s.ecs.Positions[id]; pos != nil {
			snapshot[id] = point{pos.X, pos.Y}
		}
	}

	for _, id := range ids {
		me, ok := snapshot[id]
		if !ok {
			continue
		}
		var sx, sy float64
		for _, other := range ids {
			if other == id {
				continue
			}
			o, ok := snapshot[other]
			if !ok {
				continue
			}
			d := utils.Distance(me.x, me.y, o.x, o.y)
			if d > 0 && d < config.SeparationRadius {
				sx += (me.x - o.x) / d
				sy += (me.y - o.y) / d
			}
		}
		if sx == 0 && sy == 0 {
			continue
		}
		nx, ny := utils.Normalize(sx, sy)
		pos := s.ecs.Positions[id]
		pos.X += nx * config.SeparationStrength * deltaTime
		pos.Y += ny * config.SeparationStrength * deltaTime
	}
}

// Steer returns the velocity of enemy at (x, y) heading for (tx, ty).
// The zigzag timer advances by a fixed step per call rather than by elapsed
// time, so the weave is tied to the frame rate.
func Steer(enemy *component.Enemy, x, y, tx, ty float64) (float64, float64) {
	angle := math.Atan2(ty-y, tx-x)
	if enemy.Pattern != component.PatternZigzag {
		return polar(angle, enemy.Speed)
	}

	enemy.ZigzagTime += config.ZigzagTickStep
	if enemy.ZigzagTime >= config.ZigzagFlipAfter {
		enemy.ZigzagTime = 0
		enemy.ZigzagDir = -enemy.ZigzagDir
	}
	vx, vy := polar(angle, enemy.Speed*config.ZigzagForward)
	px, py := polar(angle+math.Pi/2*enemy.ZigzagDir, enemy.Speed*config.ZigzagLateral)
	return vx + px, vy + py
}

func polar(angle, length float64) (float64, float64) {
	return math.Cos(angle) * length, math.Sin(angle) * length
}
