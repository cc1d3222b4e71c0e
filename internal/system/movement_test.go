package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/utils"
)

func TestDirectSteerIsFullSpeed(t *testing.T) {
	e := &component.Enemy{Speed: 100, ZigzagDir: 1}

	vx, vy := Steer(e, 0, 0, 30, 40)

	assert.InDelta(t, 60, vx, 1e-9)
	assert.InDelta(t, 80, vy, 1e-9)
	assert.Zero(t, e.ZigzagTime)
}

func TestZigzagAdvancesPerCallNotPerSecond(t *testing.T) {
	e := &component.Enemy{Speed: 100, Pattern: component.PatternZigzag, ZigzagDir: 1}

	Steer(e, 0, 0, 100, 0)
	assert.InDelta(t, config.ZigzagTickStep, e.ZigzagTime, 1e-12)

	vx, vy := Steer(e, 0, 0, 100, 0)
	assert.InDelta(t, 2*config.ZigzagTickStep, e.ZigzagTime, 1e-12)
	assert.InDelta(t, 70, vx, 1e-9)
	assert.InDelta(t, 18, vy, 1e-9)
}

func TestZigzagFlipsAfterItsPeriod(t *testing.T) {
	e := &component.Enemy{Speed: 100, Pattern: component.PatternZigzag, ZigzagDir: 1}

	for i := 0; i < 120; i++ {
		Steer(e, 0, 0, 100, 0)
	}
	assert.Equal(t, 1.0, e.ZigzagDir)

	for i := 0; i < 10; i++ {
		Steer(e, 0, 0, 100, 0)
	}
	assert.Equal(t, -1.0, e.ZigzagDir)
	_, vy := Steer(e, 0, 0, 100, 0)
	assert.Less(t, vy, 0.0)
}

func TestSeparationPushesApartSymmetrically(t *testing.T) {
	w := newWorld(t)
	a := w.addEnemy(100, 100, 20)
	b := w.addEnemy(110, 100, 20)
	ms := NewMovementSystem(w.ecs, w.rng)

	ms.separate(w.ecs.EnemyIDs(), 0.1)

	assert.InDelta(t, 100-config.SeparationStrength*0.1, w.ecs.Positions[a].X, 1e-9)
	assert.InDelta(t, 110+config.SeparationStrength*0.1, w.ecs.Positions[b].X, 1e-9)
	assert.InDelta(t, 100, w.ecs.Positions[a].Y, 1e-9)
}

func TestSeparationIgnoresDistantEnemies(t *testing.T) {
	w := newWorld(t)
	a := w.addEnemy(100, 100, 20)
	w.addEnemy(100+config.SeparationRadius, 100, 20)
	ms := NewMovementSystem(w.ecs, w.rng)

	ms.separate(w.ecs.EnemyIDs(), 0.1)

	assert.Equal(t, 100.0, w.ecs.Positions[a].X)
}

func TestEnemiesClosePursuit(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(100, 100, 20)
	ms := NewMovementSystem(w.ecs, w.rng)
	p := w.ecs.PlayerPosition()
	before := utils.Distance(100, 100, p.X, p.Y)

	for i := 0; i < 30; i++ {
		ms.Update(frame)
	}

	pos := w.ecs.Positions[id]
	assert.Less(t, utils.Distance(pos.X, pos.Y, p.X, p.Y), before)
	assert.False(t, w.ecs.Enemies[id].FacingLeft, "the player is to the right")
	assert.False(t, math.IsNaN(pos.X))
}
