package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/scheduler"
	"ender-sword/internal/utils"
)

func assertSeparated(t *testing.T, w *world) {
	t.Helper()
	p := w.ecs.PlayerPosition()
	ids := w.ecs.EnemyIDs()
	for i, a := range ids {
		pa := w.ecs.Positions[a]
		assert.GreaterOrEqual(t, utils.Distance(p.X, p.Y, pa.X, pa.Y), config.SpawnMinSeparation)
		for _, b := range ids[i+1:] {
			pb := w.ecs.Positions[b]
			assert.GreaterOrEqual(t, utils.Distance(pa.X, pa.Y, pb.X, pb.Y), config.SpawnMinSeparation)
		}
	}
}

func TestStartSpawnsSeparatedEnemies(t *testing.T) {
	w := newWorld(t)
	waves := NewWaveSystem(w.ecs, w.sched, w.rng)

	waves.Start()

	assert.NotEmpty(t, w.ecs.Enemies)
	assert.LessOrEqual(t, len(w.ecs.Enemies), config.InitialEnemies)
	assertSeparated(t, w)
	assert.Equal(t, 1, w.sched.Len(), "spawn timer armed")
}

func TestSpawnerNeverExceedsCap(t *testing.T) {
	w := newWorld(t)
	w.ecs.Progression.Wave = 6
	waves := NewWaveSystem(w.ecs, w.sched, w.rng)

	for i := 0; i < 50; i++ {
		waves.OnSpawnTick()
		assert.LessOrEqual(t, len(w.ecs.Enemies), config.MaxEnemies)
	}
	assertSeparated(t, w)
}

func TestSpawnTimerFiresEveryTwoSeconds(t *testing.T) {
	w := newWorld(t)
	waves := NewWaveSystem(w.ecs, w.sched, w.rng)
	waves.Start()

	ticks := 0
	for i := 0; i < 60*7; i++ {
		w.sched.Advance(frame, func(m scheduler.Message) {
			if m.Kind == MsgSpawnTick {
				ticks++
			}
		})
	}
	assert.Equal(t, 3, ticks)
}

func TestSpawnedEnemyMatchesWave(t *testing.T) {
	w := newWorld(t)
	w.ecs.Progression.Wave = 2
	waves := NewWaveSystem(w.ecs, w.sched, w.rng)

	id, ok := waves.SpawnEnemy()
	if assert.True(t, ok) {
		e := w.ecs.Enemies[id]
		assert.Equal(t, component.SkinSpiderJockey, e.Skin)
		assert.Equal(t, 104.0, e.Speed)
		assert.Equal(t, config.EnemyMaxHealth, w.ecs.Healths[id].Value)

		r := utils.Distance(0, 0, e.OffsetX, e.OffsetY)
		assert.GreaterOrEqual(t, r, float64(config.OffsetRadiusMin)-1e-9)
		assert.LessOrEqual(t, r, float64(config.OffsetRadiusMax)+1e-9)
	}
}

func TestSpawnRefusedAtCap(t *testing.T) {
	w := newWorld(t)
	for i := 0; i < config.MaxEnemies; i++ {
		w.addEnemy(float64(i*10), 0, 20)
	}
	waves := NewWaveSystem(w.ecs, w.sched, w.rng)

	_, ok := waves.SpawnEnemy()
	assert.False(t, ok)
	assert.Zero(t, waves.OnSpawnTick())
}

func TestSpawnSkippedWhenNoSpotIsFree(t *testing.T) {
	w := newWorld(t)
	// a 3x3 grid leaves every point of the field within 240px of an enemy
	for _, x := range []float64{160, 480, 800} {
		for _, y := range []float64{90, 270, 450} {
			w.addEnemy(x, y, 20)
		}
	}
	waves := NewWaveSystem(w.ecs, w.sched, w.rng)
	before := len(w.ecs.Enemies)

	_, ok := waves.SpawnEnemy()
	assert.False(t, ok)
	assert.Equal(t, before, len(w.ecs.Enemies))

	assert.Zero(t, waves.OnSpawnTick(), "a skipped spawn is not retried")
	assert.Equal(t, before, len(w.ecs.Enemies))
	assert.Less(t, before, config.MaxEnemies)
}
