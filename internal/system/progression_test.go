package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
)

func newProgression(w *world) *ProgressionSystem {
	ps := NewProgressionSystem(w.ecs, w.disp, w.fx)
	ps.Init()
	return ps
}

func TestInitSetsFirstWave(t *testing.T) {
	w := newWorld(t)
	newProgression(w)

	assert.Equal(t, 50, w.ecs.Progression.WaveTarget)
	assert.Equal(t, component.ThemeDojo, w.ecs.Progression.Theme)
	assert.Equal(t, []intent.Kind{intent.BackgroundChanged}, kinds(w.fx.Drain()))
}

func TestFiveScrollsFinishTheFirstWave(t *testing.T) {
	w := newWorld(t)
	ps := newProgression(w)
	w.fx.Drain()

	for i := 0; i < 4; i++ {
		assert.False(t, ps.Collect(SpawnDrop(w.ecs, 0, 0)))
	}
	assert.Equal(t, 40, w.ecs.Progression.WaveProgress)
	assert.Equal(t, 4, w.ecs.Progression.KillsThisWave)

	assert.True(t, ps.Collect(SpawnDrop(w.ecs, 0, 0)))

	p := w.ecs.Progression
	assert.Equal(t, 2, p.Wave)
	assert.Equal(t, 80, p.WaveTarget)
	assert.Zero(t, p.WaveProgress)
	assert.Zero(t, p.KillsThisWave)
	assert.Equal(t, 5, p.Scrolls)
	assert.True(t, p.AwaitingMath, "the fifth scroll also asks for a challenge")
	assert.Equal(t, 1, w.count(event.WaveAdvanced))
	assert.Equal(t, 5, w.count(event.DropCollected))
	assert.Equal(t, []intent.Kind{intent.BackgroundChanged, intent.WaveAdvanced}, kinds(w.fx.Drain()))
}

func TestWaveAdvanceReportsVictory(t *testing.T) {
	w := newWorld(t)
	ps := newProgression(w)
	w.ecs.Progression.Wave = config.VictoryWave - 1

	ps.AdvanceWave()

	last := w.events[len(w.events)-1]
	data := last.Data.(event.WaveAdvancedData)
	assert.Equal(t, config.VictoryWave, data.Wave)
	assert.True(t, data.Victory)
	assert.Equal(t, component.ThemeGate, w.ecs.Progression.Theme)
}

func TestPickupRadiusIsExclusive(t *testing.T) {
	w := newWorld(t)
	ps := newProgression(w)
	p := w.ecs.PlayerPosition()

	edge := SpawnDrop(w.ecs, p.X+config.DropPickupRadius, p.Y)
	near := SpawnDrop(w.ecs, p.X+config.DropPickupRadius-1, p.Y)
	ps.Update(frame)

	assert.Contains(t, w.ecs.Drops, edge)
	assert.NotContains(t, w.ecs.Drops, near)
	assert.Equal(t, config.DropWaveProgress, w.ecs.Progression.WaveProgress)
}

func TestPickupStopsAfterWaveAdvance(t *testing.T) {
	w := newWorld(t)
	ps := newProgression(w)
	w.ecs.Progression.WaveProgress = 40
	p := w.ecs.PlayerPosition()
	SpawnDrop(w.ecs, p.X, p.Y)
	second := SpawnDrop(w.ecs, p.X, p.Y)

	ps.Update(frame)

	assert.Equal(t, 2, w.ecs.Progression.Wave)
	assert.Contains(t, w.ecs.Drops, second, "left for the wave reset")
	assert.Zero(t, w.ecs.Progression.WaveProgress)
}
