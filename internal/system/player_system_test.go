package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ender-sword/internal/config"
	"ender-sword/internal/event"
	"ender-sword/internal/input"
)

func TestRegenOneHealthEveryFourSeconds(t *testing.T) {
	w := newWorld(t)
	w.ecs.PlayerHealth().Value = 20

	for i := 0; i < 239; i++ {
		w.player.Update(frame)
	}
	assert.Equal(t, 20, w.ecs.PlayerHealth().Value)

	w.player.Update(frame)
	assert.Equal(t, 21, w.ecs.PlayerHealth().Value)
}

func TestRecoveryRaisesRegen(t *testing.T) {
	w := newWorld(t)
	w.ecs.PowerUps.Recovery.Unlocked = true
	w.ecs.PlayerHealth().Value = 10

	assert.InDelta(t, 0.75, w.player.RegenRate(), 1e-9)
	for i := 0; i < 240; i++ {
		w.player.Update(frame)
	}
	assert.Equal(t, 13, w.ecs.PlayerHealth().Value)
}

func TestRegenStopsAtMax(t *testing.T) {
	w := newWorld(t)
	w.ecs.PlayerHealth().Value = config.PlayerMaxHealth - 1
	for i := 0; i < 60*30; i++ {
		w.player.Update(frame)
	}
	assert.Equal(t, config.PlayerMaxHealth, w.ecs.PlayerHealth().Value)
	assert.Zero(t, w.ecs.Player().RegenAccumulator)
}

func TestDamageRespectsInvulnerabilityAndDash(t *testing.T) {
	w := newWorld(t)

	w.ecs.Player().InvulnTimer = 0.5
	assert.Zero(t, w.player.Damage(5))

	w.ecs.Player().InvulnTimer = 0
	w.ecs.PowerUps.Dash.Active = true
	assert.Zero(t, w.player.Damage(5))

	w.ecs.PowerUps.Dash.Active = false
	assert.Equal(t, 5, w.player.Damage(5))
	assert.Equal(t, config.PlayerMaxHealth-5, w.ecs.PlayerHealth().Value)
	assert.Equal(t, 1, w.count(event.PlayerDamaged))
}

func TestDamageToZeroDiesOnce(t *testing.T) {
	w := newWorld(t)
	w.ecs.PlayerHealth().Value = 4

	assert.Equal(t, 4, w.player.Damage(6))
	assert.Zero(t, w.ecs.PlayerHealth().Value)
	assert.Zero(t, w.player.Damage(6))
	assert.Equal(t, 1, w.count(event.PlayerDied))
}

func TestMoveClampsToArena(t *testing.T) {
	w := newWorld(t)
	pos := w.ecs.PlayerPosition()
	pos.X, pos.Y = 2, config.ScreenHeight-1

	w.player.Move(0.1, input.Frame{Left: true, Down: true})

	assert.Zero(t, pos.X)
	assert.Equal(t, float64(config.ScreenHeight), pos.Y)
	assert.True(t, w.ecs.Player().FacingLeft)
}

func TestMoveDiagonalIsNotNormalized(t *testing.T) {
	w := newWorld(t)
	pos := w.ecs.PlayerPosition()
	x, y := pos.X, pos.Y

	w.player.Move(0.1, input.Frame{Right: true, Up: true})

	assert.InDelta(t, x+20, pos.X, 1e-9)
	assert.InDelta(t, y-20, pos.Y, 1e-9)
}
