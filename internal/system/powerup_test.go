package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/defs"
	"ender-sword/internal/intent"
)

func newPowerUps(w *world) *PowerUpSystem {
	return NewPowerUpSystem(w.ecs, w.sched, NewAreaAttackSystem(w.ecs, w.disp, w.fx), w.fx)
}

func TestUltraBlastClearsTheField(t *testing.T) {
	w := newWorld(t)
	for i := 0; i < 5; i++ {
		w.addEnemyNearPlayer(float64(30+i*20), 20)
	}
	w.ecs.PowerUps.Ultra.Unlocked = true
	pu := newPowerUps(w)

	assert.Equal(t, AbilityUltra, pu.Activate())
	assert.Empty(t, w.ecs.Enemies)
	assert.Len(t, w.ecs.Drops, 5)
	assert.Equal(t, 1, w.ecs.PowerUps.Ultra.Uses)
	assert.Equal(t, config.UltraCooldown, w.ecs.PowerUps.Ultra.Cooldown)

	for _, in := range w.fx.Drain() {
		if in.Kind == intent.BlastFired {
			assert.Equal(t, 5, in.Value)
			assert.InDelta(t, BlastRadius, in.Radius, 1e-9)
		}
	}

	w.addEnemyNearPlayer(50, 20)
	assert.Equal(t, AbilityNone, pu.Activate(), "still cooling down")
	assert.Len(t, w.ecs.Enemies, 1)
	assert.Equal(t, 1, w.ecs.PowerUps.Ultra.Uses)
}

func TestUltraSparesEnemiesOutsideTheRadius(t *testing.T) {
	w := newWorld(t)
	p := w.ecs.PlayerPosition()
	far := w.addEnemy(p.X-BlastRadius-1, p.Y, 20)
	w.ecs.PowerUps.Ultra.Unlocked = true
	blast := NewAreaAttackSystem(w.ecs, w.disp, w.fx)

	assert.Zero(t, blast.Fire())
	assert.Contains(t, w.ecs.Enemies, far)
	assert.Equal(t, 1, w.ecs.PowerUps.Ultra.Uses, "a blast hitting nothing still spends a use")
}

func TestUltraRunsOutOfUses(t *testing.T) {
	w := newWorld(t)
	w.ecs.PowerUps.Ultra.Unlocked = true
	blast := NewAreaAttackSystem(w.ecs, w.disp, w.fx)

	assert.Zero(t, blast.Fire())
	w.ecs.PowerUps.Ultra.Cooldown = 0
	assert.Zero(t, blast.Fire())
	w.ecs.PowerUps.Ultra.Cooldown = 0
	assert.Equal(t, -1, blast.Fire())
	assert.Zero(t, w.ecs.PowerUps.Ultra.Uses)
}

func TestPoisonWithoutEnemiesAborts(t *testing.T) {
	w := newWorld(t)
	w.ecs.PowerUps.Poison.Unlocked = true
	w.ecs.PowerUps.Ultra.Unlocked = true
	pu := newPowerUps(w)

	assert.Equal(t, AbilityNone, pu.Activate())
	assert.Zero(t, w.ecs.PowerUps.Poison.Cooldown)
	assert.Equal(t, config.UltraUses, w.ecs.PowerUps.Ultra.Uses, "no fall through to ultra")
	assert.Empty(t, w.ecs.Projectiles)
}

func TestPoisonTakesPriority(t *testing.T) {
	w := newWorld(t)
	target := w.addEnemyNearPlayer(300, 20)
	w.ecs.PowerUps.Poison.Unlocked = true
	w.ecs.PowerUps.Ultra.Unlocked = true
	pu := newPowerUps(w)

	assert.Equal(t, AbilityPoison, pu.Activate())
	assert.Equal(t, config.PoisonCooldown, w.ecs.PowerUps.Poison.Cooldown)
	for _, proj := range w.ecs.Projectiles {
		assert.Equal(t, target, proj.TargetID)
		assert.Equal(t, config.PoisonBallSpeed, proj.Speed)
	}

	assert.Equal(t, AbilityUltra, pu.Activate(), "poison cooling down, ultra is next")
}

func TestDashNeverSpendsUses(t *testing.T) {
	w := newWorld(t)
	w.ecs.PowerUps.Dash.Unlocked = true
	pu := newPowerUps(w)
	status := NewStatusEffectSystem(w.ecs)

	for round := 0; round < 3; round++ {
		assert.Equal(t, AbilityDash, pu.Activate())
		assert.Equal(t, config.PlayerDashSpeed, w.ecs.Player().Speed)
		assert.Equal(t, AbilityNone, pu.Activate(), "already dashing")

		for i := 0; i < 60*5+1; i++ {
			status.Update(frame)
		}
		assert.False(t, w.ecs.PowerUps.Dash.Active)
		assert.Equal(t, config.PlayerBaseSpeed, w.ecs.Player().Speed)
	}
	assert.Equal(t, config.DashUses, w.ecs.PowerUps.Dash.Uses)
}

func TestResetPowerUpsRestoresLoadout(t *testing.T) {
	w := newWorld(t)
	state := w.ecs.PowerUps
	state.Dash = component.DashState{Unlocked: true, Uses: 0, Active: true, Timer: 3}
	state.Ultra.Uses = 0
	state.Poison.Cooldown = 4
	w.ecs.Player().Speed = config.PlayerDashSpeed

	ResetPowerUps(w.ecs)

	assert.False(t, state.Dash.Active)
	assert.False(t, state.Dash.Unlocked)
	assert.Equal(t, config.DashUses, state.Dash.Uses)
	assert.Equal(t, config.UltraUses, state.Ultra.Uses)
	assert.Zero(t, state.Poison.Cooldown)
	assert.Equal(t, config.PlayerBaseSpeed, w.ecs.Player().Speed)
}

func TestSyncUnlockedFollowsLevels(t *testing.T) {
	w := newWorld(t)
	catalog := defs.DefaultPowerUps()
	catalog[1].Level = 1
	catalog[3].Level = 1

	SyncUnlocked(w.ecs.PowerUps, catalog)

	assert.False(t, w.ecs.PowerUps.Dash.Unlocked)
	assert.True(t, w.ecs.PowerUps.Recovery.Unlocked)
	assert.False(t, w.ecs.PowerUps.Poison.Unlocked)
	assert.True(t, w.ecs.PowerUps.Ultra.Unlocked)
}

func TestCooldownsTickDown(t *testing.T) {
	w := newWorld(t)
	w.ecs.PowerUps.Poison.Cooldown = 0.5
	w.ecs.PowerUps.Ultra.Cooldown = 0.1
	status := NewStatusEffectSystem(w.ecs)

	status.Update(0.2)

	assert.InDelta(t, 0.3, w.ecs.PowerUps.Poison.Cooldown, 1e-9)
	assert.Zero(t, w.ecs.PowerUps.Ultra.Cooldown)
}
