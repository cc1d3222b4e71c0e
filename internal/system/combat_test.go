package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ender-sword/internal/config"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
)

func TestEightShotsLockTheAttack(t *testing.T) {
	w := newWorld(t)
	w.addEnemyNearPlayer(100, 1_000_000)
	combat := NewCombatSystem(w.ecs, w.disp, w.sched, w.fx)

	for shot := 1; shot <= config.ShotsBeforeQuiz; shot++ {
		assert.True(t, combat.Ready(), "shot %d", shot)
		combat.Update(frame)
		assert.Equal(t, shot, w.ecs.Player().ShotsFired)
		w.ecs.GameTime += config.AttackCooldown
	}

	assert.True(t, w.ecs.Progression.AwaitingMath)
	assert.False(t, w.ecs.Player().CanAttack)
	assert.Equal(t, 1, w.count(event.MathRequired))

	combat.Update(frame)
	assert.Equal(t, config.ShotsBeforeQuiz, w.ecs.Player().ShotsFired)
	assert.Len(t, w.ecs.Projectiles, config.ShotsBeforeQuiz)
}

func TestCooldownIsMeasuredFromLastShot(t *testing.T) {
	w := newWorld(t)
	w.addEnemyNearPlayer(50, 1_000_000)
	combat := NewCombatSystem(w.ecs, w.disp, w.sched, w.fx)

	w.ecs.GameTime = 3
	combat.Update(frame)
	combat.Update(frame)
	assert.Equal(t, 1, w.ecs.Player().ShotsFired)

	w.ecs.GameTime = 3.49
	combat.Update(frame)
	assert.Equal(t, 1, w.ecs.Player().ShotsFired)

	w.ecs.GameTime = 3.5
	combat.Update(frame)
	assert.Equal(t, 2, w.ecs.Player().ShotsFired)
}

func TestCooldownProgress(t *testing.T) {
	w := newWorld(t)
	w.addEnemyNearPlayer(50, 1_000_000)
	combat := NewCombatSystem(w.ecs, w.disp, w.sched, w.fx)
	assert.Equal(t, 1.0, CooldownProgress(w.ecs), "nothing fired yet")

	w.ecs.GameTime = 2
	combat.Update(frame)
	assert.Zero(t, CooldownProgress(w.ecs))

	w.ecs.GameTime = 2.25
	assert.InDelta(t, 0.5, CooldownProgress(w.ecs), 1e-9)

	w.ecs.GameTime = 9
	assert.Equal(t, 1.0, CooldownProgress(w.ecs))
}

func TestAttackRangeIsInclusive(t *testing.T) {
	w := newWorld(t)
	far := w.addEnemyNearPlayer(config.AttackRange+1, 20)
	combat := NewCombatSystem(w.ecs, w.disp, w.sched, w.fx)

	combat.Update(frame)
	assert.Empty(t, w.ecs.Projectiles)
	assert.False(t, w.ecs.Player().HasAttacked, "no target leaves the cooldown alone")

	w.ecs.Positions[far].X = w.ecs.PlayerPosition().X + config.AttackRange
	combat.Update(frame)
	assert.Len(t, w.ecs.Projectiles, 1)
}

func TestArrowTargetsNearestEnemy(t *testing.T) {
	w := newWorld(t)
	w.addEnemyNearPlayer(-90, 20)
	near := w.addEnemyNearPlayer(40, 20)
	combat := NewCombatSystem(w.ecs, w.disp, w.sched, w.fx)

	combat.Update(frame)

	for _, proj := range w.ecs.Projectiles {
		assert.Equal(t, near, proj.TargetID)
		assert.Equal(t, config.ArrowDamage, proj.Damage)
		assert.InDelta(t, 1.0, proj.DirX, 1e-9)
	}
	assert.Contains(t, kinds(w.fx.Drain()), intent.ProjectileFired)
}

func TestRequireMathIsIdempotent(t *testing.T) {
	w := newWorld(t)

	RequireMath(w.ecs, w.disp, "shots")
	RequireMath(w.ecs, w.disp, "scrolls")

	assert.True(t, w.ecs.Progression.AwaitingMath)
	assert.Equal(t, 1, w.count(event.MathRequired))
}
