package system

import (
	"testing"

	"ender-sword/internal/component"
	"ender-sword/internal/config"
	"ender-sword/internal/entity"
	"ender-sword/internal/event"
	"ender-sword/internal/intent"
	"ender-sword/internal/scheduler"
	"ender-sword/internal/types"
	"ender-sword/internal/utils"
)

const frame = 1.0 / 60

// world is a bare registry with a player and no enemies.
type world struct {
	ecs    *entity.ECS
	disp   *event.Dispatcher
	sched  *scheduler.Scheduler
	fx     *intent.Buffer
	rng    *utils.PRNGService
	player *PlayerSystem
	events []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:   entity.NewECS(),
		disp:  event.NewDispatcher(),
		sched: scheduler.New(),
		fx:    &intent.Buffer{},
		rng:   utils.NewPRNGService(7),
	}
	w.player = NewPlayerSystem(w.ecs, w.disp)
	w.player.Spawn()
	ResetPowerUps(w.ecs)

	record := event.ListenerFunc(func(e event.Event) { w.events = append(w.events, e) })
	for _, typ := range []event.EventType{
		event.EnemyKilled, event.DropCollected, event.WaveAdvanced, event.PlayerDamaged,
		event.PlayerDied, event.MathRequired, event.MathAnswered, event.PowerUpPurchased,
	} {
		w.disp.Subscribe(typ, record)
	}
	return w
}

// addEnemy places a direct-chasing enemy with the given health.
func (w *world) addEnemy(x, y float64, health int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	w.ecs.Enemies[id] = &component.Enemy{Speed: config.EnemyBaseSpeed, ZigzagDir: 1, Skin: component.SkinEnderman}
	return id
}

// addEnemyNearPlayer places an enemy dx pixels to the right of the player.
func (w *world) addEnemyNearPlayer(dx float64, health int) types.EntityID {
	p := w.ecs.PlayerPosition()
	return w.addEnemy(p.X+dx, p.Y, health)
}

func (w *world) count(typ event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func kinds(list []intent.Intent) []intent.Kind {
	out := make([]intent.Kind, 0, len(list))
	for _, in := range list {
		out = append(out, in.Kind)
	}
	return out
}
