// internal/app/context.go
package app

import (
	"ender-sword/internal/intent"
	"ender-sword/internal/interfaces"
	"ender-sword/internal/system"
)

var (
	_ interfaces.GameContext = (*Game)(nil)
	_ interfaces.Game        = (*Game)(nil)
)

// ClearEnemies removes every enemy without awarding kills or drops.
func (g *Game) ClearEnemies() {
	for _, id := range g.ECS.EnemyIDs() {
		g.ECS.RemoveEntity(id)
	}
}

func (g *Game) ClearProjectiles() {
	g.ProjectileSystem.Clear()
}

// ClearEffects removes zones, with their timers, and uncollected scrolls.
func (g *Game) ClearEffects() {
	g.ZoneSystem.Clear()
	for _, id := range g.ECS.DropIDs() {
		g.ECS.RemoveEntity(id)
	}
	for id := range g.ECS.DamageFlashes {
		delete(g.ECS.DamageFlashes, id)
	}
}

func (g *Game) ResetPowerUps() {
	g.PowerUpSystem.Reset()
	g.StoreSystem.ResetLevels()
}

func (g *Game) OpenStore(message string) {
	g.StoreSystem.SetMessage(message)
	g.Gate.OpenStore()
}

// ShowVictory pauses on the victory screen; Continue leads into the store,
// so its banner is set now.
func (g *Game) ShowVictory() {
	g.StoreSystem.SetMessage(system.StoreBanner(g.ECS.Progression.Wave))
	g.Gate.Victory()
}

func (g *Game) EndGame() {
	if g.Gate.EndGame() {
		g.fx.Push(intent.Intent{Kind: intent.GameOver, Value: g.ECS.Progression.TotalKills})
	}
}
