// internal/app/bot.go
package app

import (
	"log/slog"

	"ender-sword/internal/config"
	"ender-sword/internal/gate"
	"ender-sword/internal/input"
	"ender-sword/internal/system"
	"ender-sword/internal/utils"
)

// Bot plays a Game without a window: it kites enemies, walks to scrolls,
// answers every challenge correctly and buys the cheapest card it can afford.
type Bot struct {
	game *Game
}

func NewBot(game *Game) *Bot {
	return &Bot{game: game}
}

// Summary is what a headless run reports.
type Summary struct {
	Gate       string
	Wave       int
	TotalKills int
	Currency   int
	Health     int
	Elapsed    float64
	Frames     int
}

// Frame decides the input for the next step.
func (b *Bot) Frame() input.Frame {
	g := b.game
	switch g.Gate.State() {
	case gate.StoreOpen:
		if card := b.cheapestAffordable(); card > 0 {
			return input.Frame{Card: card, Confirm: true}
		}
		return input.Frame{StoreDismiss: true}
	case gate.MathOpen:
		if g.MathSystem.Answered() {
			return input.Frame{}
		}
		c := g.MathSystem.Challenge()
		for i := range c.Answers {
			if c.IsCorrect(i) {
				return input.Frame{Answer: i + 1}
			}
		}
		return input.Frame{MathToggle: true}
	case gate.VictoryPaused:
		return input.Frame{Continue: true}
	case gate.GameOver:
		return input.Frame{}
	}

	if g.ECS.Progression.AwaitingMath {
		return input.Frame{MathToggle: true}
	}
	f := b.steer()
	f.Activate = len(system.EnemiesWithin(g.ECS, b.playerX(), b.playerY(), config.AttackRange)) >= 3
	return f
}

// cheapestAffordable returns the 1-based card to buy, 0 when nothing fits.
func (b *Bot) cheapestAffordable() int {
	best, bestCost := 0, 0
	currency := b.game.ECS.Progression.Currency
	for i, def := range b.game.StoreSystem.Catalog() {
		if def.Maxed() || def.Cost > currency {
			continue
		}
		if best == 0 || def.Cost < bestCost {
			best, bestCost = i+1, def.Cost
		}
	}
	return best
}

// steer runs from an enemy that is too close, otherwise heads for the
// nearest scroll.
func (b *Bot) steer() input.Frame {
	ecs := b.game.ECS
	px, py := b.playerX(), b.playerY()

	if id, dist, ok := system.NearestEnemy(ecs, px, py); ok && dist < config.CrowdRadius*2 {
		e := ecs.Positions[id]
		return towards(px, py, 2*px-e.X, 2*py-e.Y)
	}

	var (
		found        bool
		tx, ty, best float64
	)
	for _, id := range ecs.DropIDs() {
		pos := ecs.Positions[id]
		d := utils.Distance(px, py, pos.X, pos.Y)
		if !found || d < best {
			found, best, tx, ty = true, d, pos.X, pos.Y
		}
	}
	if !found {
		return towards(px, py, config.ScreenWidth/2, config.ScreenHeight/2)
	}
	return towards(px, py, tx, ty)
}

func towards(x, y, tx, ty float64) input.Frame {
	const deadZone = 4
	return input.Frame{
		Left:  tx < x-deadZone,
		Right: tx > x+deadZone,
		Up:    ty < y-deadZone,
		Down:  ty > y+deadZone,
	}
}

func (b *Bot) playerX() float64 { return b.game.ECS.PlayerPosition().X }
func (b *Bot) playerY() float64 { return b.game.ECS.PlayerPosition().Y }

// Run steps the game with a fixed delta until it ends or maxSeconds of
// simulated frames have passed.
func (b *Bot) Run(maxSeconds, deltaTime float64) Summary {
	g := b.game
	frames := int(maxSeconds / deltaTime)
	s := Summary{}
	for s.Frames = 0; s.Frames < frames; s.Frames++ {
		if g.Gate.State() == gate.GameOver {
			break
		}
		g.Step(b.Frame(), deltaTime)
	}

	p := g.ECS.Progression
	s.Gate = g.Gate.State().String()
	s.Wave = p.Wave
	s.TotalKills = p.TotalKills
	s.Currency = p.Currency
	s.Elapsed = p.Elapsed
	if h := g.ECS.PlayerHealth(); h != nil {
		s.Health = h.Value
	}
	slog.Info("simulation finished",
		"gate", s.Gate, "wave", s.Wave, "kills", s.TotalKills,
		"currency", s.Currency, "health", s.Health, "elapsed", utils.FormatClock(s.Elapsed))
	return s
}
