// internal/app/hud.go
package app

import (
	"fmt"

	"ender-sword/internal/defs"
	"ender-sword/internal/gate"
	"ender-sword/internal/hud"
	"ender-sword/internal/system"
	"ender-sword/internal/utils"
)

const VictoryText = "Victory! You have unlocked the Endersword!"

// HUD builds the snapshot a renderer draws from.
func (g *Game) HUD() hud.Snapshot {
	ecs := g.ECS
	p := ecs.Progression
	state := ecs.PowerUps

	s := hud.Snapshot{
		Gate:          g.Gate.State().String(),
		Wave:          p.Wave,
		WaveText:      fmt.Sprintf("Wave %d", p.Wave),
		WaveProgress:  p.WaveProgress,
		WaveTarget:    p.WaveTarget,
		ProgressText:  fmt.Sprintf("%d/%d", p.WaveProgress, p.WaveTarget),
		Clock:         utils.FormatClock(p.Elapsed),
		Kills:         p.KillsThisWave,
		TotalKills:    p.TotalKills,
		Currency:      p.Currency,
		Scrolls:       p.Scrolls,
		Theme:         string(p.Theme),
		AwaitingMath:  p.AwaitingMath,
		Dashing:       state.Dash.Active,
		Cooldown:      system.CooldownProgress(ecs),
		StoreMessage:  g.StoreSystem.Message(),
		WavesSurvived: p.Wave,
	}
	if h := ecs.PlayerHealth(); h != nil {
		s.Health, s.MaxHealth = h.Value, h.Max
		s.HealthText = fmt.Sprintf("%d/%d", h.Value, h.Max)
	}

	for _, def := range g.StoreSystem.Catalog() {
		icon := hud.PowerUpIcon{ID: def.ID, Name: def.Name, Uses: -1}
		switch def.ID {
		case defs.PowerUpDash:
			icon.Unlocked, icon.Active, icon.Uses = state.Dash.Unlocked, state.Dash.Active, state.Dash.Uses
		case defs.PowerUpRecovery:
			icon.Unlocked = state.Recovery.Unlocked
			icon.Active = state.Recovery.Unlocked
		case defs.PowerUpPoison:
			icon.Unlocked, icon.Cooldown = state.Poison.Unlocked, state.Poison.Cooldown
		case defs.PowerUpUltra:
			icon.Unlocked, icon.Cooldown, icon.Uses = state.Ultra.Unlocked, state.Ultra.Cooldown, state.Ultra.Uses
		}
		s.PowerUps = append(s.PowerUps, icon)
	}

	if g.Gate.State() == gate.StoreOpen || g.Gate.StoreActive() {
		for i, def := range g.StoreSystem.Catalog() {
			s.Cards = append(s.Cards, hud.StoreCard{
				Name:        def.Name,
				Description: def.Description,
				Cost:        def.Cost,
				Level:       def.Level,
				MaxLevel:    def.MaxLevel,
				Selected:    i == g.StoreSystem.Selected(),
				Affordable:  p.Currency >= def.Cost && !def.Maxed(),
			})
		}
	}

	if g.Gate.State() == gate.MathOpen {
		c := g.MathSystem.Challenge()
		s.Question = c.Question()
		s.Answers = c.Answers[:]
		s.Answered = g.MathSystem.Answered()
		s.Feedback, s.FeedbackCorrect = g.MathSystem.Feedback()
	}

	if g.Gate.State() == gate.VictoryPaused {
		s.VictoryText = VictoryText
	}
	return s
}
