// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ender-sword/internal/config"
	"ender-sword/internal/gate"
	"ender-sword/internal/hud"
	"ender-sword/internal/input"
	"ender-sword/internal/intent"
	"ender-sword/internal/interfaces"
	"ender-sword/internal/render"
	"ender-sword/internal/ui"
)

// Deps is what the window host needs to start and restart a run.
type Deps struct {
	NewGame func() interfaces.Game
	Sound   intent.SoundPlayer
}

// GameState - состояние игры
type GameState struct {
	sm       *StateMachine
	deps     Deps
	game     interfaces.Game
	router   *intent.Router
	effects  *hud.Effects
	world    *render.WorldRenderer
	health   *ui.PlayerHealthIndicator
	wave     *ui.WaveIndicator
	powerUps *ui.PowerUpIndicator
	store    *ui.StorePanel
	math     *ui.MathPanel
	snapshot hud.Snapshot
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	effects := &hud.Effects{}
	return &GameState{
		sm:       sm,
		deps:     deps,
		router:   intent.NewRouter(deps.Sound, effects),
		effects:  effects,
		world:    render.NewWorldRenderer(),
		health:   ui.NewPlayerHealthIndicator(16, 16),
		wave:     ui.NewWaveIndicator(config.ScreenWidth-240, 20),
		powerUps: ui.NewPowerUpIndicator(16, config.ScreenHeight-60),
		store:    ui.NewStorePanel(),
		math:     ui.NewMathPanel(),
	}
}

func (g *GameState) Enter() {
	g.game = g.deps.NewGame()
	g.effects.Clear()
	g.snapshot = g.game.HUD()
}

func (g *GameState) Update(deltaTime float64) {
	frame := PollKeyboard().Merge(g.pollMouse())

	if g.snapshot.Gate == gate.GameOver.String() && frame.Restart {
		g.sm.SetState(NewGameState(g.sm, g.deps))
		return
	}

	g.router.Route(g.game.Step(frame, deltaTime))
	g.effects.Update(deltaTime)
	g.snapshot = g.game.HUD()
}

// pollMouse turns clicks on store cards and quiz answers into a frame. A
// click on a card buys it.
func (g *GameState) pollMouse() input.Frame {
	var f input.Frame
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return f
	}
	x, y := ebiten.CursorPosition()
	switch g.snapshot.Gate {
	case gate.StoreOpen.String():
		if card := g.store.CardAt(x, y); card > 0 {
			f.Card = card
			f.Confirm = true
		}
	case gate.MathOpen.String():
		f.Answer = g.math.AnswerAt(x, y)
	case gate.VictoryPaused.String():
		f.Continue = true
	}
	return f
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.snapshot
	g.world.Draw(screen, g.game.World())
	g.world.DrawCooldown(screen, g.game.World(), s.Cooldown)
	ui.DrawEffects(screen, g.effects)

	g.health.Draw(screen, s)
	g.wave.Draw(screen, s)
	g.powerUps.Draw(screen, s.PowerUps)
	if s.AwaitingMath && s.Gate == gate.Running.String() {
		ui.DrawNotice(screen, "Attack locked! Press M to answer the math challenge", config.IncorrectColor)
	}

	switch s.Gate {
	case gate.StoreOpen.String():
		g.store.Draw(screen, s)
	case gate.MathOpen.String():
		g.math.Draw(screen, s)
	case gate.VictoryPaused.String():
		ui.DrawBanner(screen, []string{s.VictoryText, "", "Press Enter to continue"}, config.CorrectColor)
	case gate.GameOver.String():
		ui.DrawBanner(screen, []string{
			"GAME OVER",
			fmt.Sprintf("Waves survived: %d", s.WavesSurvived),
			fmt.Sprintf("Total kills: %d", s.TotalKills),
			fmt.Sprintf("Time: %s", s.Clock),
			"",
			"Press R to restart",
		}, config.IncorrectColor)
	}
}

func (g *GameState) Exit() {}
