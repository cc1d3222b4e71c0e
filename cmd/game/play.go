// cmd/game/play.go
package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"ender-sword/internal/config"
	"ender-sword/internal/state"
)

const startFromGame = false // true - начинать с игры, false - с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(os.Stderr); err != nil {
			return err
		}
		newGame, err := gameFactory()
		if err != nil {
			return err
		}
		sound, cleanup := openSound()
		defer cleanup()

		deps := state.Deps{NewGame: newGame, Sound: sound}
		sm := state.NewStateMachine() // Создаём машину состояний
		if startFromGame {
			sm.SetState(state.NewGameState(sm, deps))
		} else {
			sm.SetState(state.NewMenuState(sm, deps))
		}

		ebiten.SetWindowSize(int(config.ScreenWidth*opts.Scale), int(config.ScreenHeight*opts.Scale))
		ebiten.SetWindowTitle("Ender Sword")
		return ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()})
	},
}

func init() {
	playCmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "window scale factor")
}
