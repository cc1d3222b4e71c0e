// internal/app/events.go
package app

import (
	"log/slog"

	"ender-sword/internal/event"
	"ender-sword/internal/gate"
	"ender-sword/internal/intent"
	"ender-sword/internal/scheduler"
)

// GameEventListener handles game-wide events
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GateChanged:
		data, ok := e.Data.(event.GateChangedData)
		if !ok {
			return
		}
		// only the simulation lane stops; the UI lane keeps running overlays
		if data.To == gate.Running.String() {
			l.game.Scheduler.ResumeLane(scheduler.LaneSim)
		} else {
			l.game.Scheduler.PauseLane(scheduler.LaneSim)
		}
		l.game.fx.Push(intent.Intent{Kind: intent.OverlayChanged, Text: data.To})
	case event.PowerUpPurchased:
		// a purchase resumes play straight away
		l.game.Gate.CloseStore()
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			slog.Debug("enemy killed", "id", data.EnemyID, "source", data.Source)
		}
	}
}
