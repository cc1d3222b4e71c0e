// internal/tui/host.go
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"ender-sword/internal/config"
	"ender-sword/internal/gate"
	"ender-sword/internal/hud"
	"ender-sword/internal/intent"
	"ender-sword/internal/interfaces"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Host runs the game inside a terminal.
type Host struct {
	screen  tcell.Screen
	newGame func() interfaces.Game
	game    interfaces.Game
	router  *intent.Router
	keys    *Keys
	view    *View
	last    hud.Snapshot
}

func NewHost(screen tcell.Screen, newGame func() interfaces.Game, sound intent.SoundPlayer) *Host {
	return &Host{
		screen:  screen,
		newGame: newGame,
		router:  intent.NewRouter(sound),
		keys:    NewKeys(),
		view:    NewView(screen),
	}
}

// Run polls events and steps the game until ctx ends or the player quits.
// The screen must already be initialised; Run does not finalise it.
func (h *Host) Run(ctx context.Context) error {
	h.restart()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	start := time.Now()
	lastTick := start
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				h.keys.Handle(ev, time.Since(start).Seconds())
				if h.keys.Quit() {
					return nil
				}
			case *tcell.EventResize:
				h.screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(lastTick).Seconds()
			lastTick = now
			h.Tick(now.Sub(start).Seconds(), dt)
		}
	}
}

// Tick advances one frame and redraws.
func (h *Host) Tick(now, deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	frame := h.keys.Frame(now)
	if h.last.Gate == gate.GameOver.String() && frame.Restart {
		slog.Info("restarting run")
		h.restart()
		return
	}
	h.router.Route(h.game.Step(frame, deltaTime))
	h.last = h.game.HUD()
	h.view.Draw(h.game.World(), h.last)
}

func (h *Host) restart() {
	h.game = h.newGame()
	h.last = h.game.HUD()
}
