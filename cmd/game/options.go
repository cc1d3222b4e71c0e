// cmd/game/options.go
package main

import (
	"io"
	"log/slog"

	"ender-sword/internal/app"
	"ender-sword/internal/audio"
	"ender-sword/internal/config"
	"ender-sword/internal/intent"
	"ender-sword/internal/interfaces"
)

var opts = config.DefaultOptions()

// setupLogging installs the default slog handler writing to w.
func setupLogging(w io.Writer) error {
	level, err := config.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

// gameFactory checks the options and loads the catalog once, then returns a
// constructor for fresh runs, used again on every restart.
func gameFactory() (func() interfaces.Game, error) {
	catalog, err := app.LoadCatalog(opts)
	if err != nil {
		return nil, err
	}
	seed := opts.Seed
	return func() interfaces.Game {
		return app.NewGame(seed, catalog)
	}, nil
}

// openSound falls back to silence when no audio device is available.
func openSound() (intent.SoundPlayer, func()) {
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		slog.Warn("audio disabled", "error", err)
		return audio.Nop{}, func() {}
	}
	return sm, sm.Cleanup
}
