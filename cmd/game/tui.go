// cmd/game/tui.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"ender-sword/internal/tui"
)

var logFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// the terminal owns stdout, logs go to a file or nowhere
		var w io.Writer = io.Discard
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			w = f
		}
		if err := setupLogging(w); err != nil {
			return err
		}
		newGame, err := gameFactory()
		if err != nil {
			return err
		}
		sound, cleanup := openSound()
		defer cleanup()

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		err = tui.NewHost(screen, newGame, sound).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
}
