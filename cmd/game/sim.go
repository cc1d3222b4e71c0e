// cmd/game/sim.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ender-sword/internal/app"
	"ender-sword/internal/errors"
	"ender-sword/internal/utils"
)

var (
	simSeconds float64
	simStep    float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless bot game and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(os.Stderr); err != nil {
			return err
		}
		if simStep <= 0 {
			return errors.InvalidArgumentf("step must be positive, got %g", simStep)
		}
		g, err := app.FromOptions(opts)
		if err != nil {
			return err
		}

		s := app.NewBot(g).Run(simSeconds, simStep)
		fmt.Fprintf(cmd.OutOrStdout(), "seed=%d gate=%s wave=%d kills=%d currency=%d health=%d time=%s\n",
			g.Rng.Seed(), s.Gate, s.Wave, s.TotalKills, s.Currency, s.Health, utils.FormatClock(s.Elapsed))
		return nil
	},
}

func init() {
	simCmd.Flags().Float64Var(&simSeconds, "seconds", 600, "simulated seconds to run")
	simCmd.Flags().Float64Var(&simStep, "step", 1.0/60, "fixed frame delta in seconds")
}
