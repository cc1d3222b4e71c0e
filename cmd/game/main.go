// cmd/game/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ender-sword",
	Short: "Wave-survival arcade game",
	Long: `Ender Sword: hold the gate for seven waves. Arrows fire on their own,
collect scrolls to advance, answer multiplication challenges to re-arm and
spend currency on power-ups between waves.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	flags.StringVar(&opts.PowerUpsPath, "powerups", "", "JSON power-up catalog, empty means built-in")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simCmd)
}
