// race is a two-player coin race for the terminal.
//
// Usage:
//
//	race play [mode]   - Play a race on this terminal (default: race)
//	race list          - List available modes
//	race menu          - Pick a mode interactively
//	race serve         - Start SSH server for remote play
//	race config        - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible coin placement
//	--log <path>        - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/coin-race/internal/games/race"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "race",
	Short: "Coin Race - two players, one keyboard, one coin",
	Long: `Coin Race is a hot-seat game for two players sharing a keyboard.

Neuro walks with WASD, Evil with the arrow keys. Touch the coin to score;
it reappears somewhere new. First to 10 with a 2 point lead wins.

Available commands:
  play     - Play on this terminal
  list     - Show available modes
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  race play
  race play race_endless
  race serve --ssh :2222
  race config --default > configs/race.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
