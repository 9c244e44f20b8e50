package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-race/internal/platform/tui"
	"github.com/vovakirdan/coin-race/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a race on this terminal",
	Long: `Start a race on this terminal. Both players share the keyboard.

Controls:
  W/A/S/D      - Move Neuro
  Arrow keys   - Move Evil
  P            - Pause
  R            - Restart
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  race play
  race play race_endless
  race play --seed 42 --log race.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "race"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'race list' to see available modes", gameID)
	}

	// The alternate screen owns the terminal, so logs go nowhere unless --log is set.
	logger, closeLog, err := newLogger(io.Discard, "race")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(game, cfg.Runtime(flagSeed), tui.Options{
		HoldWindow: cfg.HoldWindow(),
		Logger:     logger,
		Width:      width,
		Height:     height,
	}); err != nil {
		return fmt.Errorf("running race: %w", err)
	}
	return nil
}
