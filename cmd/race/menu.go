package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-race/internal/platform/tui"
	"github.com/vovakirdan/coin-race/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a race.
Quitting a race returns to the menu.

Examples:
  race menu
  race menu --seed 7`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "race")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		width, height = result.Width, result.Height

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		if err := tui.Run(game, cfg.Runtime(flagSeed), tui.Options{
			HoldWindow: cfg.HoldWindow(),
			Logger:     logger,
			Width:      width,
			Height:     height,
		}); err != nil {
			return err
		}
	}
}
