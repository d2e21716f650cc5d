package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorsnake/internal/games/colorsnake"
	"github.com/vovakirdan/colorsnake/internal/platform/tui"
	"github.com/vovakirdan/colorsnake/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer (mouse drag works too)
  R                 - Restart
  N                 - Next activity (after a win)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower ticks, shorter goal
  normal - Default speed
  hard   - Faster ticks

Examples:
  colorsnake play
  colorsnake play --difficulty hard
  colorsnake play --seed 42 --log ./colorsnake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write game log to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "colorsnake",
		})
	}

	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open event journal: %v\n", err)
			// Continue without journaling - game still works
			store = nil
		} else {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.NewString()
	next, err := tui.Run(ctx, tui.SessionOptions{
		Settings:  settings,
		Seed:      flagSeed,
		Store:     store,
		SessionID: sessionID,
		Navigate: colorsnake.NavigateFunc(func(snap colorsnake.Snapshot) {
			logger.Info("next activity requested", "generation", snap.Generation, "score", snap.Score)
		}),
		Logger: logger,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if next {
		fmt.Println("Great job! That's all the colors for now.")
	}
	return nil
}
