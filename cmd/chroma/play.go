package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chroma/internal/core"
	"github.com/vovakirdan/tui-chroma/internal/platform/tui"
	"github.com/vovakirdan/tui-chroma/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a chroma session.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Pick the cell under the cursor
  Mouse click  - Pick a cell
  R            - New game
  ?            - More keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 20s on the clock, hits add 3s
  normal - 15s on the clock, hits add 2s, misses cost 3s
  hard   - 10s on the clock, misses cost 4s

Logs are written to ~/.chroma/chroma.log.

Examples:
  chroma play
  chroma play --difficulty easy
  chroma play --seed 42
  chroma play --config ./my-chroma.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger, closeLog := openLogFile()
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without storage", "db", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting chroma", "difficulty", flagDifficulty, "seed", flagSeed, "db", flagDBPath)

	runErr := tui.Run(cfg, gameCfg, tui.Options{
		Store:   store,
		Display: gameCfg.Display,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openLogFile opens ~/.chroma/chroma.log for the session logger.
// The alt screen owns the terminal, so logs never go to stderr while playing.
func openLogFile() (*log.Logger, func()) {
	discard := log.New(io.Discard)

	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}

	path := filepath.Join(home, ".chroma", "chroma.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard, func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "chroma",
	})
	closed := false
	return logger, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}
}
