package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/polyarena/polyarena/internal/core"
	"github.com/polyarena/polyarena/internal/games/brawl"
	"github.com/polyarena/polyarena/internal/games/orbit"
	"github.com/polyarena/polyarena/internal/games/springs"
	"github.com/polyarena/polyarena/internal/platform/tui"
	"github.com/polyarena/polyarena/internal/registry"
	"github.com/polyarena/polyarena/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space        - Fire (brawl)
  Arrows/WASD  - Move / nudge
  Tab          - Cycle selection (orbit, springs)
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  arena play brawl
  arena play orbit --seed 7
  arena play brawl --config ./my-brawl.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// applyConfigPath routes the --config flag to the right game package.
func applyConfigPath(gameID string) {
	switch gameID {
	case "brawl":
		brawl.SetConfigPath(flagConfig)
	case "orbit":
		orbit.SetConfigPath(flagConfig)
	case "springs":
		springs.SetConfigPath(flagConfig)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arena list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyConfigPath(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
