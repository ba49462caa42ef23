// arena is a TUI platform for physics-driven games played in the terminal.
//
// Usage:
//
//	arena list              - List available games
//	arena play <game>       - Play a game
//	arena menu              - Start menu to pick games interactively
//	arena serve             - Start SSH server for remote play
//	arena scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.polyarena/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/polyarena/polyarena/internal/games/brawl"
	_ "github.com/polyarena/polyarena/internal/games/orbit"
	_ "github.com/polyarena/polyarena/internal/games/springs"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Polyarena - physics games in your terminal",
	Long: `Polyarena is a terminal gaming platform built on a shared 2D
rigid-body physics engine. Every game simulates real polygon bodies:
bullets knock fighters off platforms, planets swing around a star,
spring chains wobble and settle.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arena list
  arena play brawl
  arena menu
  arena serve --ssh :2222
  arena scores orbit`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.polyarena/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
