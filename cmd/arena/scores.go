package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polyarena/polyarena/internal/registry"
	"github.com/polyarena/polyarena/internal/storage"
)

var flagMatches bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

For brawl, --matches also lists recent duel outcomes.

Examples:
  arena scores orbit
  arena scores brawl --matches`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagMatches, "matches", false, "Show recent brawl match outcomes")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arena list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		fmt.Println()
		if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	if flagMatches && gameID == "brawl" {
		printRecentMatches(store)
	}
}

// printRecentMatches lists the latest brawl duels, newest first.
func printRecentMatches(store *storage.Store) {
	matches, err := store.RecentMatches(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent matches:")
	if len(matches) == 0 {
		fmt.Println("  none yet")
		return
	}

	fmt.Printf("  %-10s  %-6s  %-5s  %s\n", "Outcome", "Turns", "HP", "Date")
	fmt.Printf("  %-10s  %-6s  %-5s  %s\n", "-------", "-----", "--", "----")
	for _, m := range matches {
		fmt.Printf("  %-10s  %-6d  %-5.0f  %s\n",
			m.Outcome, m.Turns, m.PlayerHP, m.CreatedAt.Format("2006-01-02 15:04"))
	}
}
