package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinodash/internal/platform/tui"
	"github.com/vovakirdan/dinodash/internal/storage"
)

var (
	flagScoresAll         bool
	flagScoresInteractive bool
	flagScoresPlayer      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs for the selected difficulty preset.

Examples:
  dinodash scores
  dinodash scores --difficulty hard
  dinodash scores --all
  dinodash scores --player alice
  dinodash scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show one SSH player's best and recent runs")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, preset, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresPlayer != "" {
		printPlayer(store, cfg.Store.Key, flagScoresPlayer)
		return
	}

	var runs []storage.Run
	if flagScoresAll {
		runs, err = store.AllScores(string(preset))
	} else {
		runs, err = store.TopScores(string(preset), 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - Mini Dino Dash (%s)\n", preset)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dinodash play --difficulty %s' to set the first high score!\n", preset)
		return
	}

	printRuns(runs)

	fmt.Println()
	if stats, err := store.Stats(string(preset)); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Obstacles cleared: %d  Time played: %s\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalCleared, stats.TotalTime.Round(time.Second))
	}
	if best, err := store.BestScore(cfg.Store.Key); err == nil && best > 0 {
		fmt.Printf("Local best (all presets): %d\n", best)
	}
}

func printRuns(runs []storage.Run) {
	fmt.Printf("  %-4s  %-8s  %-12s  %-7s  %-7s  %s\n", "Rank", "Score", "Player", "Cleared", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-7s  %-7s  %s\n", "----", "-----", "------", "-------", "----", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-8d  %-12s  %-7d  %-7s  %s\n",
			i+1, r.Score, player, r.Cleared,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printPlayer(store *storage.Store, baseKey, player string) {
	key := storage.BestKey(baseKey, player)
	best, err := store.BestScore(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.PlayerRuns(player, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Player %s - best %d\n", player, best)
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	printRuns(runs)
}
