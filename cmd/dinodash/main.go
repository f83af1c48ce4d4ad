// dinodash is a terminal endless runner: jump over cacti and birds while the
// world speeds up.
//
// Usage:
//
//	dinodash play            - Play in this terminal
//	dinodash scores          - Show high scores
//	dinodash serve           - Start SSH server for remote play
//	dinodash sim             - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/dinodash.db)
//	--config <path>       - Use a custom runner config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinodash/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinodash",
	Short: "Mini Dino Dash - an endless runner in your terminal",
	Long: `Mini Dino Dash is a terminal endless runner. The world scrolls
faster the longer you survive; jump over cacti and birds to score.

Available commands:
  play     - Play in this terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation

Examples:
  dinodash play
  dinodash play --difficulty hard
  dinodash scores --all
  dinodash serve --ssh :2222
  dinodash sim --seconds 120 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time; sim uses 1)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}
