package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinodash/internal/core"
	"github.com/vovakirdan/dinodash/internal/games/dino"
	"github.com/vovakirdan/dinodash/internal/platform/tui"
	"github.com/vovakirdan/dinodash/internal/runner"
	"github.com/vovakirdan/dinodash/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Mini Dino Dash.

Controls:
  Space/Up/W - Start, jump, restart after game over
  P          - Pause/resume
  Tab        - High scores
  Esc/B      - Leave (when paused or over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, slower ramp
  normal - The classic curve
  hard   - Faster start, steeper ramp
  fixed  - No speed ramp

Examples:
  dinodash play
  dinodash play --difficulty easy
  dinodash play --seed 42
  dinodash play --config ./my-dinodash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "dinodash")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	// Open score storage; without it the best score lives in memory
	var best runner.BestStore = runner.NewMemoryStore(0)
	var recorder tui.RunRecorder
	var scores tui.ScoreLoader
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
	} else {
		best = store.Best(storage.BestKey(cfg.Store.Key, ""))
		recorder = store
		scores = store
	}

	logger.Info("starting", "preset", preset, "seed", rt.Seed, "fps", rt.TickRate)
	game := dino.New(cfg, rt,
		runner.WithStore(best),
		runner.WithLogger(logger),
	)
	play := tui.NewModel(game, tui.ModelOptions{
		Runtime:  rt,
		Preset:   string(preset),
		Recorder: recorder,
		Logger:   logger,
	})

	runErr := tui.RunSession(play, scores, preset)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
