package core

// RuntimeConfig contains platform settings passed to a game at creation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second requested from the driver (default 60)
	Seed     int64  // RNG seed; 0 means derive from the clock in the platform layer
	Player   string // Player name, used to key the best score (empty for local play)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary the platform needs after each frame.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the session
	Started  bool // Whether the first run has begun
	GameOver bool // Whether the current run has ended
	Paused   bool // Whether the run is paused
}

// StepResult is returned by a game after each frame.
type StepResult struct {
	State GameState
	// RunEnded is true only on the frame where the run ended.
	RunEnded bool
}
