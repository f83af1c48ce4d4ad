package runner

// Snapshot is a read-only copy of everything the presentation layer draws.
type Snapshot struct {
	Phase     Phase
	World     World
	Player    Player
	Obstacles []Obstacle
	Clouds    []Cloud
	Sparkles  []Sparkle

	Score   int
	Best    int
	Cleared int

	ShakeTime     float64 // Seconds of collision shake left
	Elapsed       float64 // Seconds spent running this run
	SpawnInterval float64 // Current spawn interval, 0 with a custom spawner
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.phase,
		World:     s.world,
		Player:    s.player,
		Obstacles: append([]Obstacle(nil), s.obstacles...),
		Clouds:    s.ambient.Clouds(),
		Sparkles:  s.ambient.Sparkles(),
		Score:     s.scoring.Score(),
		Best:      s.best,
		Cleared:   s.scoring.Cleared(),
		ShakeTime: s.shake,
		Elapsed:   s.elapsed,
	}
	if sp, ok := s.spawner.(*Spawner); ok {
		snap.SpawnInterval = sp.Interval(s.world.SpawnEvery, snap.Score)
	}
	return snap
}
