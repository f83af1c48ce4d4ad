package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/dinodash/internal/runner"
)

// BestScore returns the best score stored under key, or 0 if none.
func (s *Store) BestScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best score %q: %w", key, err)
	}
	return score, nil
}

// SetBestScore raises the best score stored under key to score. A lower
// score leaves the row untouched, so sessions sharing a key never lower it.
func (s *Store) SetBestScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (key, score) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > best_scores.score`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write best score %q: %w", key, err)
	}
	return nil
}

// BestKey returns the best score key for a player. Local play uses base.
func BestKey(base, player string) string {
	if player == "" {
		return base
	}
	return base + ":" + player
}

// KeyedBest adapts one best_scores row to runner.BestStore.
type KeyedBest struct {
	store *Store
	key   string
}

// Best returns a runner.BestStore backed by the row under key.
func (s *Store) Best(key string) *KeyedBest {
	return &KeyedBest{store: s, key: key}
}

// Get implements runner.BestStore.
func (b *KeyedBest) Get() (int, error) {
	return b.store.BestScore(b.key)
}

// Set implements runner.BestStore.
func (b *KeyedBest) Set(best int) error {
	return b.store.SetBestScore(b.key, best)
}

// Ensure KeyedBest implements BestStore
var _ runner.BestStore = (*KeyedBest)(nil)
