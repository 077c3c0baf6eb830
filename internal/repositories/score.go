package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/sbilibin2017/snake-game-api/internal/logger"
	"github.com/sbilibin2017/snake-game-api/internal/models"
)

// ScoreRepository keeps submitted scores in process memory, in insertion order.
type ScoreRepository struct {
	mu     sync.RWMutex
	scores []models.ScoreEntry
}

// NewScoreRepository creates an empty ScoreRepository.
func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{}
}

// Add appends the entry.
func (r *ScoreRepository) Add(ctx context.Context, entry models.ScoreEntry) error {
	r.mu.Lock()
	r.scores = append(r.scores, entry)
	r.mu.Unlock()

	logger.Log.Infow("score added", "username", entry.Username, "score", entry.Score)
	return nil
}

// Top returns up to limit entries sorted by score descending. It sorts a
// snapshot copy, so readers never observe a torn entry, and the sort is
// stable so equal scores keep their submission order.
func (r *ScoreRepository) Top(ctx context.Context, limit int) ([]models.ScoreEntry, error) {
	r.mu.RLock()
	snapshot := make([]models.ScoreEntry, len(r.scores))
	copy(snapshot, r.scores)
	r.mu.RUnlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Score > snapshot[j].Score
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(snapshot) {
		snapshot = snapshot[:limit]
	}
	return snapshot, nil
}
