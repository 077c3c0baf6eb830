package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/snake-game-api/internal/logger"
	"github.com/sbilibin2017/snake-game-api/internal/models"
)

// ScoreRepo defines the score storage operations the leaderboard needs.
type ScoreRepo interface {
	Add(ctx context.Context, entry models.ScoreEntry) error
	Top(ctx context.Context, limit int) ([]models.ScoreEntry, error)
}

// UserFinder looks up accounts by username.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// LeaderboardService lists top scores and records new ones.
type LeaderboardService struct {
	scores ScoreRepo
	users  UserFinder
}

// NewLeaderboardService creates a new LeaderboardService instance.
func NewLeaderboardService(scores ScoreRepo, users UserFinder) *LeaderboardService {
	return &LeaderboardService{
		scores: scores,
		users:  users,
	}
}

// ListTop returns up to limit entries ordered by score descending.
func (svc *LeaderboardService) ListTop(ctx context.Context, limit int) ([]models.ScoreEntry, error) {
	if limit <= 0 {
		return nil, ErrValidation
	}

	entries, err := svc.scores.Top(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list top scores", "err", err)
		return nil, err
	}

	return entries, nil
}

// Submit records a score for the authenticated user.
func (svc *LeaderboardService) Submit(ctx context.Context, username string, score int) (*models.ScoreEntry, error) {
	if score < 0 {
		return nil, ErrValidation
	}

	// A verified token is not proof the account exists on this instance.
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return nil, ErrUserDoesNotExist
	}

	entry := models.ScoreEntry{
		Username: user.Username,
		Score:    score,
		Date:     time.Now(),
	}
	if err := svc.scores.Add(ctx, entry); err != nil {
		logger.Log.Errorw("failed to add score", "err", err)
		return nil, err
	}

	return &entry, nil
}
