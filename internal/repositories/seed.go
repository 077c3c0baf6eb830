package repositories

import (
	"context"
	"time"

	"github.com/sbilibin2017/snake-game-api/internal/models"
)

// PasswordHasher hashes demo account passwords at seed time.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
}

// SeedDemo loads the demo accounts and scores a fresh instance starts with.
// All demo accounts use the password "password123".
func SeedDemo(ctx context.Context, users *UserRepository, scores *ScoreRepository, hasher PasswordHasher) error {
	now := time.Now()

	demoUsers := []struct {
		username string
		age      time.Duration
	}{
		{"DemoUser", 5 * 24 * time.Hour},
		{"ProGamer", 2 * 24 * time.Hour},
		{"SnakeKing", 10 * 24 * time.Hour},
	}
	for _, u := range demoUsers {
		hash, err := hasher.Hash(ctx, "password123")
		if err != nil {
			return err
		}
		user := models.User{
			Username:     u.username,
			PasswordHash: hash,
			CreatedAt:    now.Add(-u.age),
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
	}

	demoScores := []struct {
		username string
		score    int
		age      time.Duration
	}{
		{"SnakeKing", 500, 24 * time.Hour},
		{"ProGamer", 350, 5 * time.Hour},
		{"DemoUser", 200, 2 * 24 * time.Hour},
		{"SnakeKing", 450, 3 * 24 * time.Hour},
		{"ProGamer", 100, 24 * time.Hour},
	}
	for _, s := range demoScores {
		entry := models.ScoreEntry{
			Username: s.username,
			Score:    s.score,
			Date:     now.Add(-s.age),
		}
		if err := scores.Add(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}
