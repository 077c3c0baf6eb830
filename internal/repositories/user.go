package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/sbilibin2017/snake-game-api/internal/logger"
	"github.com/sbilibin2017/snake-game-api/internal/models"
)

// ErrUsernameExists is returned by Create when the username is already taken.
var ErrUsernameExists = errors.New("username already exists")

// UserRepository keeps user accounts in process memory, keyed by username.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository creates an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]models.User)}
}

// GetByUsername returns the user with the exact username, or nil when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Create inserts the user. The existence check and the insert run under one
// lock, so concurrent signups with the same username cannot both succeed.
// The stored record is left untouched when the username is taken.
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return ErrUsernameExists
	}
	r.users[user.Username] = user

	logger.Log.Infow("user created", "username", user.Username)
	return nil
}
