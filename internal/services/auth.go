package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/snake-game-api/internal/logger"
	"github.com/sbilibin2017/snake-game-api/internal/models"
	"github.com/sbilibin2017/snake-game-api/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("invalid request")
)

// UserRepo defines the user storage operations the auth service needs.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user models.User) error
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) bool
}

// TokenGenerator mints signed tokens bound to a username.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuthService handles signup and login.
type AuthService struct {
	users  UserRepo
	hasher PasswordHasher
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserRepo, hasher PasswordHasher, jwt TokenGenerator) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Signup creates a new account and returns a token for it.
func (svc *AuthService) Signup(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrValidation
	}

	hash, err := svc.hasher.Hash(ctx, password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := svc.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUsernameExists) {
			logger.Log.Errorw("user already exists", "username", username)
			return "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to create user", "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrValidation
	}

	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if !svc.hasher.Verify(ctx, password, user.PasswordHash) {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
