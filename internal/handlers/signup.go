package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/snake-game-api/internal/logger"
	"github.com/sbilibin2017/snake-game-api/internal/services"
)

// Signuper defines the interface that the auth service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, password string) (string, error)
}

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful signup or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// Username the token is bound to
	// default: john_doe
	Username string `json:"username"`

	// Bearer token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up
// @Description Creates a new user account. Password is hashed before storing. Returns a bearer token for the new account.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.AuthResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		token, err := svc.Signup(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, "username and password are required")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Username: req.Username,
			Token:    token,
		})
	}
}
