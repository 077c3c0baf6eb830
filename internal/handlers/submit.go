package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/snake-game-api/internal/logger"
	"github.com/sbilibin2017/snake-game-api/internal/middlewares"
	"github.com/sbilibin2017/snake-game-api/internal/models"
	"github.com/sbilibin2017/snake-game-api/internal/services"
)

// ScoreSubmitter defines the interface that the leaderboard write service must implement.
type ScoreSubmitter interface {
	Submit(ctx context.Context, username string, score int) (*models.ScoreEntry, error)
}

// SubmitScoreRequest represents the JSON body for score submission
// swagger:model SubmitScoreRequest
type SubmitScoreRequest struct {
	// Score
	// required: true
	// default: 500
	Score *int `json:"score"` // pointer so a missing field is distinguishable from 0
}

// NewSubmitScoreHandler returns an HTTP handler for authenticated score submission.
// The username comes from the bearer token validated by the auth middleware.
// @Summary Submit a score
// @Description Records a score for the authenticated user.
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param submitScoreRequest body handlers.SubmitScoreRequest true "Score submission"
// @Success 201 {object} models.ScoreEntry "Score recorded"
// @Failure 400 {object} handlers.ErrorResponse "Missing or negative score"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /leaderboard [post]
func NewSubmitScoreHandler(svc ScoreSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := middlewares.GetUsernameFromContext(r.Context())
		if !ok || username == "" {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		var req SubmitScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Score == nil {
			writeError(w, http.StatusBadRequest, "score is required")
			return
		}

		entry, err := svc.Submit(r.Context(), username, *req.Score)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, "score must be a non-negative integer")
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}
