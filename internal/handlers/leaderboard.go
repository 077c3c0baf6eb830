package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/snake-game-api/internal/logger"
	"github.com/sbilibin2017/snake-game-api/internal/models"
	"github.com/sbilibin2017/snake-game-api/internal/services"
)

// TopLister defines the interface that the leaderboard read service must implement.
type TopLister interface {
	ListTop(ctx context.Context, limit int) ([]models.ScoreEntry, error)
}

// defaultLimit is used when the limit query parameter is absent.
const defaultLimit = 10

// NewLeaderboardHandler returns an HTTP handler for the public top-N listing.
// @Summary List top scores
// @Description Returns up to limit score entries sorted by score descending. No authentication required.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Maximum number of entries" default(10)
// @Success 200 {array} models.ScoreEntry "Top scores"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc TopLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			limit = parsed
		}

		entries, err := svc.ListTop(r.Context(), limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, "limit must be positive")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		if entries == nil {
			entries = []models.ScoreEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
