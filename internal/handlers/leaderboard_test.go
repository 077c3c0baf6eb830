package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/snake-game-api/internal/models"
	"github.com/sbilibin2017/snake-game-api/internal/services"
)

func TestLeaderboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTopLister(ctrl)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.ScoreEntry{
		{Username: "bob", Score: 500, Date: now},
		{Username: "alice", Score: 200, Date: now},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "default limit",
			target: "/api/leaderboard",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListTop(gomock.Any(), 10).
					Return(entries, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: entries,
		},
		{
			name:   "explicit limit",
			target: "/api/leaderboard?limit=1",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListTop(gomock.Any(), 1).
					Return(entries[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: entries[:1],
		},
		{
			name:         "non-numeric limit",
			target:       "/api/leaderboard?limit=abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Message: "limit must be an integer",
			},
		},
		{
			name:   "non-positive limit",
			target: "/api/leaderboard?limit=0",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListTop(gomock.Any(), 0).
					Return(nil, services.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Message: "limit must be positive",
			},
		},
		{
			name:   "empty leaderboard",
			target: "/api/leaderboard",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListTop(gomock.Any(), 10).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []models.ScoreEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			NewLeaderboardHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			expected, _ := json.Marshal(tt.expectedBody)
			assert.JSONEq(t, string(expected), rec.Body.String())
		})
	}
}
