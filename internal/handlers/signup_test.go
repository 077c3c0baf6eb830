package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/snake-game-api/internal/services"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignuper(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: SignupRequest{
				Username: "alice",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "alice", "pass123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &AuthResponse{
				Username: "alice",
				Token:    "JWT_TOKEN",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Message: "invalid request body",
			},
		},
		{
			name: "missing fields",
			inputBody: SignupRequest{
				Username: "alice",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "alice", "").
					Return("", services.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Message: "username and password are required",
			},
		},
		{
			name: "username taken",
			inputBody: SignupRequest{
				Username: "alice",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "alice", "pass123").
					Return("", services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: &ErrorResponse{
				Message: "Username already exists",
			},
		},
		{
			name: "internal error",
			inputBody: SignupRequest{
				Username: "alice",
				Password: "pass123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "alice", "pass123").
					Return("", errors.New("store error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Message: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			switch v := tt.inputBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			NewSignupHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			expected, _ := json.Marshal(tt.expectedBody)
			assert.JSONEq(t, string(expected), rec.Body.String())
		})
	}
}
