package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUsername(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := j.GetUsername(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := j.GetUsername(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, username)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "invalid.token.string"},
		{"Empty", ""},
		{"NotEvenJWT", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := j.GetUsername(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, username)
		})
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New("secret1", time.Minute)
	j2 := New("secret2", time.Minute)
	ctx := context.Background()

	token, err := j1.Generate(ctx, "alice")
	assert.NoError(t, err)

	// Rotating the secret invalidates outstanding tokens
	username, err := j2.GetUsername(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, username)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
