package models

import "time"

// User represents a registered player account
type User struct {
	Username     string    `json:"username"`  // Unique username, immutable once created
	PasswordHash string    `json:"-"`         // Hashed password, never serialized
	CreatedAt    time.Time `json:"createdAt"` // Creation timestamp
}
