package models

import "time"

// ScoreEntry is a single submitted game result. Entries are append-only and
// a player may have any number of them.
type ScoreEntry struct {
	Username string    `json:"username"` // Player the score belongs to
	Score    int       `json:"score"`    // Non-negative game score
	Date     time.Time `json:"date"`     // Submission timestamp
}
