package models

import "time"

// Session binds a user to one live refresh token. A user holds at most
// MaxSessions sessions; the ledger evicts the oldest past the cap.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
