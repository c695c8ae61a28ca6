package models

import "time"

// TokenType discriminates every token the platform signs. Access tokens are
// verified statelessly; the other types also keep a row in the tokens table.
type TokenType string

const (
	TokenTypeAccess        TokenType = "access"
	TokenTypeRefresh       TokenType = "refresh"
	TokenTypeResetPassword TokenType = "resetPassword"
	TokenTypeVerifyEmail   TokenType = "verifyEmail"
)

// Persisted reports whether tokens of this type are stored and must be
// matched against a non-blacklisted row on verification.
func (t TokenType) Persisted() bool {
	return t != TokenTypeAccess
}

type Token struct {
	ID          string
	Token       string
	UserID      string
	Type        TokenType
	ExpiresAt   time.Time
	Blacklisted bool
	CreatedAt   time.Time
}
