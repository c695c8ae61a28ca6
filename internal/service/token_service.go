package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"blogcms/api/internal/apperr"
	"blogcms/api/internal/config"
	"blogcms/api/internal/ids"
	"blogcms/api/internal/models"
	"blogcms/api/internal/security"
)

// TokenService issues and verifies signed tokens and keeps the session
// ledger: one persisted session per live refresh token, capped per user.
type TokenService struct {
	tokens   TokenStore
	sessions SessionStore
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewTokenService(tokens TokenStore, sessions SessionStore, cfg *config.AppConfig, log zerolog.Logger) *TokenService {
	return &TokenService{
		tokens:   tokens,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

type TokenDetail struct {
	Token     string
	ExpiresAt time.Time
}

type TokenPair struct {
	Access  TokenDetail
	Refresh TokenDetail
}

func (s *TokenService) Issue(userID string, expiresAt time.Time, tokenType models.TokenType) (string, error) {
	return security.SignToken(s.cfg.Security.JWTSecret, userID, expiresAt, tokenType)
}

// IssueAuthPair mints an access/refresh pair, persists the refresh token and
// records its session. Session-cap eviction is best effort: a failed
// eviction is logged and repaired by the next recording, never surfaced to
// the login itself.
func (s *TokenService) IssueAuthPair(ctx context.Context, user models.User) (TokenPair, error) {
	now := time.Now()

	accessExpires := now.Add(s.cfg.Security.AccessTokenTTL)
	accessToken, err := s.Issue(user.ID, accessExpires, models.TokenTypeAccess)
	if err != nil {
		return TokenPair{}, err
	}

	refreshExpires := now.Add(s.cfg.Security.RefreshTokenTTL)
	refreshToken, err := s.Issue(user.ID, refreshExpires, models.TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	if err := s.tokens.Create(ctx, models.Token{
		ID:        ids.New(),
		Token:     refreshToken,
		UserID:    user.ID,
		Type:      models.TokenTypeRefresh,
		ExpiresAt: refreshExpires,
	}); err != nil {
		return TokenPair{}, err
	}

	if err := s.recordSession(ctx, user.ID, refreshToken, refreshExpires); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		Access:  TokenDetail{Token: accessToken, ExpiresAt: accessExpires},
		Refresh: TokenDetail{Token: refreshToken, ExpiresAt: refreshExpires},
	}, nil
}

// recordSession inserts the new session, then prunes the oldest one past the
// cap and blacklists its refresh token. Sessions arrive one at a time, so a
// single eviction per call keeps the count at the cap; two concurrent logins
// can overshoot transiently until the next call prunes again.
func (s *TokenService) recordSession(ctx context.Context, userID string, refreshToken string, expiresAt time.Time) error {
	if err := s.sessions.Create(ctx, models.Session{
		ID:        ids.New(),
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
	}); err != nil {
		return err
	}

	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("session listing failed, skipping eviction")
		return nil
	}

	if len(sessions) <= s.cfg.Security.MaxSessions {
		return nil
	}

	oldest := sessions[0]
	if err := s.sessions.DeleteByID(ctx, oldest.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("session eviction failed")
		return nil
	}
	if err := s.tokens.Blacklist(ctx, oldest.Token, userID, models.TokenTypeRefresh); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("blacklisting evicted refresh token failed")
	}
	return nil
}

// Verify decodes the token, checks signature, expiry and the type claim,
// and for persisted types requires a matching non-blacklisted record.
func (s *TokenService) Verify(ctx context.Context, tokenStr string, tokenType models.TokenType) (models.Token, error) {
	claims, err := security.ParseToken(tokenStr, s.cfg.Security.JWTSecret)
	if err != nil {
		return models.Token{}, apperr.Unauthorized("Invalid token")
	}
	if claims.Type != tokenType {
		return models.Token{}, apperr.Unauthorized("Invalid token")
	}

	if !tokenType.Persisted() {
		return models.Token{
			Token:     tokenStr,
			UserID:    claims.Subject,
			Type:      tokenType,
			ExpiresAt: claims.ExpiresAt.Time,
		}, nil
	}

	record, err := s.tokens.FindActive(ctx, tokenStr, claims.Subject, tokenType)
	if err != nil {
		return models.Token{}, apperr.Unauthorized("Invalid token")
	}
	return record, nil
}

// RevokeSession removes the session bound to the refresh token and
// blacklists its token record. Used by logout.
func (s *TokenService) RevokeSession(ctx context.Context, refreshToken string, userID string) error {
	if err := s.sessions.DeleteByToken(ctx, refreshToken, userID); err != nil {
		return err
	}
	return s.tokens.Blacklist(ctx, refreshToken, userID, models.TokenTypeRefresh)
}

// LookupRefresh returns the active persisted record for a refresh token
// when the owner is not yet known.
func (s *TokenService) LookupRefresh(ctx context.Context, refreshToken string) (models.Token, error) {
	return s.tokens.FindActiveByToken(ctx, refreshToken, models.TokenTypeRefresh)
}

// DiscardRefresh drops a consumed refresh token and its session during
// rotation; the replacement pair is issued separately.
func (s *TokenService) DiscardRefresh(ctx context.Context, refreshToken string, userID string) error {
	if err := s.sessions.DeleteByToken(ctx, refreshToken, userID); err != nil {
		return err
	}
	return s.tokens.DeleteByToken(ctx, refreshToken, models.TokenTypeRefresh)
}
