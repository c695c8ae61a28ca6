package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"blogcms/api/internal/apperr"
	"blogcms/api/internal/ids"
	"blogcms/api/internal/models"
	"blogcms/api/internal/repository"
	"blogcms/api/internal/security"
)

type AuthService struct {
	users  UserStore
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(users UserStore, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		log:    log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	User   models.User
	Tokens TokenPair
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	email := normalizeEmail(input.Email)

	taken, err := s.users.EmailTaken(ctx, email, "")
	if err != nil {
		return AuthResult{}, err
	}
	if taken {
		return AuthResult{}, apperr.BadRequest("Email already taken")
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.UserRoleUser,
		Status:       models.UserStatusActive,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	tokens, err := s.tokens.IssueAuthPair(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: user, Tokens: tokens}, nil
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password produce the identical error so callers cannot tell which
// check failed.
func (s *AuthService) Login(ctx context.Context, email string, password string) (AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, apperr.Unauthorized("Incorrect email or password")
		}
		return AuthResult{}, err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return AuthResult{}, apperr.Unauthorized("Incorrect email or password")
	}

	tokens, err := s.tokens.IssueAuthPair(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: user, Tokens: tokens}, nil
}

// Refresh rotates a refresh token: the presented token is verified, its
// record and session are discarded, and a fresh pair is issued. Every
// failure collapses to one authentication error.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	record, err := s.tokens.Verify(ctx, refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, apperr.Unauthorized("Please authenticate")
	}

	user, err := s.users.GetByID(ctx, record.UserID)
	if err != nil {
		return TokenPair{}, apperr.Unauthorized("Please authenticate")
	}

	if err := s.tokens.DiscardRefresh(ctx, refreshToken, user.ID); err != nil {
		return TokenPair{}, apperr.Unauthorized("Please authenticate")
	}

	pair, err := s.tokens.IssueAuthPair(ctx, user)
	if err != nil {
		return TokenPair{}, apperr.Unauthorized("Please authenticate")
	}
	return pair, nil
}

// Logout revokes the session for a presented refresh token and blacklists
// the token record.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	record, err := s.tokens.LookupRefresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return apperr.NotFound("Not found")
		}
		return err
	}

	return s.tokens.RevokeSession(ctx, refreshToken, record.UserID)
}
