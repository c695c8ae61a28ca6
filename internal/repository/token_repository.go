package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogcms/api/internal/models"
)

var ErrTokenNotFound = errors.New("token not found")

const tokenColumns = `id, token, user_id, type, expires_at, blacklisted, created_at`

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func scanToken(row pgx.Row) (models.Token, error) {
	var token models.Token
	if err := row.Scan(
		&token.ID,
		&token.Token,
		&token.UserID,
		&token.Type,
		&token.ExpiresAt,
		&token.Blacklisted,
		&token.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Token{}, ErrTokenNotFound
		}
		return models.Token{}, err
	}
	return token, nil
}

func (r *TokenRepository) Create(ctx context.Context, token models.Token) error {
	const query = `
		INSERT INTO tokens (
			id, token, user_id, type, expires_at, blacklisted, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		token.ID,
		token.Token,
		token.UserID,
		token.Type,
		token.ExpiresAt,
		token.Blacklisted,
	)
	return err
}

// FindActive returns the non-blacklisted row matching the token string,
// owner and type.
func (r *TokenRepository) FindActive(ctx context.Context, token string, userID string, tokenType models.TokenType) (models.Token, error) {
	const query = `
		SELECT ` + tokenColumns + `
		FROM tokens
		WHERE token = $1 AND user_id = $2 AND type = $3 AND blacklisted = FALSE
	`
	return scanToken(r.pool.QueryRow(ctx, query, token, userID, tokenType))
}

// FindActiveByToken looks a token up by its string alone. Logout uses this
// before the owner is known.
func (r *TokenRepository) FindActiveByToken(ctx context.Context, token string, tokenType models.TokenType) (models.Token, error) {
	const query = `
		SELECT ` + tokenColumns + `
		FROM tokens
		WHERE token = $1 AND type = $2 AND blacklisted = FALSE
	`
	return scanToken(r.pool.QueryRow(ctx, query, token, tokenType))
}

func (r *TokenRepository) Blacklist(ctx context.Context, token string, userID string, tokenType models.TokenType) error {
	const query = `
		UPDATE tokens SET blacklisted = TRUE
		WHERE token = $1 AND user_id = $2 AND type = $3
	`
	cmd, err := r.pool.Exec(ctx, query, token, userID, tokenType)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (r *TokenRepository) DeleteByToken(ctx context.Context, token string, tokenType models.TokenType) error {
	const query = `DELETE FROM tokens WHERE token = $1 AND type = $2`
	_, err := r.pool.Exec(ctx, query, token, tokenType)
	return err
}

func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM tokens WHERE expires_at < NOW()`
	cmd, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
