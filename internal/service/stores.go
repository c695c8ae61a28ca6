package service

import (
	"context"

	"blogcms/api/internal/models"
	"blogcms/api/internal/repository"
)

// Store interfaces are defined on the consumer side so service tests can
// substitute fakes. The pgx repositories satisfy them.

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	EmailTaken(ctx context.Context, email string, excludeID string) (bool, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id string) error
}

type TokenStore interface {
	Create(ctx context.Context, token models.Token) error
	FindActive(ctx context.Context, token string, userID string, tokenType models.TokenType) (models.Token, error)
	FindActiveByToken(ctx context.Context, token string, tokenType models.TokenType) (models.Token, error)
	Blacklist(ctx context.Context, token string, userID string, tokenType models.TokenType) error
	DeleteByToken(ctx context.Context, token string, tokenType models.TokenType) error
}

type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	ListByUser(ctx context.Context, userID string) ([]models.Session, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByToken(ctx context.Context, token string, userID string) error
}

type CategoryStore interface {
	Create(ctx context.Context, category models.Category) error
	GetByID(ctx context.Context, id string) (models.Category, error)
	SlugTaken(ctx context.Context, slug string, excludeID string) (bool, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category models.Category) error
	AdjustPostCount(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
}

type BlogStore interface {
	Create(ctx context.Context, blog models.Blog) error
	GetByID(ctx context.Context, id string) (models.BlogListItem, error)
	Update(ctx context.Context, blog models.Blog) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (models.BlogListItem, error)
	List(ctx context.Context, filter repository.BlogFilter) ([]models.BlogListItem, int, error)
}
