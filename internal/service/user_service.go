package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"blogcms/api/internal/apperr"
	"blogcms/api/internal/models"
	"blogcms/api/internal/repository"
	"blogcms/api/internal/security"
)

type UserService struct {
	users UserStore
	log   zerolog.Logger
}

func NewUserService(users UserStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, apperr.NotFound("User not found")
		}
		return models.User{}, err
	}
	return user, nil
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		taken, err := s.users.EmailTaken(ctx, email, id)
		if err != nil {
			return models.User{}, err
		}
		if taken {
			return models.User{}, apperr.BadRequest("Email already taken")
		}
		user.Email = email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := security.HashPassword(*input.Password)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	return nil
}
