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
)

type CategoryService struct {
	categories CategoryStore
	log        zerolog.Logger
}

func NewCategoryService(categories CategoryStore, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

type CategoryInput struct {
	Name        string
	Slug        string
	Description string
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (models.Category, error) {
	slug := strings.TrimSpace(strings.ToLower(input.Slug))

	taken, err := s.categories.SlugTaken(ctx, slug, "")
	if err != nil {
		return models.Category{}, err
	}
	if taken {
		return models.Category{}, apperr.BadRequest("Slug already taken")
	}

	category := models.Category{
		ID:          ids.New(),
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return models.Category{}, apperr.NotFound("Category not found")
		}
		return models.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id string, input CategoryInput) (models.Category, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}

	if input.Slug != "" {
		slug := strings.TrimSpace(strings.ToLower(input.Slug))
		taken, err := s.categories.SlugTaken(ctx, slug, id)
		if err != nil {
			return models.Category{}, err
		}
		if taken {
			return models.Category{}, apperr.BadRequest("Slug already taken")
		}
		category.Slug = slug
	}
	if input.Name != "" {
		category.Name = input.Name
	}
	if input.Description != "" {
		category.Description = input.Description
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return apperr.NotFound("Category not found")
		}
		return err
	}
	return nil
}
