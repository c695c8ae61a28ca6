package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"blogcms/api/internal/apperr"
	"blogcms/api/internal/ids"
	"blogcms/api/internal/models"
	"blogcms/api/internal/repository"
)

type BlogService struct {
	blogs      BlogStore
	categories CategoryStore
	log        zerolog.Logger
}

func NewBlogService(blogs BlogStore, categories CategoryStore, log zerolog.Logger) *BlogService {
	return &BlogService{
		blogs:      blogs,
		categories: categories,
		log:        log,
	}
}

type BlogInput struct {
	Title      string
	Content    string
	CategoryID string
	AuthorID   string
	Featured   bool
	CoverImage string
}

func (s *BlogService) create(ctx context.Context, input BlogInput, status models.BlogStatus) (models.Blog, error) {
	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return models.Blog{}, apperr.BadRequest("Category not found")
		}
		return models.Blog{}, err
	}

	blog := models.Blog{
		ID:         ids.New(),
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		AuthorID:   input.AuthorID,
		Status:     status,
		Featured:   input.Featured,
		CoverImage: input.CoverImage,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return models.Blog{}, err
	}

	if err := s.categories.AdjustPostCount(ctx, input.CategoryID, 1); err != nil {
		s.log.Warn().Err(err).Str("category_id", input.CategoryID).Msg("post count increment failed")
	}
	return blog, nil
}

func (s *BlogService) Create(ctx context.Context, input BlogInput) (models.Blog, error) {
	return s.create(ctx, input, models.BlogStatusPublished)
}

func (s *BlogService) SaveDraft(ctx context.Context, input BlogInput) (models.Blog, error) {
	return s.create(ctx, input, models.BlogStatusDraft)
}

func (s *BlogService) GetByID(ctx context.Context, id string) (models.BlogListItem, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return models.BlogListItem{}, apperr.NotFound("Blog not found")
		}
		return models.BlogListItem{}, err
	}
	return blog, nil
}

func (s *BlogService) Publish(ctx context.Context, id string) (models.Blog, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Blog{}, err
	}
	if item.Status == models.BlogStatusPublished {
		return models.Blog{}, apperr.BadRequest("Blog is already published")
	}

	blog := item.Blog
	blog.Status = models.BlogStatusPublished
	if err := s.blogs.Update(ctx, blog); err != nil {
		return models.Blog{}, err
	}
	return blog, nil
}

func (s *BlogService) IncrementViews(ctx context.Context, id string) (models.BlogListItem, error) {
	item, err := s.blogs.IncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return models.BlogListItem{}, apperr.NotFound("Blog not found")
		}
		return models.BlogListItem{}, err
	}
	return item, nil
}

type UpdateBlogInput struct {
	Title      *string
	Content    *string
	CategoryID *string
	Featured   *bool
	CoverImage *string
}

func (s *BlogService) Update(ctx context.Context, id string, input UpdateBlogInput) (models.Blog, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Blog{}, err
	}

	blog := item.Blog
	originalCategory := blog.CategoryID

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}
	if input.CategoryID != nil {
		blog.CategoryID = *input.CategoryID
	}
	if input.Featured != nil {
		blog.Featured = *input.Featured
	}
	if input.CoverImage != nil {
		blog.CoverImage = *input.CoverImage
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		return models.Blog{}, err
	}

	if blog.CategoryID != originalCategory {
		if err := s.categories.AdjustPostCount(ctx, originalCategory, -1); err != nil {
			s.log.Warn().Err(err).Str("category_id", originalCategory).Msg("post count decrement failed")
		}
		if err := s.categories.AdjustPostCount(ctx, blog.CategoryID, 1); err != nil {
			s.log.Warn().Err(err).Str("category_id", blog.CategoryID).Msg("post count increment failed")
		}
	}
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.categories.AdjustPostCount(ctx, item.CategoryID, -1); err != nil {
		s.log.Warn().Err(err).Str("category_id", item.CategoryID).Msg("post count decrement failed")
	}
	return nil
}

type BlogPage struct {
	Items        []models.BlogListItem
	Page         int
	Limit        int
	TotalPages   int
	TotalResults int
}

func (s *BlogService) List(ctx context.Context, filter repository.BlogFilter, page int) (BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	filter.Offset = (page - 1) * filter.Limit

	items, total, err := s.blogs.List(ctx, filter)
	if err != nil {
		return BlogPage{}, err
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	return BlogPage{
		Items:        items,
		Page:         page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
		TotalResults: total,
	}, nil
}
