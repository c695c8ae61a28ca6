package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"blogcms/api/internal/apperr"
	"blogcms/api/internal/models"
	"blogcms/api/internal/repository"
	"blogcms/api/internal/service"
)

type blogFixture struct {
	blogs      *fakeBlogStore
	categories *fakeCategoryStore
	service    *service.BlogService
}

func newBlogFixture(t *testing.T) *blogFixture {
	t.Helper()

	blogs := newFakeBlogStore()
	categories := newFakeCategoryStore()
	require.NoError(t, categories.Create(context.Background(), models.Category{
		ID:   "cat-1",
		Name: "Engineering",
		Slug: "engineering",
	}))

	return &blogFixture{
		blogs:      blogs,
		categories: categories,
		service:    service.NewBlogService(blogs, categories, zerolog.Nop()),
	}
}

func blogInput() service.BlogInput {
	return service.BlogInput{
		Title:      "A Post",
		Content:    "Body text",
		CategoryID: "cat-1",
		AuthorID:   "author-1",
	}
}

func TestBlogCreate_PublishedWithPostCount(t *testing.T) {
	f := newBlogFixture(t)

	blog, err := f.service.Create(context.Background(), blogInput())
	require.NoError(t, err)
	require.NotEmpty(t, blog.ID)
	require.Equal(t, models.BlogStatusPublished, blog.Status)
	require.Equal(t, 1, f.categories.postCount("cat-1"))
}

func TestBlogCreate_UnknownCategory(t *testing.T) {
	f := newBlogFixture(t)

	input := blogInput()
	input.CategoryID = "missing"
	_, err := f.service.Create(context.Background(), input)
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Status)
}

func TestBlogSaveDraft(t *testing.T) {
	f := newBlogFixture(t)

	blog, err := f.service.SaveDraft(context.Background(), blogInput())
	require.NoError(t, err)
	require.Equal(t, models.BlogStatusDraft, blog.Status)
}

func TestBlogPublish(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	draft, err := f.service.SaveDraft(ctx, blogInput())
	require.NoError(t, err)

	published, err := f.service.Publish(ctx, draft.ID)
	require.NoError(t, err)
	require.Equal(t, models.BlogStatusPublished, published.Status)

	_, err = f.service.Publish(ctx, draft.ID)
	require.Error(t, err)
	require.Equal(t, "Blog is already published", err.Error())
}

func TestBlogIncrementViews(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	blog, err := f.service.Create(ctx, blogInput())
	require.NoError(t, err)

	item, err := f.service.IncrementViews(ctx, blog.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), item.Views)

	item, err = f.service.IncrementViews(ctx, blog.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), item.Views)
}

func TestBlogUpdate_CategoryChangeMovesPostCount(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	require.NoError(t, f.categories.Create(ctx, models.Category{
		ID:   "cat-2",
		Name: "Design",
		Slug: "design",
	}))

	blog, err := f.service.Create(ctx, blogInput())
	require.NoError(t, err)
	require.Equal(t, 1, f.categories.postCount("cat-1"))

	newCategory := "cat-2"
	updated, err := f.service.Update(ctx, blog.ID, service.UpdateBlogInput{CategoryID: &newCategory})
	require.NoError(t, err)
	require.Equal(t, "cat-2", updated.CategoryID)
	require.Equal(t, 0, f.categories.postCount("cat-1"))
	require.Equal(t, 1, f.categories.postCount("cat-2"))
}

func TestBlogUpdate_PartialFields(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	blog, err := f.service.Create(ctx, blogInput())
	require.NoError(t, err)

	title := "Renamed"
	updated, err := f.service.Update(ctx, blog.ID, service.UpdateBlogInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, blog.Content, updated.Content)
	require.Equal(t, blog.CategoryID, updated.CategoryID)
}

func TestBlogDelete_DecrementsPostCount(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	blog, err := f.service.Create(ctx, blogInput())
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, blog.ID))
	require.Equal(t, 0, f.categories.postCount("cat-1"))

	_, err = f.service.GetByID(ctx, blog.ID)
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Status)
}

func TestBlogList_Paginates(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := f.service.Create(ctx, blogInput())
		require.NoError(t, err)
	}

	page, err := f.service.List(ctx, repository.BlogFilter{Limit: 2}, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 5, page.TotalResults)
}

func TestBlogList_DefaultsPageAndLimit(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, blogInput())
	require.NoError(t, err)

	page, err := f.service.List(ctx, repository.BlogFilter{}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)
	require.Len(t, page.Items, 1)
}

func TestBlogList_FiltersByStatus(t *testing.T) {
	f := newBlogFixture(t)
	ctx := context.Background()

	_, err := f.service.Create(ctx, blogInput())
	require.NoError(t, err)
	_, err = f.service.SaveDraft(ctx, blogInput())
	require.NoError(t, err)

	page, err := f.service.List(ctx, repository.BlogFilter{Status: "published"}, 1)
	require.NoError(t, err)
	require.Equal(t, 1, page.TotalResults)
	require.Equal(t, models.BlogStatusPublished, page.Items[0].Status)
}
