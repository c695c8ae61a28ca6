package service_test

import (
	"context"
	"sync"

	"blogcms/api/internal/models"
	"blogcms/api/internal/repository"
)

// In-memory stores backing the service tests. They mirror the behavior the
// pgx repositories promise: sentinel errors for missing rows and sessions
// listed oldest first.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) EmailTaken(_ context.Context, email string, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Update(_ context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeTokenStore struct {
	mu      sync.Mutex
	records []models.Token
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{}
}

func (f *fakeTokenStore) Create(_ context.Context, token models.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, token)
	return nil
}

func (f *fakeTokenStore) FindActive(_ context.Context, token string, userID string, tokenType models.TokenType) (models.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.Token == token && r.UserID == userID && r.Type == tokenType && !r.Blacklisted {
			return r, nil
		}
	}
	return models.Token{}, repository.ErrTokenNotFound
}

func (f *fakeTokenStore) FindActiveByToken(_ context.Context, token string, tokenType models.TokenType) (models.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.Token == token && r.Type == tokenType && !r.Blacklisted {
			return r, nil
		}
	}
	return models.Token{}, repository.ErrTokenNotFound
}

func (f *fakeTokenStore) Blacklist(_ context.Context, token string, userID string, tokenType models.TokenType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.Token == token && r.UserID == userID && r.Type == tokenType {
			f.records[i].Blacklisted = true
			return nil
		}
	}
	return repository.ErrTokenNotFound
}

func (f *fakeTokenStore) DeleteByToken(_ context.Context, token string, tokenType models.TokenType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.Token == token && r.Type == tokenType {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return repository.ErrTokenNotFound
}

func (f *fakeTokenStore) isBlacklisted(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.Token == token {
			return r.Blacklisted
		}
	}
	return false
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions []models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{}
}

func (f *fakeSessionStore) Create(_ context.Context, session models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionStore) ListByUser(_ context.Context, userID string) ([]models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Session
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) DeleteByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.sessions {
		if s.ID == id {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return repository.ErrSessionNotFound
}

func (f *fakeSessionStore) DeleteByToken(_ context.Context, token string, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.sessions {
		if s.Token == token && s.UserID == userID {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return repository.ErrSessionNotFound
}

func (f *fakeSessionStore) count(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.sessions {
		if s.UserID == userID {
			n++
		}
	}
	return n
}

type fakeCategoryStore struct {
	mu         sync.Mutex
	categories map[string]models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[string]models.Category{}}
}

func (f *fakeCategoryStore) Create(_ context.Context, category models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id string) (models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return models.Category{}, repository.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryStore) SlugTaken(_ context.Context, slug string, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) List(_ context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, category models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryStore) AdjustPostCount(_ context.Context, id string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return repository.ErrCategoryNotFound
	}
	c.PostCount += delta
	f.categories[id] = c
	return nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryStore) postCount(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories[id].PostCount
}

type fakeBlogStore struct {
	mu    sync.Mutex
	blogs []models.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{}
}

func (f *fakeBlogStore) Create(_ context.Context, blog models.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blogs = append(f.blogs, blog)
	return nil
}

func (f *fakeBlogStore) GetByID(_ context.Context, id string) (models.BlogListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.blogs {
		if b.ID == id {
			return models.BlogListItem{Blog: b}, nil
		}
	}
	return models.BlogListItem{}, repository.ErrBlogNotFound
}

func (f *fakeBlogStore) Update(_ context.Context, blog models.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.blogs {
		if b.ID == blog.ID {
			f.blogs[i] = blog
			return nil
		}
	}
	return repository.ErrBlogNotFound
}

func (f *fakeBlogStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.blogs {
		if b.ID == id {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			return nil
		}
	}
	return repository.ErrBlogNotFound
}

func (f *fakeBlogStore) IncrementViews(_ context.Context, id string) (models.BlogListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.blogs {
		if b.ID == id {
			f.blogs[i].Views++
			return models.BlogListItem{Blog: f.blogs[i]}, nil
		}
	}
	return models.BlogListItem{}, repository.ErrBlogNotFound
}

func (f *fakeBlogStore) List(_ context.Context, filter repository.BlogFilter) ([]models.BlogListItem, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.BlogListItem
	for _, b := range f.blogs {
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		if filter.CategoryID != "" && b.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, models.BlogListItem{Blog: b})
	}

	total := len(matched)
	if filter.Offset >= total {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}
