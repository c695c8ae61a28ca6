package models

import "time"

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

type Blog struct {
	ID         string
	Title      string
	Content    string
	CategoryID string
	AuthorID   string
	Status     BlogStatus
	Featured   bool
	Views      int64
	CoverImage string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BlogListItem is a blog row joined with its category and author for list
// and detail responses.
type BlogListItem struct {
	Blog
	CategoryName string
	CategorySlug string
	AuthorName   string
	AuthorEmail  string
}
