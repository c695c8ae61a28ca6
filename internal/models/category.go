package models

import "time"

type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	PostCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
