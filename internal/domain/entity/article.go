// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article record and the closed Category enumeration, along with
// their validation rules and domain-specific errors.
package entity

import (
	"strings"
	"time"
)

// Article represents a news article entity in the system.
// Optional text fields are stored as empty strings when absent.
type Article struct {
	ID          int64
	Title       string
	Description string
	Content     string
	ImageURL    string
	Category    Category
	PublishedAt time.Time
	Source      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the required fields of an article.
// Title must be non-empty and Category must belong to the fixed set.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return &ValidationError{Field: "title", Message: "Please add a title"}
	}
	if a.Category == "" {
		return &ValidationError{Field: "category", Message: "Please add a category"}
	}
	if !a.Category.Valid() {
		return &ValidationError{
			Field:   "category",
			Message: "`" + string(a.Category) + "` is not a valid category",
		}
	}
	return nil
}
