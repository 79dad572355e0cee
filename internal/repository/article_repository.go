// Package repository declares the persistence ports used by the usecase layer.
package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleFilter narrows a list or count query.
// Zero values mean "no filter". Category and Keyword are ANDed when both are set.
type ArticleFilter struct {
	Category *entity.Category // Optional: exact category match
	Keyword  string           // Optional: case-insensitive substring match against title
}

// IsEmpty reports whether the filter has no conditions.
func (f ArticleFilter) IsEmpty() bool {
	return f.Category == nil && f.Keyword == ""
}

// ArticleRepository is the persistence port for articles.
type ArticleRepository interface {
	// List returns articles matching filter ordered by published_at DESC.
	// Parameters:
	//   - offset: Number of rows to skip (calculated from page number)
	//   - limit: Maximum number of rows to return
	List(ctx context.Context, filter ArticleFilter, offset, limit int) ([]*entity.Article, error)
	// Count returns the number of articles matching filter, ignoring pagination.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)
	// Create inserts article and sets its generated ID.
	Create(ctx context.Context, article *entity.Article) error
}
