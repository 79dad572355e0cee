// Package article provides HTTP handlers for the news article endpoints:
// the filtered, paginated list and article submission.
package article

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// toDTO converts a domain article into its wire form.
func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		Category:    string(a.Category),
		PublishedAt: a.PublishedAt,
		Source:      a.Source,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// createRequest is the POST /api/news body. Source and publishedAt are not accepted.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}
