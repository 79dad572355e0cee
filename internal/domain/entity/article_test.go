package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_ZeroValue(t *testing.T) {
	var article Article

	assert.Equal(t, int64(0), article.ID)
	assert.Equal(t, "", article.Title)
	assert.Equal(t, Category(""), article.Category)
	assert.True(t, article.PublishedAt.IsZero())
	assert.True(t, article.CreatedAt.IsZero())
	assert.True(t, article.UpdatedAt.IsZero())
}

func TestArticle_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		article   Article
		wantField string
	}{
		{
			name:    "valid article",
			article: Article{Title: "Tech News", Category: CategoryTechnology, PublishedAt: now},
		},
		{
			name:    "valid with optional fields empty",
			article: Article{Title: "Match report", Category: CategorySports},
		},
		{
			name:      "missing title",
			article:   Article{Category: CategoryHealth},
			wantField: "title",
		},
		{
			name:      "whitespace title",
			article:   Article{Title: "   ", Category: CategoryHealth},
			wantField: "title",
		},
		{
			name:      "missing category",
			article:   Article{Title: "Tech News"},
			wantField: "category",
		},
		{
			name:      "unknown category",
			article:   Article{Title: "Tech News", Category: "Gossip"},
			wantField: "category",
		},
		{
			name:      "category with wrong case",
			article:   Article{Title: "Tech News", Category: "technology"},
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.article.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var valErr *ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, tt.wantField, valErr.Field)
			assert.NotEmpty(t, valErr.Message)
		})
	}
}
