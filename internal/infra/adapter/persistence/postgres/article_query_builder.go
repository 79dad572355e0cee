// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// articleColumns is the column order shared by every SELECT and by scanArticle.
var articleColumns = []string{
	"id", "title", "description", "content", "image_url",
	"category", "published_at", "source", "created_at", "updated_at",
}

// likeEscaper escapes LIKE metacharacters so keywords match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes %, _ and \ for use inside a LIKE/ILIKE pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ArticleQueryBuilder builds article statements with squirrel.
// The same WHERE predicate feeds both the page SELECT and the COUNT so the two never drift.
// It uses PostgreSQL-specific ILIKE and numbered placeholders ($1, $2, etc.).
type ArticleQueryBuilder struct {
	psql sq.StatementBuilderType
}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Where returns the predicate for filter, or nil when the filter is empty.
// Category is an exact match; keyword is a case-insensitive substring match on title.
func (qb *ArticleQueryBuilder) Where(filter repository.ArticleFilter) sq.Sqlizer {
	if filter.IsEmpty() {
		return nil
	}

	var conds sq.And
	if filter.Category != nil {
		conds = append(conds, sq.Eq{"category": string(*filter.Category)})
	}
	if filter.Keyword != "" {
		conds = append(conds, sq.ILike{"title": "%" + EscapeLike(filter.Keyword) + "%"})
	}

	if len(conds) == 1 {
		return conds[0]
	}
	return conds
}

// SelectPage builds the paginated SELECT, newest first. id breaks publish-time ties
// so consecutive pages never overlap.
func (qb *ArticleQueryBuilder) SelectPage(filter repository.ArticleFilter, offset, limit int) sq.SelectBuilder {
	q := qb.psql.Select(articleColumns...).From("articles")
	if where := qb.Where(filter); where != nil {
		q = q.Where(where)
	}
	return q.OrderBy("published_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
}

// Count builds the COUNT(*) statement for filter.
func (qb *ArticleQueryBuilder) Count(filter repository.ArticleFilter) sq.SelectBuilder {
	q := qb.psql.Select("COUNT(*)").From("articles")
	if where := qb.Where(filter); where != nil {
		q = q.Where(where)
	}
	return q
}

// Insert builds the INSERT statement for article, returning the generated id.
func (qb *ArticleQueryBuilder) Insert(article *entity.Article) sq.InsertBuilder {
	return qb.psql.Insert("articles").
		Columns(articleColumns[1:]...).
		Values(
			article.Title, article.Description, article.Content, article.ImageURL,
			string(article.Category), article.PublishedAt, article.Source,
			article.CreatedAt, article.UpdatedAt,
		).
		Suffix("RETURNING id")
}
