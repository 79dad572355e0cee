package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

// Querier is the subset of *sql.DB used by the repositories.
// Both *sql.DB and *circuitbreaker.DBCircuitBreaker satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ArticleRepo implements repository.ArticleRepository on PostgreSQL.
type ArticleRepo struct {
	db           Querier
	queryBuilder *ArticleQueryBuilder
}

// NewArticleRepo returns an ArticleRepo that runs its statements through db.
func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// List returns one page of articles matching filter, newest first.
func (repo *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]*entity.Article, error) {
	query, args, err := repo.queryBuilder.SelectPage(filter, offset, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("List: build query: %w", err)
	}

	start := time.Now()
	defer func() { metrics.RecordDBQuery("list", time.Since(start)) }()

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.RecordDBError("list")
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, min(limit, 100))
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		metrics.RecordDBError("list")
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return articles, nil
}

// Count returns the number of articles matching filter.
func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	query, args, err := repo.queryBuilder.Count(filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("Count: build query: %w", err)
	}

	start := time.Now()
	defer func() { metrics.RecordDBQuery("count", time.Since(start)) }()

	var count int64
	if err := repo.queryOne(ctx, query, args, &count); err != nil {
		metrics.RecordDBError("count")
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// Create inserts article and stores the generated id on it.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	query, args, err := repo.queryBuilder.Insert(article).ToSql()
	if err != nil {
		return fmt.Errorf("Create: build query: %w", err)
	}

	start := time.Now()
	defer func() { metrics.RecordDBQuery("create", time.Since(start)) }()

	if err := repo.queryOne(ctx, query, args, &article.ID); err != nil {
		metrics.RecordDBError("create")
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// queryOne runs a single-row query through QueryContext so that the circuit
// breaker observes its outcome, and scans the first row into dest.
func (repo *ArticleRepo) queryOne(ctx context.Context, query string, args []interface{}, dest ...interface{}) error {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.Scan(dest...); err != nil {
		return fmt.Errorf("Scan: %w", err)
	}
	return rows.Err()
}

func scanArticle(rows *sql.Rows) (*entity.Article, error) {
	var (
		article  entity.Article
		category string
	)
	if err := rows.Scan(
		&article.ID, &article.Title, &article.Description, &article.Content, &article.ImageURL,
		&category, &article.PublishedAt, &article.Source, &article.CreatedAt, &article.UpdatedAt,
	); err != nil {
		return nil, err
	}
	article.Category = entity.Category(category)
	return &article, nil
}
