package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
)

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// articlesTableDDL builds the articles table definition. The category CHECK
// list is derived from the domain enumeration so both stay in sync.
func articlesTableDDL() string {
	quoted := make([]string, 0, len(entity.CategoryNames()))
	for _, name := range entity.CategoryNames() {
		quoted = append(quoted, "'"+name+"'")
	}

	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS articles (
    id           BIGSERIAL PRIMARY KEY,
    title        TEXT NOT NULL CHECK (btrim(title) <> ''),
    description  TEXT NOT NULL DEFAULT '',
    content      TEXT NOT NULL DEFAULT '',
    image_url    TEXT NOT NULL DEFAULT '',
    category     VARCHAR(32) NOT NULL CHECK (category IN (%s)),
    published_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    source       TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`, strings.Join(quoted, ", "))
}

// MigrateUp creates the articles table and its indexes. It is idempotent.
func MigrateUp(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, articlesTableDDL()); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}

	indexes := []string{
		// list ordering
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC, id DESC)`,
		// category filter
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
	}
	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	// pg_trgm speeds up the keyword ILIKE. Both statements may fail without
	// superuser rights; the search still works with a sequential scan.
	_, _ = db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	_, _ = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`)

	return nil
}

// MigrateDown drops the articles table together with its indexes.
// Use with caution: this deletes all stored articles.
func MigrateDown(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS articles CASCADE`); err != nil {
		return fmt.Errorf("drop articles table: %w", err)
	}
	return nil
}
