package postgres_test

import (
	"strings"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/repository"
)

func categoryPtr(c entity.Category) *entity.Category { return &c }

/* ──────────────────────────── Where ──────────────────────────── */

func TestArticleQueryBuilder_Where_Empty(t *testing.T) {
	builder := postgres.NewArticleQueryBuilder()

	if where := builder.Where(repository.ArticleFilter{}); where != nil {
		t.Errorf("Where(empty) = %v, want nil", where)
	}
}

func TestArticleQueryBuilder_Where(t *testing.T) {
	builder := postgres.NewArticleQueryBuilder()

	tests := []struct {
		name     string
		filter   repository.ArticleFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "category only",
			filter:   repository.ArticleFilter{Category: categoryPtr(entity.CategoryHealth)},
			wantSQL:  "category = ?",
			wantArgs: []interface{}{"Health"},
		},
		{
			name:     "keyword only",
			filter:   repository.ArticleFilter{Keyword: "tech"},
			wantSQL:  "title ILIKE ?",
			wantArgs: []interface{}{"%tech%"},
		},
		{
			name: "category and keyword are ANDed",
			filter: repository.ArticleFilter{
				Category: categoryPtr(entity.CategoryTechnology),
				Keyword:  "Go",
			},
			wantSQL:  "(category = ? AND title ILIKE ?)",
			wantArgs: []interface{}{"Technology", "%Go%"},
		},
		{
			name:     "keyword metacharacters are escaped",
			filter:   repository.ArticleFilter{Keyword: `100%_off\`},
			wantSQL:  "title ILIKE ?",
			wantArgs: []interface{}{`%100\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := builder.Where(tt.filter).ToSql()
			if err != nil {
				t.Fatalf("ToSql: %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("len(args) = %d, want %d", len(args), len(tt.wantArgs))
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

/* ──────────────────────────── SelectPage / Count ──────────────────────────── */

func TestArticleQueryBuilder_SelectPage(t *testing.T) {
	builder := postgres.NewArticleQueryBuilder()

	sql, args, err := builder.SelectPage(repository.ArticleFilter{Keyword: "tech"}, 10, 10).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}

	for _, fragment := range []string{
		"SELECT id, title, description, content, image_url, category, published_at, source, created_at, updated_at",
		"FROM articles",
		"WHERE title ILIKE $1",
		"ORDER BY published_at DESC, id DESC",
		"LIMIT 10",
		"OFFSET 10",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("sql %q does not contain %q", sql, fragment)
		}
	}
	if len(args) != 1 || args[0] != "%tech%" {
		t.Errorf("args = %v, want [%%tech%%]", args)
	}
}

func TestArticleQueryBuilder_SelectPage_NoFilter(t *testing.T) {
	builder := postgres.NewArticleQueryBuilder()

	sql, args, err := builder.SelectPage(repository.ArticleFilter{}, 0, 10).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if strings.Contains(sql, "WHERE") {
		t.Errorf("unfiltered select must not contain WHERE: %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestArticleQueryBuilder_Count(t *testing.T) {
	builder := postgres.NewArticleQueryBuilder()
	filter := repository.ArticleFilter{Category: categoryPtr(entity.CategorySports)}

	sql, args, err := builder.Count(filter).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if want := "SELECT COUNT(*) FROM articles WHERE category = $1"; sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "Sports" {
		t.Errorf("args = %v, want [Sports]", args)
	}
	if strings.Contains(sql, "LIMIT") || strings.Contains(sql, "OFFSET") {
		t.Errorf("count must not paginate: %q", sql)
	}
}

/* ──────────────────────────── Insert ──────────────────────────── */

func TestArticleQueryBuilder_Insert(t *testing.T) {
	builder := postgres.NewArticleQueryBuilder()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	sql, args, err := builder.Insert(&entity.Article{
		Title: "Tech News", Category: entity.CategoryTechnology,
		PublishedAt: now, CreatedAt: now, UpdatedAt: now,
	}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.HasPrefix(sql, "INSERT INTO articles") {
		t.Errorf("sql = %q, want INSERT INTO articles prefix", sql)
	}
	if !strings.HasSuffix(sql, "RETURNING id") {
		t.Errorf("sql = %q, want RETURNING id suffix", sql)
	}
	if len(args) != 9 {
		t.Fatalf("len(args) = %d, want 9", len(args))
	}
	if args[0] != "Tech News" || args[4] != "Technology" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":  "plain",
		"50%":    `50\%`,
		"a_b":    `a\_b`,
		`c:\dir`: `c:\\dir`,
	}
	for in, want := range tests {
		if got := postgres.EscapeLike(in); got != want {
			t.Errorf("EscapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
