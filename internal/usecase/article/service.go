package article

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// Source and PublishedAt cannot be set through this path.
type CreateInput struct {
	Title       string
	Description string
	Content     string
	ImageURL    string
	Category    string
}

// ListQuery holds the optional list filters exactly as the client sent them.
type ListQuery struct {
	Category string
	Keyword  string
}

// Service provides article use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a Service backed by repo using the wall clock.
func NewService(repo repository.ArticleRepository) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns one page of articles matching q, newest first.
//
// The page and the total count are fetched concurrently; a failure of either
// fails the call. A category outside the fixed set matches nothing, so an
// empty page is returned without touching storage.
func (s *Service) List(ctx context.Context, params pagination.Params, q ListQuery) (*PaginatedResult, error) {
	if s.Repo == nil {
		return nil, ErrNilRepository
	}
	if err := params.Validate(pagination.Config{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPagination, err)
	}

	ctx, span := tracing.GetTracer().Start(ctx, "article.List")
	defer span.End()
	span.SetAttributes(
		attribute.Int("pagination.page", params.Page),
		attribute.Int("pagination.limit", params.Limit),
		attribute.String("filter.category", truncateAttr(q.Category)),
		attribute.String("filter.keyword", truncateAttr(q.Keyword)),
	)

	start := time.Now()
	defer func() { pagination.RecordDuration("service", time.Since(start).Seconds()) }()

	filter, ok := buildFilter(q)
	if !ok {
		span.AddEvent("unknown category; no articles can match")
		pagination.UpdateMatchedCount(0)
		return &PaginatedResult{
			Data:       []*entity.Article{},
			Pagination: pagination.NewMetadata(params, 0),
		}, nil
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)

	var (
		articles []*entity.Article
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.Repo.List(gctx, filter, offset, params.Limit)
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, err
	}

	if articles == nil {
		articles = []*entity.Article{}
	}
	pagination.UpdateMatchedCount(total)
	span.SetAttributes(attribute.Int64("result.total", total), attribute.Int("result.count", len(articles)))

	return &PaginatedResult{
		Data:       articles,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// buildFilter converts q into a repository filter. It reports false when the
// category is set but outside the fixed set.
func buildFilter(q ListQuery) (repository.ArticleFilter, bool) {
	var filter repository.ArticleFilter
	if q.Category != "" {
		cat, err := entity.ParseCategory(q.Category)
		if err != nil {
			return filter, false
		}
		filter.Category = &cat
	}
	filter.Keyword = q.Keyword
	return filter, true
}

// Create validates in, stamps the creation time on every timestamp and
// persists the article. Returns a *entity.ValidationError if a required field
// is missing or the category is not in the fixed set; nothing is stored then.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if s.Repo == nil {
		return nil, ErrNilRepository
	}

	ctx, span := tracing.GetTracer().Start(ctx, "article.Create")
	defer span.End()

	now := s.now().UTC()
	art := &entity.Article{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		Category:    entity.Category(in.Category),
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store(ctx, art); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int64("article.id", art.ID), attribute.String("article.category", string(art.Category)))
	return art, nil
}

// Import stores fixture articles one by one. Unlike Create it keeps Source and
// a non-zero PublishedAt; missing timestamps default to the current time.
// It stops at the first failure and reports how many articles were stored.
func (s *Service) Import(ctx context.Context, articles []entity.Article) (int, error) {
	if s.Repo == nil {
		return 0, ErrNilRepository
	}

	imported := 0
	for i := range articles {
		art := articles[i]
		now := s.now().UTC()
		if art.PublishedAt.IsZero() {
			art.PublishedAt = now
		}
		art.CreatedAt = now
		art.UpdatedAt = now

		if err := s.store(ctx, &art); err != nil {
			return imported, fmt.Errorf("import article %d (%q): %w", i, art.Title, err)
		}
		imported++
	}
	return imported, nil
}

// store validates art and inserts it, recording the outcome metrics.
func (s *Service) store(ctx context.Context, art *entity.Article) error {
	if err := art.Validate(); err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			metrics.RecordValidationFailure(vErr.Field)
		}
		return err
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleCreated(string(art.Category))
	return nil
}

// maxAttrLen bounds user supplied span attribute values, in bytes.
const maxAttrLen = 128

// truncateAttr cuts s to at most maxAttrLen bytes without splitting a rune.
func truncateAttr(s string) string {
	if len(s) <= maxAttrLen {
		return s
	}
	s = s[:maxAttrLen]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
