package article_test

import (
	"context"
	"sync"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

/* ───────── モック実装 ───────── */

type stubArticleRepo struct {
	mu          sync.Mutex
	articles    []*entity.Article
	total       int64
	listErr     error
	countErr    error
	createErr   error
	lastFilter  repository.ArticleFilter
	lastOffset  int
	lastLimit   int
	lastArticle *entity.Article
	listCalls   int
}

func (s *stubArticleRepo) List(_ context.Context, f repository.ArticleFilter, offset, limit int) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	s.lastFilter, s.lastOffset, s.lastLimit = f, offset, limit
	return s.articles, s.listErr
}

func (s *stubArticleRepo) Count(_ context.Context, _ repository.ArticleFilter) (int64, error) {
	return s.total, s.countErr
}

func (s *stubArticleRepo) Create(_ context.Context, a *entity.Article) error {
	s.lastArticle = a
	if s.createErr != nil {
		return s.createErr
	}
	a.ID = 42
	return nil
}
