// Package seed reads fixture articles from YAML so they can be imported
// through the article service.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"newsdesk/internal/domain/entity"
)

// ErrNoArticles is returned when a fixture document contains no articles.
var ErrNoArticles = errors.New("seed: no articles in fixture")

// timeLayouts are accepted for publishedAt, tried in order.
var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

type fixture struct {
	Articles []fixtureArticle `yaml:"articles"`
}

type fixtureArticle struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Content     string `yaml:"content"`
	ImageURL    string `yaml:"imageUrl"`
	Category    string `yaml:"category"`
	Source      string `yaml:"source"`
	PublishedAt string `yaml:"publishedAt"`
}

// Load decodes a fixture document of the form
//
//	articles:
//	  - title: ...
//	    category: Technology
//	    publishedAt: 2024-05-01T09:00:00Z
//
// Unknown keys are rejected. Field validation is left to the service.
func Load(r io.Reader) ([]entity.Article, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoArticles
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if len(f.Articles) == 0 {
		return nil, ErrNoArticles
	}

	out := make([]entity.Article, 0, len(f.Articles))
	for i, fa := range f.Articles {
		published, err := parseTime(fa.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("article %d: publishedAt: %w", i, err)
		}
		out = append(out, entity.Article{
			Title:       fa.Title,
			Description: fa.Description,
			Content:     fa.Content,
			ImageURL:    fa.ImageURL,
			Category:    entity.Category(strings.TrimSpace(fa.Category)),
			Source:      fa.Source,
			PublishedAt: published,
		})
	}
	return out, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]entity.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
