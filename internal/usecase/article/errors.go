// Package article provides use cases for listing and submitting news articles.
// It applies the domain validation rules, fills in timestamps and delegates
// persistence to the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrInvalidPagination indicates that the page or limit is not a positive integer.
	ErrInvalidPagination = errors.New("invalid pagination: page and limit must be positive integers")

	// ErrNilRepository is returned when the service is used without a repository.
	ErrNilRepository = errors.New("article repository is not configured")
)
