// Package pathutil maps request paths onto a fixed set of metric labels.
package pathutil

import "strings"

// UnmatchedPath is the label used for every path outside the known routes.
const UnmatchedPath = "/other"

// knownPaths lists every route the server registers.
var knownPaths = map[string]struct{}{
	"/api/news":       {},
	"/api/categories": {},
	"/health":         {},
	"/ready":          {},
	"/live":           {},
	"/metrics":        {},
}

// NormalizePath returns the route label for path, keeping metrics label
// cardinality bounded. Query strings and a trailing slash are ignored; unknown
// paths collapse into UnmatchedPath.
//
// Examples:
//
//	NormalizePath("/api/news?page=2")  // "/api/news"
//	NormalizePath("/api/categories/")  // "/api/categories"
//	NormalizePath("/wp-login.php")     // "/other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	return UnmatchedPath
}

// KnownPaths returns the number of distinct labels NormalizePath can produce.
func KnownPaths() int {
	return len(knownPaths) + 1
}
