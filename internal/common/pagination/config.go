// Package pagination provides offset-based pagination helpers shared by list endpoints:
// query parsing, offset and page calculation, response envelopes and metrics.
package pagination

// Config holds pagination configuration settings.
// These values are populated from the application configuration.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page (typically 10)
	MaxLimit     int // Maximum allowed items per page; 0 means unbounded
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=10, no maximum.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     0,
	}
}

// Bounded reports whether a maximum page size is enforced.
func (c Config) Bounded() bool {
	return c.MaxLimit > 0
}
