package pagination

import (
	"fmt"
	"math"
)

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - page is less than 1
//   - limit is less than 1, or greater than config.MaxLimit when bounded
//   - the resulting offset (page-1)*limit does not fit in an int
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.Limit < 1 {
		return fmt.Errorf("limit must be a positive integer")
	}
	if config.Bounded() && p.Limit > config.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", config.MaxLimit)
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return fmt.Errorf("page %d is out of range for limit %d", p.Page, p.Limit)
	}
	return nil
}
