package pagination

// CalculateOffset calculates the database OFFSET value based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 10 -> Offset 0
//   - Page 2, Limit 10 -> Offset 10
//   - Page 3, Limit 20 -> Offset 40
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit).
// An empty result set has zero pages. A non-positive limit also yields zero.
//
// Examples:
//   - Total 0, Limit 10 -> 0 pages
//   - Total 10, Limit 10 -> 1 page
//   - Total 11, Limit 10 -> 2 pages
//   - Total 95, Limit 20 -> 5 pages
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
