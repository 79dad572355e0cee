package pagination

// Metadata describes the page a list result belongs to.
type Metadata struct {
	Total      int64 // Total number of items across all pages
	Page       int   // Current page number (1-based)
	Limit      int   // Items per page
	TotalPages int   // ceil(Total / Limit)
}

// NewMetadata builds metadata for params and the matching item count.
func NewMetadata(params Params, total int64) Metadata {
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: CalculateTotalPages(total, params.Limit),
	}
}
