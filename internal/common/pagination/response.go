package pagination

// Response is the paginated list envelope returned by list endpoints.
// T is the type of data items (e.g., article.DTO).
//
// Example usage:
//
//	response := pagination.NewResponse(dtos, result.Pagination)
//	// {"success":true,"data":[...],"currentPage":1,"totalPages":3,"totalArticles":25}
type Response[T any] struct {
	Success       bool  `json:"success"`
	Data          []T   `json:"data"`
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalArticles int64 `json:"totalArticles"`
}

// NewResponse creates a successful paginated response with data and metadata.
// A nil data slice is encoded as an empty JSON array.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Success:       true,
		Data:          data,
		CurrentPage:   metadata.Page,
		TotalPages:    metadata.TotalPages,
		TotalArticles: metadata.Total,
	}
}
