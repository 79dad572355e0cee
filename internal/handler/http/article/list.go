package article

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/resilience/circuitbreaker"
	artUC "newsdesk/internal/usecase/article"
)

// ListHandler serves the paginated, filterable article list.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP lists articles.
//
//	GET /api/news?page=1&limit=10&category=Technology&keyword=go
//
// page and limit must be positive integers (defaults 1 and 10). category is
// matched exactly; keyword is a case-insensitive substring of the title.
// Responds 200 with the paginated envelope, 400 on bad pagination parameters
// and 500 when storage fails.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.logger())

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.LogError(logger, params, err, "validation")
		pagination.RecordError("validation")
		pagination.RecordRequest(http.StatusBadRequest, params.Page)
		respond.Failure(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	query := artUC.ListQuery{
		Category: q.Get("category"),
		Keyword:  q.Get("keyword"),
	}
	pagination.LogRequest(logger, params, "category", query.Category, "keyword", query.Keyword)

	result, err := h.Svc.List(ctx, params, query)
	if err != nil {
		errType := storageErrorType(err)
		pagination.LogError(logger, params, err, errType)
		pagination.RecordError(errType)
		pagination.RecordRequest(http.StatusInternalServerError, params.Page)
		respond.Error(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, a := range result.Data {
		dtos = append(dtos, toDTO(a))
	}

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.LogResponse(logger, params, len(dtos), duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}

func (h ListHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// storageErrorType labels a storage failure for logs and metrics. Calls
// rejected by an open circuit breaker never reached the database.
func storageErrorType(err error) string {
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		return "circuit_open"
	}
	return "database"
}
