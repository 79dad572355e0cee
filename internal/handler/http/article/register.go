package article

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	artUC "newsdesk/internal/usecase/article"
)

// Register registers the article endpoints with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /api/news", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("POST /api/news", CreateHandler{
		Svc:    svc,
		Logger: logger,
	})
}
