package article

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	artUC "newsdesk/internal/usecase/article"
)

// CreateHandler serves article submission.
type CreateHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP creates an article.
//
//	POST /api/news {"title","description","content","imageUrl","category"}
//
// Responds 201 with {"success":true,"data":article}, 400 when the body is not
// valid JSON and 413 when it exceeds the size limit. A missing or invalid
// field and a storage failure both answer 500 with {"success":false,"message"};
// validation failures carry their descriptive message.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.logger())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Failure(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		logger.Warn("invalid create request body", slog.Any("error", err))
		respond.Failure(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			logger.Info("article rejected", slog.String("reason", err.Error()))
		} else {
			logger.Error("failed to create article",
				slog.String("error", respond.SanitizeError(err)),
				slog.String("error_type", storageErrorType(err)))
		}
		respond.Error(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("article created",
		slog.Int64("id", art.ID),
		slog.String("category", string(art.Category)))
	respond.Success(w, http.StatusCreated, toDTO(art))
}

func (h CreateHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
