// Package category serves the fixed category lookup table.
package category

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
)

// DTO is one entry of the category table.
type DTO struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ListHandler answers GET /api/categories with the ten categories in their fixed order.
type ListHandler struct{}

func (ListHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	infos := entity.Categories()
	dtos := make([]DTO, 0, len(infos))
	for _, c := range infos {
		dtos = append(dtos, DTO{Name: string(c.Name), Icon: c.Icon})
	}
	respond.Success(w, http.StatusOK, dtos)
}

// Register registers the category endpoint with the given mux.
func Register(mux *http.ServeMux) {
	mux.Handle("GET /api/categories", ListHandler{})
}
