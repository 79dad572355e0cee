package category_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"newsdesk/internal/handler/http/category"
)

func TestListHandler(t *testing.T) {
	mux := http.NewServeMux()
	category.Register(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":[
		{"name":"Technology","icon":"computer"},
		{"name":"Health","icon":"health_and_safety"},
		{"name":"Sports","icon":"sports_soccer"},
		{"name":"Business","icon":"business"},
		{"name":"Entertainment","icon":"movie"},
		{"name":"Science","icon":"science"},
		{"name":"World","icon":"public"},
		{"name":"Politics","icon":"gavel"},
		{"name":"Travel","icon":"flight"},
		{"name":"Lifestyle","icon":"style"}
	]}`, rr.Body.String())
}

func TestListHandler_MethodNotAllowed(t *testing.T) {
	mux := http.NewServeMux()
	category.Register(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/categories", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
