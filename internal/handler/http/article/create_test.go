package article_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"newsdesk/internal/handler/http/article"
	artUC "newsdesk/internal/usecase/article"
)

type createBody struct {
	Success bool        `json:"success"`
	Data    article.DTO `json:"data"`
	Message string      `json:"message"`
}

var createdAt = time.Date(2025, 7, 19, 9, 0, 0, 0, time.UTC)

func newCreateHandler(stub *stubArticleRepo) article.CreateHandler {
	return article.CreateHandler{
		Svc: &artUC.Service{Repo: stub, Now: func() time.Time { return createdAt }},
	}
}

func doCreate(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, createBody) {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/news", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rr, req)

	var out createBody
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, out
}

func TestCreateHandler_Success(t *testing.T) {
	stub := &stubArticleRepo{}

	rr, body := doCreate(t, newCreateHandler(stub), `{
		"title": "Tech News",
		"description": "short",
		"content": "long",
		"imageUrl": "https://img.example.com/a.png",
		"category": "Technology"
	}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rr.Code)
	}
	if !body.Success {
		t.Error("success must be true")
	}
	want := article.DTO{
		ID: 42, Title: "Tech News", Description: "short", Content: "long",
		ImageURL: "https://img.example.com/a.png", Category: "Technology",
		PublishedAt: createdAt, CreatedAt: createdAt, UpdatedAt: createdAt,
	}
	if diff := cmp.Diff(want, body.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateHandler_IgnoresSourceAndPublishedAt(t *testing.T) {
	stub := &stubArticleRepo{}

	rr, _ := doCreate(t, newCreateHandler(stub),
		`{"title":"x","category":"World","source":"spoofed","publishedAt":"2001-01-01T00:00:00Z"}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rr.Code)
	}
	if stub.lastArticle.Source != "" {
		t.Errorf("source = %q, want empty", stub.lastArticle.Source)
	}
	if !stub.lastArticle.PublishedAt.Equal(createdAt) {
		t.Errorf("publishedAt = %v, want %v", stub.lastArticle.PublishedAt, createdAt)
	}
}

func TestCreateHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing title", `{"category":"Health"}`, "Please add a title"},
		{"missing category", `{"title":"x"}`, "Please add a category"},
		{"unknown category", `{"title":"x","category":"Weather"}`, "`Weather` is not a valid category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubArticleRepo{}
			rr, body := doCreate(t, newCreateHandler(stub), tt.body)

			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rr.Code)
			}
			if body.Success || body.Message != tt.wantMsg {
				t.Errorf("body = %+v, want message %q", body, tt.wantMsg)
			}
			if stub.lastArticle != nil {
				t.Error("nothing must be persisted")
			}
		})
	}
}

func TestCreateHandler_MalformedJSON(t *testing.T) {
	for _, body := range []string{`{"title":`, ``, `[]`, `{"title": 5}`} {
		stub := &stubArticleRepo{}
		rr, out := doCreate(t, newCreateHandler(stub), body)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rr.Code)
		}
		if out.Message != "invalid JSON body" {
			t.Errorf("body %q: message = %q", body, out.Message)
		}
	}
}

func TestCreateHandler_BodyTooLarge(t *testing.T) {
	stub := &stubArticleRepo{}
	h := newCreateHandler(stub)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/news",
		strings.NewReader(`{"title":"`+strings.Repeat("a", 64)+`"}`))
	req.Body = http.MaxBytesReader(rr, req.Body, 16)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rr.Code)
	}
}

func TestCreateHandler_StorageError(t *testing.T) {
	stub := &stubArticleRepo{createErr: errors.New("insert failed")}

	rr, body := doCreate(t, newCreateHandler(stub), `{"title":"x","category":"Science"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if body.Success || body.Message != "create article: insert failed" {
		t.Errorf("body = %+v", body)
	}
}
