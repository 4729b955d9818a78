package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

type stubNewsService struct {
	searchResult *ports.SearchResult
	searchErr    error
	regional     []domain.News
	regionalErr  error
}

func (s *stubNewsService) Search(context.Context, string) (*ports.SearchResult, error) {
	return s.searchResult, s.searchErr
}

func (s *stubNewsService) Trend(context.Context, string) ([]domain.KeywordTrend, error) {
	return nil, nil
}

func (s *stubNewsService) Regional(context.Context) ([]domain.News, error) {
	return s.regional, s.regionalErr
}

func (s *stubNewsService) Refresh(context.Context, string) error {
	return nil
}

type recordingRefresher struct {
	keywords []string
}

func (r *recordingRefresher) Enqueue(keyword string) {
	r.keywords = append(r.keywords, keyword)
}

func newNewsTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNewsHandler_Regional(t *testing.T) {
	svc := &stubNewsService{regional: []domain.News{
		{Title: "local headline", URL: "https://local.example.com/1", Source: "crawler", PublishedAt: time.Now()},
	}}
	h := NewNewsHandler(svc, &recordingRefresher{})

	c, rec := newNewsTestContext(t, "/api/chungbuk_news")
	if err := h.Regional(c); err != nil {
		t.Fatalf("Regional returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var articles []domain.News
	if err := json.Unmarshal(rec.Body.Bytes(), &articles); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "local headline" {
		t.Fatalf("unexpected articles: %+v", articles)
	}
}

func TestNewsHandler_Search_EnqueuesRefreshOnCacheHit(t *testing.T) {
	svc := &stubNewsService{searchResult: &ports.SearchResult{
		Articles:  []domain.News{{Title: "cached", URL: "https://example.com/1"}},
		FromCache: true,
	}}
	refresher := &recordingRefresher{}
	h := NewNewsHandler(svc, refresher)

	c, rec := newNewsTestContext(t, "/api/news?keyword=jeonse")
	if err := h.Search(c); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(refresher.keywords) != 1 || refresher.keywords[0] != "jeonse" {
		t.Fatalf("expected background refresh for the keyword, got %v", refresher.keywords)
	}
}

func TestNewsHandler_Search_MissingKeyword(t *testing.T) {
	h := NewNewsHandler(&stubNewsService{}, &recordingRefresher{})

	c, _ := newNewsTestContext(t, "/api/news")
	err := h.Search(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.Code)
	}
}
