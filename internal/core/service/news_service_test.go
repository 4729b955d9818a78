package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

type stubFeed struct {
	name     string
	articles []domain.News
	err      error
	calls    int
}

func (f *stubFeed) Name() string { return f.name }

func (f *stubFeed) Fetch(_ context.Context, _ string) ([]domain.News, error) {
	f.calls++
	return f.articles, f.err
}

type stubTrendFeed struct {
	points []domain.KeywordTrend
	err    error
}

func (f *stubTrendFeed) FetchTrend(_ context.Context, _ string) ([]domain.KeywordTrend, error) {
	return f.points, f.err
}

type stubNewsRepo struct {
	saved []domain.News
}

func (r *stubNewsRepo) SaveAll(_ context.Context, articles []domain.News) error {
	r.saved = append(r.saved, articles...)
	return nil
}

type stubRegionalNewsRepo struct {
	articles []domain.News
	err      error
}

func (r *stubRegionalNewsRepo) FindAll(_ context.Context) ([]domain.News, error) {
	return r.articles, r.err
}

type stubFeedCache struct {
	articles map[string][]domain.News
	trends   map[string][]domain.KeywordTrend
}

func newStubFeedCache() *stubFeedCache {
	return &stubFeedCache{
		articles: make(map[string][]domain.News),
		trends:   make(map[string][]domain.KeywordTrend),
	}
}

func (c *stubFeedCache) GetArticles(_ context.Context, keyword string) ([]domain.News, bool, error) {
	a, ok := c.articles[keyword]
	return a, ok, nil
}

func (c *stubFeedCache) SetArticles(_ context.Context, keyword string, articles []domain.News) error {
	c.articles[keyword] = articles
	return nil
}

func (c *stubFeedCache) GetTrend(_ context.Context, keyword string) ([]domain.KeywordTrend, bool, error) {
	p, ok := c.trends[keyword]
	return p, ok, nil
}

func (c *stubFeedCache) SetTrend(_ context.Context, keyword string, points []domain.KeywordTrend) error {
	c.trends[keyword] = points
	return nil
}

func article(source, url string, published time.Time) domain.News {
	return domain.News{Source: source, Title: url, URL: url, PublishedAt: published}
}

func TestNewsService_Search_MergesAndSorts(t *testing.T) {
	now := time.Now()
	feedA := &stubFeed{name: "a", articles: []domain.News{
		article("a", "https://a/old", now.Add(-2*time.Hour)),
		article("a", "https://a/new", now),
	}}
	feedB := &stubFeed{name: "b", articles: []domain.News{
		article("b", "https://b/mid", now.Add(-time.Hour)),
	}}
	repo := &stubNewsRepo{}
	cache := newStubFeedCache()
	svc := NewNewsService([]ports.NewsFeed{feedA, feedB}, &stubTrendFeed{}, repo, &stubRegionalNewsRepo{}, cache, zerolog.Nop())

	result, err := svc.Search(context.Background(), "jeonse")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result.FromCache {
		t.Fatalf("cold cache should not report a cache hit")
	}
	if len(result.Articles) != 3 {
		t.Fatalf("expected 3 merged articles, got %d", len(result.Articles))
	}
	for i := 1; i < len(result.Articles); i++ {
		if result.Articles[i].PublishedAt.After(result.Articles[i-1].PublishedAt) {
			t.Fatalf("articles not sorted newest first")
		}
	}
	if len(repo.saved) != 3 {
		t.Fatalf("expected articles persisted, got %d", len(repo.saved))
	}
}

func TestNewsService_Search_CacheHit(t *testing.T) {
	feed := &stubFeed{name: "a", articles: []domain.News{article("a", "https://a/1", time.Now())}}
	cache := newStubFeedCache()
	svc := NewNewsService([]ports.NewsFeed{feed}, &stubTrendFeed{}, &stubNewsRepo{}, &stubRegionalNewsRepo{}, cache, zerolog.Nop())

	if _, err := svc.Search(context.Background(), "jeonse"); err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	result, err := svc.Search(context.Background(), "jeonse")
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	if !result.FromCache {
		t.Fatalf("expected cache hit on second search")
	}
	if feed.calls != 1 {
		t.Fatalf("expected one upstream fetch, got %d", feed.calls)
	}
}

func TestNewsService_Search_PartialFailure(t *testing.T) {
	ok := &stubFeed{name: "ok", articles: []domain.News{article("ok", "https://ok/1", time.Now())}}
	broken := &stubFeed{name: "broken", err: errors.New("upstream 500")}
	svc := NewNewsService([]ports.NewsFeed{ok, broken}, &stubTrendFeed{}, &stubNewsRepo{}, &stubRegionalNewsRepo{}, newStubFeedCache(), zerolog.Nop())

	result, err := svc.Search(context.Background(), "jeonse")
	if err != nil {
		t.Fatalf("expected degraded result, got error: %v", err)
	}
	if len(result.Articles) != 1 {
		t.Fatalf("expected 1 article from the healthy feed, got %d", len(result.Articles))
	}
}

func TestNewsService_Search_AllFeedsDown(t *testing.T) {
	a := &stubFeed{name: "a", err: errors.New("down")}
	b := &stubFeed{name: "b", err: errors.New("down")}
	svc := NewNewsService([]ports.NewsFeed{a, b}, &stubTrendFeed{}, &stubNewsRepo{}, &stubRegionalNewsRepo{}, newStubFeedCache(), zerolog.Nop())

	if _, err := svc.Search(context.Background(), "jeonse"); !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Fatalf("expected ErrFeedUnavailable, got %v", err)
	}
}

func TestNewsService_Trend(t *testing.T) {
	points := []domain.KeywordTrend{{Period: "2026-08-01", Ratio: 42.5}}
	cache := newStubFeedCache()
	svc := NewNewsService(nil, &stubTrendFeed{points: points}, &stubNewsRepo{}, &stubRegionalNewsRepo{}, cache, zerolog.Nop())

	got, err := svc.Trend(context.Background(), "jeonse")
	if err != nil {
		t.Fatalf("Trend returned error: %v", err)
	}
	if len(got) != 1 || got[0].Ratio != 42.5 {
		t.Fatalf("unexpected points: %+v", got)
	}
	if _, ok := cache.trends["jeonse"]; !ok {
		t.Fatalf("expected trend cached")
	}
}

func TestNewsService_Trend_Unavailable(t *testing.T) {
	svc := NewNewsService(nil, &stubTrendFeed{err: errors.New("quota")}, &stubNewsRepo{}, &stubRegionalNewsRepo{}, newStubFeedCache(), zerolog.Nop())

	if _, err := svc.Trend(context.Background(), "jeonse"); !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Fatalf("expected ErrFeedUnavailable, got %v", err)
	}
}

func TestNewsService_Regional(t *testing.T) {
	stored := []domain.News{
		article("crawler", "https://local.example.com/2", time.Now()),
		article("crawler", "https://local.example.com/1", time.Now().Add(-time.Hour)),
	}
	regional := &stubRegionalNewsRepo{articles: stored}
	svc := NewNewsService(nil, &stubTrendFeed{}, &stubNewsRepo{}, regional, newStubFeedCache(), zerolog.Nop())

	got, err := svc.Regional(context.Background())
	if err != nil {
		t.Fatalf("Regional returned error: %v", err)
	}
	if len(got) != 2 || got[0].URL != "https://local.example.com/2" {
		t.Fatalf("unexpected articles: %+v", got)
	}
}

func TestNewsService_Regional_RepoError(t *testing.T) {
	regional := &stubRegionalNewsRepo{err: errors.New("cursor closed")}
	svc := NewNewsService(nil, &stubTrendFeed{}, &stubNewsRepo{}, regional, newStubFeedCache(), zerolog.Nop())

	if _, err := svc.Regional(context.Background()); err == nil {
		t.Fatalf("expected error from repository")
	}
}

func TestNewsService_Refresh_UpdatesCache(t *testing.T) {
	feed := &stubFeed{name: "a", articles: []domain.News{article("a", "https://a/1", time.Now())}}
	cache := newStubFeedCache()
	svc := NewNewsService([]ports.NewsFeed{feed}, &stubTrendFeed{}, &stubNewsRepo{}, &stubRegionalNewsRepo{}, cache, zerolog.Nop())

	if err := svc.Refresh(context.Background(), "jeonse"); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if _, ok := cache.articles["jeonse"]; !ok {
		t.Fatalf("expected refreshed articles cached")
	}
	if feed.calls != 1 {
		t.Fatalf("expected upstream fetch, got %d", feed.calls)
	}
}
