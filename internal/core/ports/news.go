package ports

import (
	"context"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

// NewsFeed is a thin client for one upstream article source.
type NewsFeed interface {
	// Name identifies the feed in logs, metrics and stored articles.
	Name() string
	Fetch(ctx context.Context, keyword string) ([]domain.News, error)
}

// TrendFeed fetches search-interest time series for a keyword.
type TrendFeed interface {
	FetchTrend(ctx context.Context, keyword string) ([]domain.KeywordTrend, error)
}

// NewsRepository persists aggregated articles.
type NewsRepository interface {
	SaveAll(ctx context.Context, articles []domain.News) error
}

// RegionalNewsRepository reads the curated regional-news collection. The
// collection is populated by an external crawler, never written by this
// service.
type RegionalNewsRepository interface {
	FindAll(ctx context.Context) ([]domain.News, error)
}

// FeedCache is the short-lived response cache in front of the feeds.
type FeedCache interface {
	GetArticles(ctx context.Context, keyword string) ([]domain.News, bool, error)
	SetArticles(ctx context.Context, keyword string, articles []domain.News) error
	GetTrend(ctx context.Context, keyword string) ([]domain.KeywordTrend, bool, error)
	SetTrend(ctx context.Context, keyword string, points []domain.KeywordTrend) error
}

// SearchResult reports whether the articles came from the cache so the
// handler can schedule a background refresh on stale reads.
type SearchResult struct {
	Articles  []domain.News
	FromCache bool
}

type NewsService interface {
	Search(ctx context.Context, keyword string) (*SearchResult, error)
	Trend(ctx context.Context, keyword string) ([]domain.KeywordTrend, error)
	// Regional lists the curated regional-news articles, newest first.
	Regional(ctx context.Context) ([]domain.News, error)
	// Refresh re-fetches a keyword from the upstream feeds, bypassing the
	// cache, and updates cache and store. Used by the background refresher.
	Refresh(ctx context.Context, keyword string) error
}
