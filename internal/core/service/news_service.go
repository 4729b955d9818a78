package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

// NewsService aggregates articles from the configured feeds, fronted by a
// short-lived cache. A feed failure degrades to the remaining sources; only
// when every feed fails is the request itself an error.
type NewsService struct {
	feeds    []ports.NewsFeed
	trends   ports.TrendFeed
	repo     ports.NewsRepository
	regional ports.RegionalNewsRepository
	cache    ports.FeedCache
	logger   zerolog.Logger
}

func NewNewsService(
	feeds []ports.NewsFeed,
	trends ports.TrendFeed,
	repo ports.NewsRepository,
	regional ports.RegionalNewsRepository,
	cache ports.FeedCache,
	logger zerolog.Logger,
) *NewsService {
	return &NewsService{feeds: feeds, trends: trends, repo: repo, regional: regional, cache: cache, logger: logger}
}

// Search returns the merged article list for a keyword, newest first.
// Cache hits are served as-is; the caller decides whether to schedule a
// background refresh.
func (s *NewsService) Search(ctx context.Context, keyword string) (*ports.SearchResult, error) {
	if cached, ok, err := s.cache.GetArticles(ctx, keyword); err == nil && ok {
		return &ports.SearchResult{Articles: cached, FromCache: true}, nil
	} else if err != nil {
		s.logger.Warn().Err(err).Str("keyword", keyword).Msg("feed cache read failed")
	}

	articles, err := s.fetchAll(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return &ports.SearchResult{Articles: articles}, nil
}

// Trend returns the search-interest series for a keyword.
func (s *NewsService) Trend(ctx context.Context, keyword string) ([]domain.KeywordTrend, error) {
	if cached, ok, err := s.cache.GetTrend(ctx, keyword); err == nil && ok {
		return cached, nil
	} else if err != nil {
		s.logger.Warn().Err(err).Str("keyword", keyword).Msg("trend cache read failed")
	}

	points, err := s.trends.FetchTrend(ctx, keyword)
	if err != nil {
		s.logger.Error().Err(err).Str("keyword", keyword).Msg("trend fetch failed")
		return nil, domain.ErrFeedUnavailable
	}

	if err := s.cache.SetTrend(ctx, keyword, points); err != nil {
		s.logger.Warn().Err(err).Str("keyword", keyword).Msg("trend cache write failed")
	}
	return points, nil
}

// Regional lists the curated regional-news articles, newest first. The
// collection is maintained by an external crawler; this is a plain
// read-through.
func (s *NewsService) Regional(ctx context.Context) ([]domain.News, error) {
	return s.regional.FindAll(ctx)
}

// Refresh re-fetches a keyword from the upstream feeds, bypassing the cache.
func (s *NewsService) Refresh(ctx context.Context, keyword string) error {
	_, err := s.fetchAll(ctx, keyword)
	return err
}

func (s *NewsService) fetchAll(ctx context.Context, keyword string) ([]domain.News, error) {
	var merged []domain.News
	failures := 0

	for _, feed := range s.feeds {
		articles, err := feed.Fetch(ctx, keyword)
		if err != nil {
			failures++
			s.logger.Error().Err(err).Str("feed", feed.Name()).Str("keyword", keyword).Msg("feed fetch failed")
			continue
		}
		merged = append(merged, articles...)
	}

	if len(s.feeds) > 0 && failures == len(s.feeds) {
		return nil, domain.ErrFeedUnavailable
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	if len(merged) > 0 {
		if err := s.repo.SaveAll(ctx, merged); err != nil {
			s.logger.Warn().Err(err).Str("keyword", keyword).Msg("failed to persist articles")
		}
	}
	if err := s.cache.SetArticles(ctx, keyword, merged); err != nil {
		s.logger.Warn().Err(err).Str("keyword", keyword).Msg("feed cache write failed")
	}

	return merged, nil
}
