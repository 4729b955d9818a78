package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

const feedCacheTTL = 10 * time.Minute

// FeedCache is the short-lived response cache in front of the news feeds.
// Key format: news:<keyword> / trend:<keyword>; values are JSON.
type FeedCache struct {
	client *redis.Client
}

// NewFeedCache creates a FeedCache wrapping the given Redis client.
func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

func (c *FeedCache) GetArticles(ctx context.Context, keyword string) ([]domain.News, bool, error) {
	var articles []domain.News
	ok, err := c.get(ctx, articlesKey(keyword), &articles)
	return articles, ok, err
}

func (c *FeedCache) SetArticles(ctx context.Context, keyword string, articles []domain.News) error {
	return c.set(ctx, articlesKey(keyword), articles)
}

func (c *FeedCache) GetTrend(ctx context.Context, keyword string) ([]domain.KeywordTrend, bool, error) {
	var points []domain.KeywordTrend
	ok, err := c.get(ctx, trendKey(keyword), &points)
	return points, ok, err
}

func (c *FeedCache) SetTrend(ctx context.Context, keyword string, points []domain.KeywordTrend) error {
	return c.set(ctx, trendKey(keyword), points)
}

func (c *FeedCache) get(ctx context.Context, key string, out any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("feed cache get: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("feed cache decode: %w", err)
	}
	return true, nil
}

func (c *FeedCache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("feed cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, feedCacheTTL).Err()
}

func articlesKey(keyword string) string { return "news:" + keyword }
func trendKey(keyword string) string    { return "trend:" + keyword }
