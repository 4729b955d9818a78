// Package newsfeed holds the thin HTTP clients for the external article and
// trend providers. Each client maps one upstream response shape onto the
// domain model and nothing else; retries and caching live elsewhere.
package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jeonseguard/community-api/internal/api/metrics"
	"github.com/jeonseguard/community-api/internal/core/domain"
)

const (
	gnewsBaseURL     = "https://gnews.io/api/v4/search"
	gnewsMaxArticles = 5
)

type GNewsClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGNewsClient(apiKey string) *GNewsClient {
	return &GNewsClient{
		apiKey:  apiKey,
		baseURL: gnewsBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *GNewsClient) Name() string { return "gnews" }

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (c *GNewsClient) Fetch(ctx context.Context, keyword string) ([]domain.News, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("q", keyword)
	q.Set("token", c.apiKey)
	q.Set("lang", "ko")
	q.Set("max", fmt.Sprint(gnewsMaxArticles))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("gnews request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.NewsFeedRequestsTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("gnews fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.NewsFeedRequestsTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("gnews fetch: unexpected status %d", resp.StatusCode)
	}

	var body gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.NewsFeedRequestsTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("gnews decode: %w", err)
	}

	articles := make([]domain.News, 0, len(body.Articles))
	for _, a := range body.Articles {
		articles = append(articles, domain.News{
			Keyword:     keyword,
			Title:       a.Title,
			URL:         a.URL,
			Source:      c.Name(),
			PublishedAt: parseFeedTime(a.PublishedAt),
		})
	}

	metrics.NewsFeedRequestsTotal.WithLabelValues(c.Name(), "ok").Inc()
	metrics.NewsFeedDuration.WithLabelValues(c.Name()).Observe(time.Since(start).Seconds())
	return articles, nil
}

// parseFeedTime tolerates the timestamp variants the providers emit; an
// unparseable value decays to the zero time rather than failing the fetch.
func parseFeedTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
