package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/jeonseguard/community-api/internal/api/metrics"
	"github.com/jeonseguard/community-api/internal/core/domain"
)

const (
	naverNewsBaseURL = "https://openapi.naver.com/v1/search/news.json"
	naverMaxArticles = 5
)

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// NaverNewsClient queries the Naver news search API. Credentials travel in
// the X-Naver-Client-Id/-Secret headers.
type NaverNewsClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	client       *http.Client
}

func NewNaverNewsClient(clientID, clientSecret string) *NaverNewsClient {
	return &NaverNewsClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      naverNewsBaseURL,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *NaverNewsClient) Name() string { return "naver" }

type naverNewsResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		PubDate string `json:"pubDate"`
	} `json:"items"`
}

func (c *NaverNewsClient) Fetch(ctx context.Context, keyword string) ([]domain.News, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("display", fmt.Sprint(naverMaxArticles))
	q.Set("sort", "date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("naver request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.NewsFeedRequestsTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("naver fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.NewsFeedRequestsTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("naver fetch: unexpected status %d", resp.StatusCode)
	}

	var body naverNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.NewsFeedRequestsTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("naver decode: %w", err)
	}

	articles := make([]domain.News, 0, len(body.Items))
	for _, item := range body.Items {
		articles = append(articles, domain.News{
			Keyword:     keyword,
			Title:       cleanTitle(item.Title),
			URL:         item.Link,
			Source:      c.Name(),
			PublishedAt: parseNaverTime(item.PubDate),
		})
	}

	metrics.NewsFeedRequestsTotal.WithLabelValues(c.Name(), "ok").Inc()
	metrics.NewsFeedDuration.WithLabelValues(c.Name()).Observe(time.Since(start).Seconds())
	return articles, nil
}

// cleanTitle strips the <b> highlight markup and HTML entities Naver embeds
// in result titles.
func cleanTitle(s string) string {
	return html.UnescapeString(htmlTagPattern.ReplaceAllString(s, ""))
}

func parseNaverTime(s string) time.Time {
	t, err := time.Parse(time.RFC1123Z, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
