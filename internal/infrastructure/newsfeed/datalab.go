package newsfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jeonseguard/community-api/internal/api/metrics"
	"github.com/jeonseguard/community-api/internal/core/domain"
)

const (
	datalabBaseURL    = "https://openapi.naver.com/v1/datalab/search"
	datalabWindowDays = 30
	datalabSource     = "datalab"
)

// DatalabClient queries the Naver Datalab search-trend API for the relative
// search interest of a keyword over the last datalabWindowDays days.
type DatalabClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	client       *http.Client
}

func NewDatalabClient(clientID, clientSecret string) *DatalabClient {
	return &DatalabClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      datalabBaseURL,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

type datalabRequest struct {
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate"`
	TimeUnit      string              `json:"timeUnit"`
	KeywordGroups []datalabKeywordSet `json:"keywordGroups"`
}

type datalabKeywordSet struct {
	GroupName string   `json:"groupName"`
	Keywords  []string `json:"keywords"`
}

type datalabResponse struct {
	Results []struct {
		Data []struct {
			Period string  `json:"period"`
			Ratio  float64 `json:"ratio"`
		} `json:"data"`
	} `json:"results"`
}

func (c *DatalabClient) FetchTrend(ctx context.Context, keyword string) ([]domain.KeywordTrend, error) {
	start := time.Now()
	now := time.Now().UTC()

	payload := datalabRequest{
		StartDate: now.AddDate(0, 0, -datalabWindowDays).Format("2006-01-02"),
		EndDate:   now.Format("2006-01-02"),
		TimeUnit:  "date",
		KeywordGroups: []datalabKeywordSet{
			{GroupName: keyword, Keywords: []string{keyword}},
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("datalab encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("datalab request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.NewsFeedRequestsTotal.WithLabelValues(datalabSource, "error").Inc()
		return nil, fmt.Errorf("datalab fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.NewsFeedRequestsTotal.WithLabelValues(datalabSource, "error").Inc()
		return nil, fmt.Errorf("datalab fetch: unexpected status %d", resp.StatusCode)
	}

	var body datalabResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.NewsFeedRequestsTotal.WithLabelValues(datalabSource, "error").Inc()
		return nil, fmt.Errorf("datalab decode: %w", err)
	}

	var points []domain.KeywordTrend
	if len(body.Results) > 0 {
		points = make([]domain.KeywordTrend, 0, len(body.Results[0].Data))
		for _, d := range body.Results[0].Data {
			points = append(points, domain.KeywordTrend{Period: d.Period, Ratio: d.Ratio})
		}
	}

	metrics.NewsFeedRequestsTotal.WithLabelValues(datalabSource, "ok").Inc()
	metrics.NewsFeedDuration.WithLabelValues(datalabSource).Observe(time.Since(start).Seconds())
	return points, nil
}
