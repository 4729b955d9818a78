package domain

import (
	"errors"
	"time"
)

var ErrFeedUnavailable = errors.New("news feed unavailable")

// News is one aggregated article. Source names the upstream feed it came
// from ("gnews", "naver").
type News struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Keyword     string    `json:"keyword" bson:"keyword"`
	Title       string    `json:"title" bson:"title"`
	URL         string    `json:"url" bson:"url"`
	Source      string    `json:"source" bson:"source"`
	PublishedAt time.Time `json:"published_at" bson:"published_at"`
}

// KeywordTrend is one data point of a search-interest time series for a
// keyword. Ratio is relative to the peak of the requested window.
type KeywordTrend struct {
	Period string  `json:"period"`
	Ratio  float64 `json:"ratio"`
}
