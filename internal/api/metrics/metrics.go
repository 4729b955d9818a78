// Package metrics defines and registers all custom Prometheus metrics for
// the community API. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto constructors register everything with the default registry at
// package load; the /metrics endpoint exposes it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "community"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts access tokens rejected by the request
// authenticator.
// Label:
//   - reason: "expired", "malformed", or "wrong_category"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of access tokens rejected at the request filter.",
	},
	[]string{"reason"},
)

// LogoutsTotal counts logout attempts.
// Label:
//   - result: "success", "expired", "wrong_category", "not_found", or "invalid"
var LogoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout attempts, by result.",
	},
	[]string{"result"},
)

// ── News feed metrics ─────────────────────────────────────────────────────────

// NewsFeedRequestsTotal counts outbound feed calls.
// Labels:
//   - source: "gnews", "naver", or "datalab"
//   - result: "ok" or "error"
var NewsFeedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "news_feed_requests_total",
		Help:      "Total number of outbound news feed requests, by source and result.",
	},
	[]string{"source", "result"},
)

// NewsFeedDuration measures how long a successful feed call takes.
// Label:
//   - source: the upstream feed
var NewsFeedDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "news_feed_duration_seconds",
		Help:      "Duration of successful outbound news feed requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"source"},
)

// ── Board metrics ─────────────────────────────────────────────────────────────

// QuestionsCreatedTotal counts newly created board posts.
var QuestionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "questions_created_total",
		Help:      "Total number of board questions created.",
	},
)
