// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bank"

var (
	// HTTPRequestsTotal tracks handled HTTP requests.
	// Labels:
	//   - method: GET, POST, ...
	//   - route: chi route pattern, or "unmatched"
	//   - status: response status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency.
	// Labels:
	//   - method: GET, POST, ...
	//   - route: chi route pattern, or "unmatched"
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// StatusReportsTotal tracks status reports handed out.
	// Labels:
	//   - name: reported state, e.g. Open
	//   - color: severity color, e.g. Success
	StatusReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_reports_total",
			Help:      "Total number of status reports served",
		},
		[]string{"name", "color"},
	)
)

// RouteUnmatched labels requests that matched no registered route.
const RouteUnmatched = "unmatched"
