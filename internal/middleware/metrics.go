package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by path, method and status",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_milliseconds",
			Help:    "HTTP request latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"path", "method"},
	)
)

// Metrics records request counters and latency histograms. Failure envelopes
// ride HTTP 200, so the status label alone does not distinguish them; the
// handlers package keeps its own envelope failure counter.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			method := c.Request().Method
			httpRequestsTotal.WithLabelValues(path, method,
				strconv.Itoa(c.Response().Status)).Inc()
			httpRequestDuration.WithLabelValues(path, method).
				Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}
