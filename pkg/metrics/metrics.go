// Package metrics provides Prometheus instrumentation for the journal.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TradesSaved counts journaled trades, partitioned by direction.
	TradesSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journal_trades_saved_total",
		Help: "Total number of trades saved to the journal",
	}, []string{"direction"})

	TradesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journal_trades_deleted_total",
		Help: "Total number of trades removed from the journal",
	})

	// CalendarScrapes counts economic calendar fetches by outcome (ok, error, stale).
	CalendarScrapes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journal_calendar_scrapes_total",
		Help: "Economic calendar scrape attempts by outcome",
	}, []string{"outcome"})

	CalendarScrapeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "journal_calendar_scrape_duration_seconds",
		Help:    "Economic calendar scrape duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journal_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "journal_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request metrics labelled by the matched echo route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			HTTPRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
