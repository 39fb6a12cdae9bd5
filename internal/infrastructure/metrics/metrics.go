// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	TrackingFound    = "found"
	TrackingNotFound = "not_found"
	TrackingInvalid  = "invalid"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rjlima_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rjlima_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	trackingLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rjlima_tracking_lookups_total",
		Help: "Public tracking lookups by result.",
	}, []string{"result"})

	proofUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rjlima_proof_uploads_total",
		Help: "Proof photo uploads by result.",
	}, []string{"result"})
)

// Middleware records count and latency of every request, labeled by the
// matched route template so ids do not explode the label set.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func ObserveTrackingLookup(result string) {
	trackingLookups.WithLabelValues(result).Inc()
}

func ObserveProofUpload(ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	proofUploads.WithLabelValues(result).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
