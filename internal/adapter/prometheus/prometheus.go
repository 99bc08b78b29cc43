package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusAdapter struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewPrometheusAdapter() *PrometheusAdapter {
	return &PrometheusAdapter{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = "unknown"
	}
	status := strconv.Itoa(c.Writer.Status())

	p.requestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	p.requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}
