package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "serviciohogar",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "serviciohogar",
		Subsystem: "http",
		Name:      "request_latency_seconds",
		Help:      "Latency of HTTP request handling",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	bookingsConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "serviciohogar",
		Subsystem: "booking",
		Name:      "confirmed_total",
		Help:      "Total booking wizard sessions confirmed",
	})
)

// CountBookingConfirmed records one confirmed booking.
func CountBookingConfirmed() {
	bookingsConfirmedTotal.Inc()
}

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
