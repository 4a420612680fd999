package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels shared by the outcome counters.
const (
	ResultCreated  = "created"
	ResultInvalid  = "invalid"
	ResultConflict = "conflict"
	ResultError    = "error"
	ResultSuccess  = "success"
	ResultDenied   = "denied"
)

var (
	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applicant_registrations_total",
			Help: "Applicant registration attempts by result",
		},
		[]string{"result"},
	)

	adminLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_logins_total",
			Help: "Admin login attempts by result",
		},
		[]string{"result"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	storeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Applicant store operation latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"op"},
	)
)

// IncRegistration counts a registration attempt.
func IncRegistration(result string) {
	registrationsTotal.WithLabelValues(result).Inc()
}

// IncAdminLogin counts an admin login attempt.
func IncAdminLogin(result string) {
	adminLoginsTotal.WithLabelValues(result).Inc()
}

// ObserveStoreOp records the duration of a store operation.
func ObserveStoreOp(op string, started time.Time) {
	storeOperationDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

// Middleware records request latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
