package metrics

import (
	"errors"
	"strconv"
	"time"

	"financier/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "financier"

var (
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	GatewayCallTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Total number of payment processor calls by outcome",
		},
		[]string{"call", "outcome"},
	)
	GatewayCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "Payment processor call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"call"},
	)
)

// RoutePath labels a request by its route template so ids don't explode cardinality.
func RoutePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "unmatched"
}

func Middleware(c *gin.Context) {
	if c.Request.URL.Path == "/metrics" {
		c.Next()
		return
	}
	start := time.Now()
	c.Next()
	duration := time.Since(start).Seconds()
	path := RoutePath(c)
	status := strconv.Itoa(c.Writer.Status())
	RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	RequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// ObserveGatewayCall records one processor call. It matches payments.CallObserver.
func ObserveGatewayCall(call string, elapsed time.Duration, err error) {
	GatewayCallTotal.WithLabelValues(call, Outcome(err)).Inc()
	GatewayCallDuration.WithLabelValues(call).Observe(elapsed.Seconds())
}

// Outcome buckets an error by its gateway kind.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return "not_found"
	case errors.Is(err, interfaces.ErrContractViolation):
		return "contract_violation"
	case errors.Is(err, interfaces.ErrResolution):
		return "resolution"
	default:
		return "error"
	}
}
