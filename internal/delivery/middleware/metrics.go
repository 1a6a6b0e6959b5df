package middleware

import (
	"strconv"
	"time"

	"challengehub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// MetricsMiddleware records request count and latency per method, route and status.
type MetricsMiddleware struct {
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewMetricsMiddleware registers the collectors on reg, reusing ones already registered.
func NewMetricsMiddleware(reg prometheus.Registerer) (*MetricsMiddleware, error) {
	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "challengehub",
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Count of processed HTTP requests",
	}, []string{"method", "route", "status"})

	requestLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "challengehub",
		Subsystem: "api",
		Name:      "http_request_duration_seconds",
		Help:      "Latency distribution of HTTP handlers",
		Buckets:   histogramBuckets,
	}, []string{"method", "route", "status"})

	m := &MetricsMiddleware{requestTotal: requestTotal, requestLatency: requestLatency}

	if err := reg.Register(requestTotal); err != nil {
		existing, err := alreadyRegistered[*prometheus.CounterVec](err)
		if err != nil {
			return nil, err
		}
		m.requestTotal = existing
	}
	if err := reg.Register(requestLatency); err != nil {
		existing, err := alreadyRegistered[*prometheus.HistogramVec](err)
		if err != nil {
			return nil, err
		}
		m.requestLatency = existing
	}

	return m, nil
}

func alreadyRegistered[T prometheus.Collector](err error) (T, error) {
	var zero T

	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return zero, errors.Wrap(err, "register metrics collector")
	}
	existing, ok := are.ExistingCollector.(T)
	if !ok {
		return zero, errors.Wrap(err, "metrics collector registered with another type")
	}

	return existing, nil
}

// Handle observes the request after the error handler has produced the final status.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request().Method,
			"route":  route,
			"status": strconv.Itoa(c.Response().Status),
		}
		m.requestTotal.With(labels).Inc()
		m.requestLatency.With(labels).Observe(time.Since(start).Seconds())

		return nil
	}
}
