// Package metrics exposes Prometheus instrumentation for the storefront:
// standard HTTP metrics plus a couple of shop-level counters.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "boutique",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "boutique",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "boutique",
		Subsystem: "shop",
		Name:      "orders_created_total",
		Help:      "Total orders placed at checkout.",
	})

	CartAdds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "boutique",
		Subsystem: "shop",
		Name:      "cart_adds_total",
		Help:      "Total add-to-cart operations, merges included.",
	})
)

// DefaultRegistry holds every collector exposed on /metrics.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	DefaultRegistry.MustRegister(RequestDuration, RequestTotal, OrdersCreated, CartAdds)
}

// Middleware records duration and count for every request, labelled by the
// registered route path to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			dur := time.Since(start).Seconds()
			code := strconv.Itoa(status)
			RequestDuration.WithLabelValues(c.Request().Method, c.Path(), code).Observe(dur)
			RequestTotal.WithLabelValues(c.Request().Method, c.Path(), code).Inc()
			return err
		}
	}
}

// Handler serves the metrics page.
func Handler() echo.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{})
	return echo.WrapHandler(h)
}
