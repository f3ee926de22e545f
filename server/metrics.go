package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	ap "github.com/cordialsys/address-parser"
	xcerrors "github.com/cordialsys/address-parser/errors"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const namespace = "address_parser"

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	validationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "parser",
			Name:      "validations_total",
			Help:      "Total number of address validations by token and outcome",
		},
		[]string{"token", "outcome"},
	)
)

// Outcome label values
const (
	OutcomeValid        = "valid"
	OutcomeInvalid      = "invalid"
	OutcomeUnknownToken = "unknown_token"
)

// RegisterMetrics registers the server's collectors with the default registry
func RegisterMetrics() {
	registerIfNotExists(collectors.NewGoCollector(), "go_collector")
	registerIfNotExists(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), "process_collector")
	registerIfNotExists(httpRequestsTotal, "http_requests_total")
	registerIfNotExists(httpRequestDuration, "http_request_duration")
	registerIfNotExists(validationsTotal, "validations_total")
}

func registerIfNotExists(collector prometheus.Collector, name string) {
	if err := prometheus.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegErr) {
			logrus.Debugf("%s already registered", name)
		} else {
			logrus.Errorf("failed to register %s: %v", name, err)
		}
	}
}

// HTTPMiddleware returns Echo middleware for HTTP metrics collection
func HTTPMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo write the error so the recorded status is final
				c.Error(err)
			}

			method := c.Request().Method
			path := c.Path()
			if path == "" || path == "/*" {
				// unmatched routes collapse into one label
				path = "unknown"
			}
			status := strconv.Itoa(c.Response().Status)

			httpRequestsTotal.WithLabelValues(method, path, status).Inc()
			httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// recordValidation counts an outcome. Tokens outside the known list share one
// label, since the token is caller supplied.
func recordValidation(token string, err error) {
	label := "other"
	for _, known := range ap.TokenList {
		if string(known) == token {
			label = token
			break
		}
	}
	outcome := OutcomeValid
	if err != nil {
		outcome = OutcomeInvalid
		if xcerrors.StatusOf(err) == xcerrors.UnknownToken {
			outcome = OutcomeUnknownToken
		}
	}
	validationsTotal.WithLabelValues(label, outcome).Inc()
}

type MetricsServer struct {
	listen string
	echo   *echo.Echo
}

// NewMetricsServer serves the default prometheus registry at /metrics
func NewMetricsServer(listen string) *MetricsServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return &MetricsServer{listen: listen, echo: e}
}

func (m *MetricsServer) Handler() http.Handler {
	return m.echo
}

func (m *MetricsServer) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.echo.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to stop metrics server")
		}
	}()
	logrus.WithField("listen", m.listen).Info("metrics server listening")
	err := m.echo.Start(m.listen)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	return nil
}
