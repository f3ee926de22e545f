package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// Code in the response body for a valid address
	CodeOK = 200
	// Code in the response body for any rejected query
	CodeInvalid = 601

	// Bounds the request line, and with it the address, before any decoding happens
	MaxHeaderBytes = 8 << 10
)

type Config struct {
	Listen         string        `envconfig:"LISTEN" default:"127.0.0.1:3000"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"10s"`
	MetricsListen  string        `envconfig:"METRICS_LISTEN"`
	ShutdownPeriod time.Duration `envconfig:"SHUTDOWN_PERIOD" default:"5s"`
}

// Validator is the dispatcher the server answers queries with
type Validator interface {
	ValidateAddress(token string, address string) (bool, error)
}

type ParseResponse struct {
	Code  int    `json:"code"`
	Data  bool   `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type Server struct {
	cfg       Config
	validator Validator
	echo      *echo.Echo
}

func NewServer(cfg Config, validator Validator) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.ShutdownPeriod <= 0 {
		cfg.ShutdownPeriod = 5 * time.Second
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.MaxHeaderBytes = MaxHeaderBytes
	e.Server.ReadHeaderTimeout = cfg.Timeout

	s := &Server{
		cfg:       cfg,
		validator: validator,
		echo:      e,
	}

	e.Use(middleware.Recover())
	e.Use(HTTPMiddleware())
	e.Use(middleware.CORS())
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: cfg.Timeout,
		ErrorHandler: func(err error, c echo.Context) error {
			if errors.Is(err, context.DeadlineExceeded) {
				return echo.NewHTTPError(http.StatusRequestTimeout)
			}
			return err
		},
	}))

	e.GET("/parse", s.parse)
	e.RouteNotFound("/*", notFound)
	return s
}

// Handler exposes the router, e.g. for httptest
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) parse(c echo.Context) error {
	params := c.QueryParams()
	for _, field := range []string{"token", "address"} {
		if _, ok := params[field]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing field `%s`", field))
		}
	}
	token := params.Get("token")
	address := params.Get("address")
	logrus.WithFields(logrus.Fields{
		"token":   token,
		"address": address,
	}).Trace("new parse request")

	ctx := c.Request().Context()
	result := make(chan ParseResponse, 1)
	go func() {
		result <- s.validate(token, address)
	}()

	select {
	case res := <-result:
		return c.JSON(http.StatusOK, res)
	case <-ctx.Done():
		// the late result is dropped into the buffered channel
		return ctx.Err()
	}
}

func (s *Server) validate(token string, address string) ParseResponse {
	ok, err := s.validator.ValidateAddress(token, address)
	recordValidation(token, err)
	if err != nil {
		return ParseResponse{Code: CodeInvalid, Error: err.Error()}
	}
	return ParseResponse{Code: CodeOK, Data: ok}
}

func notFound(c echo.Context) error {
	return c.String(http.StatusNotFound, "Not Found")
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithField("listen", s.cfg.Listen).Info("server listening")
		err := s.echo.Start(s.cfg.Listen)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownPeriod)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
