package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/custodia-labs/topica/internal/charts/echarts"
	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/logger"
)

// Server limits.
const (
	DefaultBodyLimit = "32M"
	readTimeout      = 30 * time.Second
	writeTimeout     = 5 * time.Minute
	shutdownTimeout  = 5 * time.Second
)

// Server is the HTTP upload server.
type Server struct {
	ports *Ports
	echo  *echo.Echo

	bodyLimit string
}

// Option configures the server.
type Option func(*Server)

// WithBodyLimit sets the maximum request size, e.g. "8M".
func WithBodyLimit(limit string) Option {
	return func(s *Server) {
		if limit != "" {
			s.bodyLimit = limit
		}
	}
}

// NewServer creates the server and registers its routes.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports:     ports,
		echo:      echo.New(),
		bodyLimit: DefaultBodyLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(s.bodyLimit))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("http: %s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	e.GET("/", s.handleIndex)
	e.GET("/healthz", s.handleHealth)
	e.POST("/api/topics", s.handleAPITopics)
	e.POST("/topics", s.handlePageTopics)

	return s, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.echo.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("http: listening on %s", addr)
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// settings returns the stored settings, or the defaults.
func (s *Server) settings() domain.Settings {
	if s.ports.Settings == nil {
		return domain.DefaultSettings()
	}
	st, err := s.ports.Settings.Get()
	if err != nil || st == nil {
		return domain.DefaultSettings()
	}
	return *st
}

// chart returns an HTML chart renderer sized from settings.
func (s *Server) chart(st domain.Settings) *echarts.Renderer {
	return echarts.New(echarts.WithSize(st.Server.ChartWidth, st.Server.ChartHeight))
}
