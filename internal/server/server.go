// Package server exposes the skill over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sukalov/lyricecho/internal/alexa"
	"github.com/sukalov/lyricecho/internal/logger"
	"github.com/sukalov/lyricecho/internal/skill"
)

// TurnHandler answers one conversation turn.
type TurnHandler interface {
	Handle(ctx context.Context, env *alexa.RequestEnvelope) skill.Response
}

type Server struct {
	echo    *echo.Echo
	handler TurnHandler
}

// New builds the routes. gatherer backs GET /metrics; nil disables the route.
func New(handler TurnHandler, gatherer prometheus.Gatherer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = errorHandler

	s := &Server{echo: e, handler: handler}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.POST("/skill", s.handleSkill)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	return s
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	logger.Info("http server listening", "addr", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve on %s: %w", addr, err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleSkill(c echo.Context) error {
	var env alexa.RequestEnvelope
	if err := c.Bind(&env); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := env.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if env.Request.RequestID == "" {
		env.Request.RequestID = uuid.NewString()
	}

	logger.Debug("turn received",
		"request_id", env.Request.RequestID,
		"session_id", env.Session.SessionID,
		"type", env.Request.Type,
		"intent", env.Request.Intent.Name,
	)

	resp := s.handler.Handle(c.Request().Context(), &env)
	return c.JSON(http.StatusOK, resp.Envelope())
}

func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Message != nil {
			msg = fmt.Sprint(he.Message)
		}
	}
	req := c.Request()
	if code >= http.StatusInternalServerError {
		logger.Error("http request failed", "status", code, "method", req.Method, "path", req.URL.Path, "error", err)
	} else {
		logger.Debug("http request rejected", "status", code, "method", req.Method, "path", req.URL.Path, "error", err)
	}
	if !c.Response().Committed {
		_ = c.JSON(code, map[string]string{"error": msg})
	}
}
