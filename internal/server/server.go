package server

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zaraumer/SentimentVSROI/internal/config"
	"github.com/zaraumer/SentimentVSROI/internal/domain"
	apperrors "github.com/zaraumer/SentimentVSROI/internal/platform/errors"
	"github.com/zaraumer/SentimentVSROI/internal/platform/requestid"
)

// analysisService is the part of the pipeline the HTTP layer needs.
type analysisService interface {
	Analyze(ctx context.Context, ticker string) (*domain.AnalysisReport, error)
}

type Server struct {
	echo          *echo.Echo
	config        *config.Config
	analysis      analysisService
	indexTemplate *template.Template
	startTime     time.Time
}

func NewServer(cfg *config.Config, analysis analysisService, clock clockwork.Clock) (*Server, error) {
	// Parse templates once at startup
	indexTmpl, err := template.ParseFiles("web/templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(requestIDMiddleware())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:          e,
		config:        cfg,
		analysis:      analysis,
		indexTemplate: indexTmpl,
		startTime:     clock.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requestIDMiddleware assigns every request an ID, stores it in the request
// context for log correlation, and echoes it back in a response header.
func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestid.HeaderName)
			if id == "" {
				id = requestid.New()
			}

			ctx := requestid.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestid.HeaderName, id)

			return next(c)
		}
	}
}
