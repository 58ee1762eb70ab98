package server

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zaraumer/SentimentVSROI/internal/config"
	"github.com/zaraumer/SentimentVSROI/internal/domain"
	apperrors "github.com/zaraumer/SentimentVSROI/internal/platform/errors"
)

// --- Mocks ---

type mockAnalysisService struct {
	analyzeFn  func(ctx context.Context, ticker string) (*domain.AnalysisReport, error)
	lastTicker string
}

func (m *mockAnalysisService) Analyze(ctx context.Context, ticker string) (*domain.AnalysisReport, error) {
	m.lastTicker = ticker
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, ticker)
	}
	return &domain.AnalysisReport{Ticker: ticker}, nil
}

// --- Test helpers ---

func newTestServer(t *testing.T, analysis analysisService) *Server {
	t.Helper()

	indexTmpl := template.Must(template.New("index.html").Parse(`Sentiment vs ROI`))

	e := echo.New()
	// Install error middleware for tests to match production behavior
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:          e,
		config:        &config.Config{Port: "8080"},
		analysis:      analysis,
		indexTemplate: indexTmpl,
		startTime:     time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func postAnalyze(srv *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(handler)(c)
}
