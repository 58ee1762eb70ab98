package server

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zaraumer/SentimentVSROI/internal/domain"
	"github.com/zaraumer/SentimentVSROI/internal/metrics"
	apperrors "github.com/zaraumer/SentimentVSROI/internal/platform/errors"
)

type analyzeRequest struct {
	Ticker string `json:"ticker"`
}

type chartData struct {
	Dates       []string  `json:"dates"`
	Sentiment   []float64 `json:"sentiment"`
	PriceChange []float64 `json:"price_change"`
}

type analyzeResponse struct {
	Ticker          string    `json:"ticker"`
	Correlation     float64   `json:"correlation"`
	CorrelationText string    `json:"correlation_text"`
	PostsAnalyzed   int       `json:"posts_analyzed"`
	DataPoints      int       `json:"data_points"`
	ChartData       chartData `json:"chart_data"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("please enter a stock ticker")
	}

	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return apperrors.ValidationError("please enter a stock ticker")
	}

	started := time.Now()
	report, err := s.analysis.Analyze(c.Request().Context(), ticker)
	metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return toAPIError(err, ticker)
	}
	metrics.AnalysesTotal.WithLabelValues("ok").Inc()

	if err := c.JSON(200, toResponse(report)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func toResponse(report *domain.AnalysisReport) analyzeResponse {
	merged := report.Correlation.Merged
	chart := chartData{
		Dates:       make([]string, len(merged)),
		Sentiment:   make([]float64, len(merged)),
		PriceChange: make([]float64, len(merged)),
	}
	for i, rec := range merged {
		chart.Dates[i] = rec.Date.String()
		chart.Sentiment[i] = rec.Sentiment
		chart.PriceChange[i] = rec.PriceChangePct
	}

	var coefficient float64
	if report.Correlation.Coefficient != nil {
		coefficient = round3(*report.Correlation.Coefficient)
	}

	return analyzeResponse{
		Ticker:          report.Ticker,
		Correlation:     coefficient,
		CorrelationText: report.Label,
		PostsAnalyzed:   report.PostsAnalyzed,
		DataPoints:      report.Correlation.SampleSize,
		ChartData:       chart,
	}
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// toAPIError maps pipeline failures onto response classes: data and
// sufficiency failures are client-reportable 400s with the domain message;
// provider breakage and anything unexpected are 500s, with provider failures
// keeping their own message so the two stay distinguishable.
func toAPIError(err error, ticker string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTicker),
		errors.Is(err, domain.ErrInsufficientPriceData),
		errors.Is(err, domain.ErrInsufficientSocialData),
		errors.Is(err, domain.ErrInsufficientOverlap),
		errors.Is(err, domain.ErrUndefinedCorrelation):
		return apperrors.ValidationError(userMessage(err)).WithField("ticker", ticker)
	case errors.Is(err, domain.ErrUpstreamFetch):
		return apperrors.ExternalError("market data is temporarily unavailable, please try again", err).
			WithField("ticker", ticker)
	default:
		return apperrors.InternalError("service unavailable, please try again", err).
			WithField("ticker", ticker)
	}
}

// userMessage strips wrapping context from a domain failure, leaving the
// sentinel's user-facing text.
func userMessage(err error) string {
	for _, kind := range []error{
		domain.ErrInvalidTicker,
		domain.ErrInsufficientPriceData,
		domain.ErrInsufficientSocialData,
		domain.ErrInsufficientOverlap,
		domain.ErrUndefinedCorrelation,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return err.Error()
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTicker):
		return "invalid_ticker"
	case errors.Is(err, domain.ErrInsufficientPriceData):
		return "insufficient_price_data"
	case errors.Is(err, domain.ErrInsufficientSocialData):
		return "insufficient_social_data"
	case errors.Is(err, domain.ErrInsufficientOverlap):
		return "insufficient_overlap"
	case errors.Is(err, domain.ErrUndefinedCorrelation):
		return "undefined_correlation"
	case errors.Is(err, domain.ErrUpstreamFetch):
		return "upstream_failure"
	default:
		return "internal_error"
	}
}
