package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/zaraumer/SentimentVSROI/internal/domain"
	"github.com/zaraumer/SentimentVSROI/internal/metrics"
)

// Service runs one-shot sentiment/price correlation analyses. It holds only
// immutable collaborator handles and configuration; every call to Analyze is
// independent and carries no state across requests.
type Service struct {
	prices     domain.PriceProvider
	posts      domain.PostProvider
	scorer     domain.SentimentScorer
	clock      clockwork.Clock
	windowDays int
	timeout    time.Duration
}

func NewService(prices domain.PriceProvider, posts domain.PostProvider, scorer domain.SentimentScorer, clock clockwork.Clock, windowDays int, timeout time.Duration) *Service {
	return &Service{
		prices:     prices,
		posts:      posts,
		scorer:     scorer,
		clock:      clock,
		windowDays: windowDays,
		timeout:    timeout,
	}
}

// Analyze correlates forum sentiment about ticker with its daily price
// movement over the trailing window. The ticker must already be upper-cased
// and trimmed by the caller.
func (s *Service) Analyze(ctx context.Context, ticker string) (*domain.AnalysisReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ok, err := s.prices.ValidateTicker(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: validating ticker: %w", domain.ErrUpstreamFetch, err)
	}
	if !ok {
		return nil, domain.ErrInvalidTicker
	}

	end := s.clock.Now()
	start := end.AddDate(0, 0, -s.windowDays)

	// Price history and forum posts come from independent providers; fetch
	// them concurrently.
	var (
		bars  []domain.PriceBar
		posts []domain.Post
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if bars, err = s.prices.DailyBars(gctx, ticker, start, end); err != nil {
			return fmt.Errorf("%w: fetching price history: %w", domain.ErrUpstreamFetch, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if posts, err = s.posts.Search(gctx, ticker, start, end); err != nil {
			return fmt.Errorf("%w: fetching forum posts: %w", domain.ErrUpstreamFetch, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	points, err := NormalizePriceSeries(bars)
	if err != nil {
		return nil, err
	}

	daily, err := AggregateDailySentiment(ctx, posts, s.scorer)
	if err != nil {
		return nil, err
	}

	merged := MergeByDate(points, daily)
	metrics.MergedDataPoints.Observe(float64(len(merged)))

	result, err := Correlate(merged)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Analysis complete",
		"ticker", ticker,
		"posts_analyzed", len(posts),
		"price_points", len(points),
		"data_points", result.SampleSize,
	)

	return &domain.AnalysisReport{
		Ticker:        ticker,
		Correlation:   result,
		Label:         Interpret(result.Coefficient),
		PostsAnalyzed: len(posts),
	}, nil
}
