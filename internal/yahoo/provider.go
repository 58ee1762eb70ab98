// Package yahoo implements the price data provider on top of Yahoo
// Finance's chart API.
package yahoo

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"github.com/zaraumer/SentimentVSROI/internal/domain"
	"github.com/zaraumer/SentimentVSROI/internal/metrics"
)

const providerName = "yahoo"

// validationLookbackDays is the recent span checked when validating a
// ticker. A week guarantees at least one trading day across weekends and
// market holidays.
const validationLookbackDays = 7

// Provider fetches daily price bars. Bar timestamps are reduced to calendar
// dates in the exchange's trading calendar (US equities: America/New_York).
type Provider struct {
	clock clockwork.Clock
	loc   *time.Location
}

func NewProvider(clock clockwork.Clock) (*Provider, error) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, fmt.Errorf("loading exchange timezone: %w", err)
	}
	return &Provider{clock: clock, loc: loc}, nil
}

// Location returns the trading-calendar timezone. The forum provider uses
// the same location so both series bucket timestamps into identical dates.
func (p *Provider) Location() *time.Location {
	return p.loc
}

// ValidateTicker checks whether Yahoo has any recent daily history for the
// symbol. An unknown or delisted symbol comes back as an empty chart.
func (p *Provider) ValidateTicker(ctx context.Context, ticker string) (bool, error) {
	start, end := p.validationWindow()

	bars, err := p.fetch(ctx, ticker, start, end)
	if err != nil {
		return false, err
	}
	return len(bars) > 0, nil
}

func (p *Provider) validationWindow() (time.Time, time.Time) {
	end := p.clock.Now()
	return end.AddDate(0, 0, -validationLookbackDays), end
}

// DailyBars returns the ticker's daily close bars between start and end in
// chronological order.
func (p *Provider) DailyBars(ctx context.Context, ticker string, start, end time.Time) ([]domain.PriceBar, error) {
	return p.fetch(ctx, ticker, start, end)
}

func (p *Provider) fetch(ctx context.Context, ticker string, start, end time.Time) ([]domain.PriceBar, error) {
	timer := time.Now()
	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	var bars []domain.PriceBar
	iter := chart.Get(params)
	for iter.Next() {
		b := iter.Bar()
		closePrice, _ := b.Close.Float64()
		bars = append(bars, domain.PriceBar{
			Date:  domain.DateOf(time.Unix(int64(b.Timestamp), 0), p.loc),
			Close: closePrice,
		})
	}
	metrics.UpstreamRequestDuration.WithLabelValues(providerName).Observe(time.Since(timer).Seconds())

	if err := iter.Err(); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(providerName, "error").Inc()
		return nil, fmt.Errorf("yahoo chart %s: %w", ticker, err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(providerName, "ok").Inc()
	return bars, nil
}
