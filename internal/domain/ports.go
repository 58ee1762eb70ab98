package domain

import (
	"context"
	"time"
)

// PriceProvider supplies daily price history for a ticker.
type PriceProvider interface {
	// ValidateTicker reports whether the provider has any price data for the
	// symbol. A false result with nil error means the ticker is unknown; a
	// non-nil error means the provider itself failed.
	ValidateTicker(ctx context.Context, ticker string) (bool, error)

	// DailyBars returns daily close bars for the ticker between start and end,
	// in chronological order.
	DailyBars(ctx context.Context, ticker string, start, end time.Time) ([]PriceBar, error)
}

// PostProvider searches discussion forums for posts mentioning a ticker
// within a time window. Implementations perform the whole-word ticker-mention
// check and the window filter themselves.
type PostProvider interface {
	Search(ctx context.Context, ticker string, start, end time.Time) ([]Post, error)
}

// SentimentScorer turns a text into a compound polarity score in [-1, 1].
// Scoring is a pure function of the text and must be safe for concurrent use.
type SentimentScorer interface {
	Compound(text string) float64
}
