package domain

import "errors"

// Failure kinds reported by the pipeline. Every stage checks its own
// minimum-data precondition and fails fast with one of these; the HTTP layer
// maps them to status codes. Messages are user-facing.
var (
	// ErrInvalidTicker: the price provider has no data for the symbol.
	ErrInvalidTicker = errors.New("stock ticker not found")

	// ErrInsufficientPriceData: fewer than the minimum valid daily points
	// remained after normalization.
	ErrInsufficientPriceData = errors.New("insufficient stock price data")

	// ErrInsufficientSocialData: fewer qualifying posts than required.
	ErrInsufficientSocialData = errors.New("not enough social media data (minimum 20 posts required)")

	// ErrInsufficientOverlap: fewer than the minimum date-aligned records, so
	// no correlation was computed.
	ErrInsufficientOverlap = errors.New("not enough days with both price and discussion data")

	// ErrUndefinedCorrelation: one of the aligned series has zero variance.
	ErrUndefinedCorrelation = errors.New("correlation is undefined: no variation in the data")

	// ErrUpstreamFetch: a provider call failed or timed out.
	ErrUpstreamFetch = errors.New("upstream data fetch failed")
)
