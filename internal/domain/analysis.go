package domain

import "time"

// PriceBar is a raw daily bar as returned by the price provider.
type PriceBar struct {
	Date  Date
	Close float64
}

// PricePoint is a normalized daily price observation. PctChange is the
// percentage change of Close against the previous trading day's close; bars
// without a predecessor never become PricePoints.
type PricePoint struct {
	Date      Date
	Close     float64
	PctChange float64
}

// Post is a forum post that mentions the analyzed ticker. Immutable once
// fetched.
type Post struct {
	Title     string
	Body      string
	CreatedAt time.Time
	Score     int
	Date      Date
}

// Text returns the content that gets sentiment-scored.
func (p Post) Text() string {
	return p.Title + " " + p.Body
}

// SentimentSample is one post's compound sentiment score, in [-1, 1].
type SentimentSample struct {
	Date     Date
	Compound float64
}

// DailySentiment maps a calendar date to the arithmetic mean of all compound
// scores of posts from that day.
type DailySentiment map[Date]float64

// MergedRecord pairs a day's price change with that day's aggregated
// sentiment. Records exist only for dates present in both series.
type MergedRecord struct {
	Date           Date
	PriceChangePct float64
	Sentiment      float64
}

// CorrelationResult is the outcome of correlating the merged series.
// Coefficient and PValue are nil when the correlation could not be computed
// (too few overlapping days).
type CorrelationResult struct {
	Coefficient *float64
	PValue      *float64
	SampleSize  int
	Merged      []MergedRecord
}

// AnalysisReport is the complete result of one analysis request.
type AnalysisReport struct {
	Ticker        string
	Correlation   CorrelationResult
	Label         string
	PostsAnalyzed int
}
