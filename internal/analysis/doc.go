// Package analysis implements the sentiment/price correlation pipeline:
// normalize daily price bars into percentage changes, score and aggregate
// forum posts into daily sentiment, join both series on calendar date, and
// compute the Pearson correlation with its p-value.
//
// Every stage validates its own minimum-data precondition and fails fast with
// one of the domain error kinds. The pipeline is stateless and request-scoped.
package analysis
