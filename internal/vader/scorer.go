// Package vader adapts the VADER lexicon/rule-based sentiment analyzer to
// the domain.SentimentScorer interface.
package vader

import (
	"github.com/jonreiter/govader"

	"github.com/zaraumer/SentimentVSROI/internal/metrics"
)

// Scorer scores arbitrary text with VADER. The underlying analyzer loads its
// lexicon once at construction and is read-only afterwards, so one Scorer is
// safe for concurrent use across requests.
type Scorer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the compound polarity score in [-1, 1] for text. Scoring
// is deterministic for a given input.
func (s *Scorer) Compound(text string) float64 {
	metrics.PostsScoredTotal.Inc()
	return s.sia.PolarityScores(text).Compound
}
