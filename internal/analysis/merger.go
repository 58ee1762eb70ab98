package analysis

import (
	"github.com/zaraumer/SentimentVSROI/internal/domain"
)

// MergeByDate joins the price-change series with the daily sentiment mapping
// on calendar date. Only dates present in both survive; order follows the
// price series. No interpolation or forward-filling: a day without discussion
// is dropped rather than guessed, which deliberately biases the measurement
// toward days people actually talked about the ticker.
func MergeByDate(points []domain.PricePoint, daily domain.DailySentiment) []domain.MergedRecord {
	merged := make([]domain.MergedRecord, 0, len(points))
	for _, p := range points {
		sentiment, ok := daily[p.Date]
		if !ok {
			continue
		}
		merged = append(merged, domain.MergedRecord{
			Date:           p.Date,
			PriceChangePct: p.PctChange,
			Sentiment:      sentiment,
		})
	}
	return merged
}
