package analysis

import (
	"github.com/zaraumer/SentimentVSROI/internal/domain"
)

// minPricePoints is the minimum number of normalized daily points required
// for an analysis.
const minPricePoints = 10

// NormalizePriceSeries converts raw daily bars into a percentage-change
// series. pctChange[i] = (close[i]-close[i-1])/close[i-1]*100; the first bar
// has no predecessor and is dropped. Bars must be in chronological order.
//
// Returns domain.ErrInsufficientPriceData when fewer than minPricePoints
// points remain.
func NormalizePriceSeries(bars []domain.PriceBar) ([]domain.PricePoint, error) {
	points := make([]domain.PricePoint, 0, max(len(bars)-1, 0))
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			// A zero close is bad provider data, not a 10000% move.
			continue
		}
		points = append(points, domain.PricePoint{
			Date:      bars[i].Date,
			Close:     bars[i].Close,
			PctChange: (bars[i].Close - prev) / prev * 100,
		})
	}

	if len(points) < minPricePoints {
		return nil, domain.ErrInsufficientPriceData
	}
	return points, nil
}
