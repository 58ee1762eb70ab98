package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaraumer/SentimentVSROI/internal/domain"
)

func TestMergeByDate_IntersectionOnly(t *testing.T) {
	points := []domain.PricePoint{
		{Date: "2024-06-10", PctChange: 1.5},
		{Date: "2024-06-11", PctChange: -0.5},
		{Date: "2024-06-12", PctChange: 2.0},
	}
	daily := domain.DailySentiment{
		"2024-06-10": 0.4,
		"2024-06-12": -0.1,
		"2024-06-13": 0.9, // no price data that day
	}

	merged := MergeByDate(points, daily)

	require.Len(t, merged, 2)
	assert.Equal(t, domain.MergedRecord{Date: "2024-06-10", PriceChangePct: 1.5, Sentiment: 0.4}, merged[0])
	assert.Equal(t, domain.MergedRecord{Date: "2024-06-12", PriceChangePct: 2.0, Sentiment: -0.1}, merged[1])
}

func TestMergeByDate_PreservesPriceOrder(t *testing.T) {
	points := []domain.PricePoint{
		{Date: "2024-06-12", PctChange: 2.0},
		{Date: "2024-06-10", PctChange: 1.5},
		{Date: "2024-06-11", PctChange: -0.5},
	}
	daily := domain.DailySentiment{
		"2024-06-10": 0.1,
		"2024-06-11": 0.2,
		"2024-06-12": 0.3,
	}

	merged := MergeByDate(points, daily)

	require.Len(t, merged, 3)
	assert.Equal(t, domain.Date("2024-06-12"), merged[0].Date)
	assert.Equal(t, domain.Date("2024-06-10"), merged[1].Date)
	assert.Equal(t, domain.Date("2024-06-11"), merged[2].Date)
}

func TestMergeByDate_LengthBound(t *testing.T) {
	points := []domain.PricePoint{
		{Date: "2024-06-10"}, {Date: "2024-06-11"}, {Date: "2024-06-12"},
	}
	daily := domain.DailySentiment{"2024-06-11": 0.5}

	merged := MergeByDate(points, daily)
	assert.LessOrEqual(t, len(merged), len(daily))
	assert.LessOrEqual(t, len(merged), len(points))
}

func TestMergeByDate_Disjoint(t *testing.T) {
	points := []domain.PricePoint{{Date: "2024-06-10"}}
	daily := domain.DailySentiment{"2024-06-11": 0.5}

	assert.Empty(t, MergeByDate(points, daily))
	assert.Empty(t, MergeByDate(nil, daily))
	assert.Empty(t, MergeByDate(points, nil))
}
