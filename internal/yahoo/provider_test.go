package yahoo

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaraumer/SentimentVSROI/internal/domain"
)

func TestValidationWindow_UsesInjectedClock(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	p, err := NewProvider(clockwork.NewFakeClockAt(now))
	require.NoError(t, err)

	start, end := p.validationWindow()
	assert.Equal(t, now, end)
	assert.Equal(t, now.AddDate(0, 0, -validationLookbackDays), start)
}

func TestLocation_BucketsLateSessionsIntoTradingDay(t *testing.T) {
	p, err := NewProvider(clockwork.NewRealClock())
	require.NoError(t, err)

	// 02:00 UTC on June 11 is still the evening of June 10 in New York.
	ts := time.Date(2024, 6, 11, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.Date("2024-06-10"), domain.DateOf(ts, p.Location()))
}
