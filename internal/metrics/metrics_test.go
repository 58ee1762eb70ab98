package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(AnalysesTotal.WithLabelValues("ok"))
	AnalysesTotal.WithLabelValues("ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(AnalysesTotal.WithLabelValues("ok")))

	before = testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("yahoo", "ok"))
	UpstreamRequestsTotal.WithLabelValues("yahoo", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("yahoo", "ok")))

	before = testutil.ToFloat64(PostsScoredTotal)
	PostsScoredTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(PostsScoredTotal))
}
