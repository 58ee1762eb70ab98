package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zaraumer/SentimentVSROI/internal/domain"
)

// minOverlap is the minimum number of date-aligned records required to
// compute a correlation.
const minOverlap = 5

// Correlate computes the Pearson product-moment correlation between daily
// sentiment and daily price change over the merged series, plus the
// two-sided p-value under the t-distribution with n-2 degrees of freedom.
//
// With fewer than minOverlap records the coefficient stays absent and
// domain.ErrInsufficientOverlap is returned alongside the partial result;
// the caller decides how to report that. Zero variance in either series
// yields domain.ErrUndefinedCorrelation.
func Correlate(merged []domain.MergedRecord) (domain.CorrelationResult, error) {
	result := domain.CorrelationResult{
		SampleSize: len(merged),
		Merged:     merged,
	}

	if len(merged) < minOverlap {
		return result, domain.ErrInsufficientOverlap
	}

	sentiments := make([]float64, len(merged))
	changes := make([]float64, len(merged))
	for i, rec := range merged {
		sentiments[i] = rec.Sentiment
		changes[i] = rec.PriceChangePct
	}

	if stat.Variance(sentiments, nil) == 0 || stat.Variance(changes, nil) == 0 {
		return result, domain.ErrUndefinedCorrelation
	}

	r := stat.Correlation(sentiments, changes, nil)
	// Guard against floating-point drift outside [-1, 1].
	r = math.Max(-1, math.Min(1, r))

	p := pValue(r, len(merged))

	result.Coefficient = &r
	result.PValue = &p
	return result, nil
}

// pValue is the two-sided probability of observing |r| or stronger under the
// null hypothesis of zero correlation, using the exact t-distribution with
// n-2 degrees of freedom.
func pValue(r float64, n int) float64 {
	denom := 1 - r*r
	if denom <= 0 {
		return 0
	}
	t := r * math.Sqrt(float64(n-2)/denom)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return 2 * dist.CDF(-math.Abs(t))
}
