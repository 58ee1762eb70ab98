package analysis

import "math"

// Qualitative correlation strength labels.
const (
	LabelNoData   = "No correlation data available"
	LabelNone     = "No significant correlation"
	LabelWeak     = "Weak correlation"
	LabelModerate = "Moderate correlation"
	LabelStrong   = "Strong correlation"
)

// Interpret maps a correlation coefficient's magnitude to a qualitative
// label. Bounds are closed at the lower end: |r| in [0.1, 0.3) is weak,
// [0.3, 0.7) moderate, [0.7, 1] strong. A nil coefficient means no
// correlation could be computed.
func Interpret(coefficient *float64) string {
	if coefficient == nil {
		return LabelNoData
	}

	switch abs := math.Abs(*coefficient); {
	case abs >= 0.7:
		return LabelStrong
	case abs >= 0.3:
		return LabelModerate
	case abs >= 0.1:
		return LabelWeak
	default:
		return LabelNone
	}
}
