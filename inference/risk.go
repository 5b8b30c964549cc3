// Package inference applies loaded models to named feature mappings and
// shapes the prediction results.
package inference

// Risk thresholds on the positive-class probability. These are exact
// contract shared with downstream consumers, not tunable defaults: a
// probability of exactly 0.7 is still Medium, exactly 0.3 is still Low.
const (
	HighRiskThreshold   = 0.7
	MediumRiskThreshold = 0.3
)

// Risk level labels.
const (
	RiskHigh   = "High"
	RiskMedium = "Medium"
	RiskLow    = "Low"
)

// RiskLevel maps a churn probability to its three-level risk label.
func RiskLevel(probability float64) string {
	switch {
	case probability > HighRiskThreshold:
		return RiskHigh
	case probability > MediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}
