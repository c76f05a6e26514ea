package health

import "finhealth/pkg/core/metrics"

// RiskLevel is the ordered risk classification, Low being least risky.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// baseRisk maps the health score to its risk band.
func baseRisk(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 60:
		return RiskModerate
	case score >= 40:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// fatalFlaw is the override predicate: conditions severe enough that a
// business should never be labeled Low risk regardless of its score.
func fatalFlaw(b *metrics.Bundle) bool {
	return b.Leverage["equity_ratio"] <= 0 ||
		b.Liquidity["current_ratio"] < 0.3 ||
		b.Profitability["net_profit_margin"] < -50
}

// ClassifyRisk determines the risk level from the health score, applying
// the fatal-flaw override. The override only escalates Low to Moderate;
// Moderate and High are returned unchanged even when the predicate holds.
func ClassifyRisk(score int, b *metrics.Bundle) RiskLevel {
	level := baseRisk(score)
	if level == RiskLow && fatalFlaw(b) {
		return RiskModerate
	}
	return level
}
