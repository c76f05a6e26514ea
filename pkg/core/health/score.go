// Package health scores overall financial health and classifies risk.
package health

import "finhealth/pkg/core/metrics"

// Score boundaries.
const (
	baseScore = 70
	minScore  = 0
	maxScore  = 100
)

// Score computes the 0-100 health score from the metric bundle using a
// deterministic additive rubric: each signal contributes a band-dependent
// delta on top of the base score, and the total is clamped to [0, 100].
func Score(b *metrics.Bundle) int {
	score := baseScore

	// Liquidity (20 points max)
	switch currentRatio := b.Liquidity["current_ratio"]; {
	case currentRatio >= 2.0:
		score += 20
	case currentRatio >= 1.5:
		score += 15
	case currentRatio >= 1.0:
		score += 10
	case currentRatio >= 0.5:
		score += 5
	default:
		score -= 10
	}

	// Profitability (30 points max)
	switch npm := b.Profitability["net_profit_margin"]; {
	case npm >= 15:
		score += 30
	case npm >= 10:
		score += 20
	case npm >= 5:
		score += 10
	case npm >= 0:
		score += 5
	default:
		score -= 20
	}

	// Leverage (20 points max). Zero or negative equity overrides the
	// debt-to-equity bands entirely.
	debtToEquity := b.Leverage["debt_to_equity"]
	switch {
	case b.Leverage["equity_ratio"] <= 0:
		score -= 30
	case debtToEquity <= 0.5:
		score += 20
	case debtToEquity <= 1.0:
		score += 15
	case debtToEquity <= 2.0:
		score += 5
	default:
		score -= 10
	}

	// Efficiency (15 points max, no penalty band)
	switch assetTurnover := b.Efficiency["asset_turnover"]; {
	case assetTurnover >= 2.0:
		score += 15
	case assetTurnover >= 1.0:
		score += 10
	case assetTurnover >= 0.5:
		score += 5
	}

	// Working capital (15 points max)
	switch wc := b.WorkingCapital["working_capital"]; {
	case wc > 0:
		score += 15
	case wc > -100000:
		score += 5
	default:
		score -= 10
	}

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
