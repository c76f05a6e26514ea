package benchmark

import (
	"math"

	"finhealth/pkg/core/metrics"
	"finhealth/pkg/models"
)

// Band is the overall performance classification key. The user-facing
// label text is an external lookup (localized by the API layer); the
// comparator only produces the key.
type Band string

const (
	BandExcellent    Band = "excellent"
	BandAboveAverage Band = "above_average"
	BandAverage      Band = "average"
	BandBelowAverage Band = "below_average"
	BandPoor         Band = "poor"
)

// MetricComparison is the standing of one metric against its industry
// thresholds.
type MetricComparison struct {
	Value             float64 `json:"value"`
	IndustryAverage   float64 `json:"industry_average"`
	IndustryExcellent float64 `json:"industry_excellent"`
	Performance       string  `json:"performance"`
	Percentile        int     `json:"percentile"`
}

// Comparison is the full benchmark result for one statement.
type Comparison struct {
	Industry       models.Industry             `json:"industry"`
	Metrics        map[string]MetricComparison `json:"metrics_comparison"`
	PercentileRank int                         `json:"percentile_rank"`
	Overall        Band                        `json:"overall_performance"`
}

// keyMetric pairs a benchmarked metric name with its group accessor.
type keyMetric struct {
	name  string
	group func(*metrics.Bundle) metrics.Group
}

var keyMetrics = []keyMetric{
	{"current_ratio", func(b *metrics.Bundle) metrics.Group { return b.Liquidity }},
	{"quick_ratio", func(b *metrics.Bundle) metrics.Group { return b.Liquidity }},
	{"net_profit_margin", func(b *metrics.Bundle) metrics.Group { return b.Profitability }},
	{"debt_to_equity", func(b *metrics.Bundle) metrics.Group { return b.Leverage }},
	{"asset_turnover", func(b *metrics.Bundle) metrics.Group { return b.Efficiency }},
	{"return_on_equity", func(b *metrics.Bundle) metrics.Group { return b.Profitability }},
}

// Compare assesses the six key metrics against the industry's table.
// Unrecognized industries use the default industry's table; this is never
// an error.
func Compare(b *metrics.Bundle, industry models.Industry) *Comparison {
	table := tableFor(industry)

	cmp := &Comparison{
		Industry: industry,
		Metrics:  make(map[string]MetricComparison, len(keyMetrics)),
	}

	total := 0
	for _, km := range keyMetrics {
		value := km.group(b)[km.name]
		th := table[km.name]
		level, percentile := assess(value, th, km.name == "debt_to_equity")

		cmp.Metrics[km.name] = MetricComparison{
			Value:             value,
			IndustryAverage:   th.Average,
			IndustryExcellent: th.Excellent,
			Performance:       level,
			Percentile:        percentile,
		}
		total += percentile
	}

	cmp.PercentileRank = int(math.Round(float64(total) / float64(len(keyMetrics))))
	cmp.Overall = overallBand(cmp.PercentileRank)
	return cmp
}

// assess classifies a value against the four thresholds. For lowerIsBetter
// metrics (debt_to_equity) the comparison runs ascending; otherwise
// descending.
func assess(value float64, th Thresholds, lowerIsBetter bool) (string, int) {
	if lowerIsBetter {
		switch {
		case value <= th.Excellent:
			return "Excellent", 90
		case value <= th.Good:
			return "Good", 70
		case value <= th.Average:
			return "Average", 50
		case value <= th.Poor:
			return "Below Average", 30
		default:
			return "Poor", 10
		}
	}
	switch {
	case value >= th.Excellent:
		return "Excellent", 90
	case value >= th.Good:
		return "Good", 70
	case value >= th.Average:
		return "Average", 50
	case value >= th.Poor:
		return "Below Average", 30
	default:
		return "Poor", 10
	}
}

func overallBand(rank int) Band {
	switch {
	case rank >= 80:
		return BandExcellent
	case rank >= 60:
		return BandAboveAverage
	case rank >= 40:
		return BandAverage
	case rank >= 20:
		return BandBelowAverage
	default:
		return BandPoor
	}
}
