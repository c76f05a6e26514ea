package forecast

import (
	"fmt"
	"math"
	"time"

	"finhealth/pkg/core/metrics"
	"finhealth/pkg/core/statement"
	"finhealth/pkg/models"
)

// Cash-flow component multipliers: operating adds back non-cash expenses,
// investing assumes 5% of revenue reinvested, financing assumes modest net
// debt proceeds.
const (
	operatingMultiplier = 1.2
	investingMultiplier = -0.05
	financingMultiplier = 0.02
)

// MonthlyProjection is one projected month.
type MonthlyProjection struct {
	Month             string  `json:"month"`
	Revenue           float64 `json:"revenue"`
	NetIncome         float64 `json:"net_income"`
	OperatingCashFlow float64 `json:"operating_cash_flow"`
	InvestingCashFlow float64 `json:"investing_cash_flow"`
	FinancingCashFlow float64 `json:"financing_cash_flow"`
	NetCashFlow       float64 `json:"net_cash_flow"`
	CumulativeCash    float64 `json:"cumulative_cash"`
}

// Summary aggregates the projection horizon.
type Summary struct {
	TotalProjectedRevenue   float64 `json:"total_projected_revenue"`
	TotalProjectedNetIncome float64 `json:"total_projected_net_income"`
	AverageMonthlyRevenue   float64 `json:"average_monthly_revenue"`
	AverageMonthlyNetIncome float64 `json:"average_monthly_net_income"`
	GrowthRate              string  `json:"growth_rate"`
}

// Forecast is the full projection result.
type Forecast struct {
	ForecastPeriod     string              `json:"forecast_period"`
	MonthlyProjections []MonthlyProjection `json:"monthly_projections"`
	Summary            Summary             `json:"summary"`
	Recommendations    []string            `json:"working_capital_recommendations"`
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Project builds a cash-flow forecast over the given horizon starting from
// the current calendar month.
func Project(s *statement.Statement, b *metrics.Bundle, industry models.Industry, months int) (*Forecast, error) {
	return ProjectAt(s, b, industry, months, time.Now())
}

// ProjectAt is Project with an explicit start date, which pins month labels
// for reproducible output.
func ProjectAt(s *statement.Statement, b *metrics.Bundle, industry models.Industry, months int, start time.Time) (*Forecast, error) {
	if months < 1 {
		return nil, fmt.Errorf("forecast horizon must be at least 1 month, got %d", months)
	}

	baseMonthlyRevenue := s.Revenue / 12
	baseMonthlyNetIncome := s.NetIncome / 12

	growth := annualGrowth(industry)
	monthlyGrowth := growth / 12
	seasonality := seasonalityFactors(industry, months)

	projections := make([]MonthlyProjection, 0, months)
	cumulative := 0.0
	for i := 0; i < months; i++ {
		factor := (1 + monthlyGrowth*float64(i)) * seasonality[i]
		revenue := baseMonthlyRevenue * factor
		netIncome := baseMonthlyNetIncome * factor

		operating := netIncome * operatingMultiplier
		investing := revenue * investingMultiplier
		financing := revenue * financingMultiplier

		netCashFlow := round2(operating + investing + financing)
		cumulative += netCashFlow

		projections = append(projections, MonthlyProjection{
			Month:             start.AddDate(0, 0, 30*i).Format("Jan 2006"),
			Revenue:           round2(revenue),
			NetIncome:         round2(netIncome),
			OperatingCashFlow: round2(operating),
			InvestingCashFlow: round2(investing),
			FinancingCashFlow: round2(financing),
			NetCashFlow:       netCashFlow,
			CumulativeCash:    round2(cumulative),
		})
	}

	totalRevenue, totalNetIncome := 0.0, 0.0
	for _, p := range projections {
		totalRevenue += p.Revenue
		totalNetIncome += p.NetIncome
	}

	return &Forecast{
		ForecastPeriod:     fmt.Sprintf("%d months", months),
		MonthlyProjections: projections,
		Summary: Summary{
			TotalProjectedRevenue:   round2(totalRevenue),
			TotalProjectedNetIncome: round2(totalNetIncome),
			AverageMonthlyRevenue:   round2(totalRevenue / float64(months)),
			AverageMonthlyNetIncome: round2(totalNetIncome / float64(months)),
			GrowthRate:              fmt.Sprintf("%g%%", math.Round(growth*1000)/10),
		},
		Recommendations: recommendations(b, projections),
	}, nil
}

// recommendations derives working-capital advice from the metrics and the
// projected months. The first three are rule-triggered; the last two are
// always included.
func recommendations(b *metrics.Bundle, projections []MonthlyProjection) []string {
	var recs []string

	if ccc := b.WorkingCapital["cash_conversion_cycle"]; ccc > 60 {
		recs = append(recs, fmt.Sprintf(
			"Reduce cash conversion cycle from %.0f days to below 60 days by optimizing inventory turnover and accelerating collections", ccc))
	}

	negative := 0
	for _, p := range projections {
		if p.NetCashFlow < 0 {
			negative++
		}
	}
	if negative > 0 {
		recs = append(recs, fmt.Sprintf(
			"Prepare for %d months with negative cash flow. Consider arranging a working capital line of credit", negative))
	}

	if b.WorkingCapital["working_capital_ratio"] < 0.1 {
		recs = append(recs,
			"Increase working capital buffer to at least 10% of revenue for operational stability")
	}

	recs = append(recs,
		"Maintain a cash reserve equal to 3-6 months of operating expenses for emergencies",
		"Implement automated invoicing and payment reminders to reduce DSO by 15-20%")

	return recs
}
