// Package metrics derives the five ratio groups from a canonical statement.
// Every function here is pure and deterministic; values are rounded once, at
// source, and the rounded values are what downstream components consume.
package metrics

import (
	"math"

	"finhealth/pkg/core/statement"
)

// Group maps metric names to rounded values.
type Group map[string]float64

// Bundle holds all computed metric groups for one statement.
type Bundle struct {
	Liquidity      Group `json:"liquidity"`
	Profitability  Group `json:"profitability"`
	Leverage       Group `json:"leverage"`
	Efficiency     Group `json:"efficiency"`
	WorkingCapital Group `json:"working_capital"`
}

// AssumedInterestRate is the flat rate applied to total liabilities to
// estimate interest expense when the statement carries no interest detail.
const AssumedInterestRate = 0.08

// safeRatio divides numerator by denominator, returning fallback when the
// denominator is not strictly positive. Each metric states its own fallback
// so the per-group zero policies stay explicit and testable.
func safeRatio(numerator, denominator, fallback float64) float64 {
	if denominator <= 0 {
		return fallback
	}
	return numerator / denominator
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Calculate computes all metric groups for the statement.
func Calculate(s *statement.Statement) *Bundle {
	return &Bundle{
		Liquidity:      liquidityRatios(s),
		Profitability:  profitabilityRatios(s),
		Leverage:       leverageRatios(s),
		Efficiency:     efficiencyRatios(s),
		WorkingCapital: workingCapitalMetrics(s),
	}
}

func liquidityRatios(s *statement.Statement) Group {
	return Group{
		"current_ratio": round2(safeRatio(s.CurrentAssets, s.CurrentLiabilities, 0)),
		"quick_ratio":   round2(safeRatio(s.CurrentAssets-s.Inventory, s.CurrentLiabilities, 0)),
		"cash_ratio":    round2(safeRatio(s.Cash, s.CurrentLiabilities, 0)),
	}
}

func profitabilityRatios(s *statement.Statement) Group {
	grossProfit := s.Revenue - s.COGS
	operatingIncome := grossProfit - s.OperatingExpenses
	equity := s.TotalAssets - s.TotalLiabilities

	return Group{
		"gross_profit_margin":     round2(safeRatio(grossProfit*100, s.Revenue, 0)),
		"operating_profit_margin": round2(safeRatio(operatingIncome*100, s.Revenue, 0)),
		"net_profit_margin":       round2(safeRatio(s.NetIncome*100, s.Revenue, 0)),
		"return_on_assets":        round2(safeRatio(s.NetIncome*100, s.TotalAssets, 0)),
		"return_on_equity":        round2(safeRatio(s.NetIncome*100, equity, 0)),
	}
}

func leverageRatios(s *statement.Statement) Group {
	equity := s.TotalAssets - s.TotalLiabilities
	interestExpense := s.TotalLiabilities * AssumedInterestRate
	ebit := s.NetIncome + interestExpense

	return Group{
		"debt_to_equity":    round2(safeRatio(s.TotalLiabilities, equity, 0)),
		"debt_to_assets":    round2(safeRatio(s.TotalLiabilities, s.TotalAssets, 0)),
		"equity_ratio":      round2(safeRatio(equity, s.TotalAssets, 0)),
		"interest_coverage": round2(safeRatio(ebit, interestExpense, 0)),
	}
}

func efficiencyRatios(s *statement.Statement) Group {
	return Group{
		"asset_turnover":             round2(safeRatio(s.Revenue, s.TotalAssets, 0)),
		"inventory_turnover":         round2(safeRatio(s.COGS, s.Inventory, 0)),
		"receivables_turnover":       round2(safeRatio(s.Revenue, s.Receivables, 0)),
		"days_sales_outstanding":     round1(safeRatio(s.Receivables*365, s.Revenue, 0)),
		"days_inventory_outstanding": round1(safeRatio(s.Inventory*365, s.COGS, 0)),
	}
}

func workingCapitalMetrics(s *statement.Statement) Group {
	workingCapital := s.CurrentAssets - s.CurrentLiabilities

	// The cash conversion cycle sums the unrounded day counts; only the
	// cycle itself is rounded.
	dso := safeRatio(s.Receivables*365, s.Revenue, 0)
	dio := safeRatio(s.Inventory*365, s.COGS, 0)
	dpo := safeRatio(s.Payables*365, s.COGS, 0)

	return Group{
		"working_capital":       round2(workingCapital),
		"working_capital_ratio": round2(safeRatio(workingCapital, s.Revenue, 0)),
		"cash_conversion_cycle": round1(dso + dio - dpo),
	}
}
