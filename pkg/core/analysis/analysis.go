// Package analysis runs the full assessment pipeline: canonical statement
// in, scored and benchmarked assessment out.
package analysis

import (
	"time"

	"finhealth/pkg/core/benchmark"
	"finhealth/pkg/core/forecast"
	"finhealth/pkg/core/health"
	"finhealth/pkg/core/metrics"
	"finhealth/pkg/core/statement"
	"finhealth/pkg/models"
)

// DefaultHorizon is the forecast length used when the caller does not ask
// for a specific one.
const DefaultHorizon = 12

// Assessment is the complete result of one analysis run.
type Assessment struct {
	Profile               models.BusinessProfile `json:"business_profile"`
	Statement             *statement.Statement   `json:"financial_statement"`
	HealthScore           int                    `json:"health_score"`
	CreditworthinessScore int                    `json:"creditworthiness_score"`
	RiskLevel             health.RiskLevel       `json:"risk_level"`
	Metrics               *metrics.Bundle        `json:"metrics"`
	Benchmark             *benchmark.Comparison  `json:"benchmark_comparison"`
	Forecast              *forecast.Forecast     `json:"cash_flow_forecast"`
	GeneratedAt           time.Time              `json:"generated_at"`
}

// Analyze runs metrics, scoring, risk classification, benchmarking and the
// cash-flow forecast for one statement. The profile's industry is
// normalized first; unrecognized codes fall back to the default sector.
func Analyze(profile models.BusinessProfile, stmt *statement.Statement, months int) (*Assessment, error) {
	profile.Industry = models.ParseIndustry(string(profile.Industry))

	bundle := metrics.Calculate(stmt)
	score := health.Score(bundle)

	fc, err := forecast.Project(stmt, bundle, profile.Industry, months)
	if err != nil {
		return nil, err
	}

	return &Assessment{
		Profile:               profile,
		Statement:             stmt,
		HealthScore:           score,
		CreditworthinessScore: score,
		RiskLevel:             health.ClassifyRisk(score, bundle),
		Metrics:               bundle,
		Benchmark:             benchmark.Compare(bundle, profile.Industry),
		Forecast:              fc,
		GeneratedAt:           time.Now().UTC(),
	}, nil
}

// AnalyzeGrid normalizes a raw grid first, then analyzes it. This is the
// entry point for uploaded documents.
func AnalyzeGrid(profile models.BusinessProfile, grid statement.Grid, months int) (*Assessment, error) {
	stmt, err := statement.Normalize(grid)
	if err != nil {
		return nil, err
	}
	return Analyze(profile, stmt, months)
}
