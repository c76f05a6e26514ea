package analysis

import (
	"errors"
	"testing"

	"finhealth/pkg/core/health"
	"finhealth/pkg/core/statement"
	"finhealth/pkg/models"
)

func testProfile() models.BusinessProfile {
	return models.BusinessProfile{
		Name:         "Mehta Textiles",
		BusinessType: models.PrivateLimited,
		Industry:     models.IndustryManufacturing,
	}
}

func TestAnalyzePipeline(t *testing.T) {
	stmt := &statement.Statement{
		Revenue:            1000000,
		COGS:               600000,
		OperatingExpenses:  200000,
		NetIncome:          150000,
		TotalAssets:        2000000,
		CurrentAssets:      500000,
		TotalLiabilities:   800000,
		CurrentLiabilities: 300000,
		Inventory:          100000,
		Receivables:        120000,
		Payables:           90000,
		Cash:               80000,
	}

	a, err := Analyze(testProfile(), stmt, DefaultHorizon)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if a.HealthScore != 100 {
		t.Errorf("HealthScore = %d, want 100", a.HealthScore)
	}
	if a.CreditworthinessScore != a.HealthScore {
		t.Errorf("CreditworthinessScore = %d, want %d", a.CreditworthinessScore, a.HealthScore)
	}
	if a.RiskLevel != health.RiskLow {
		t.Errorf("RiskLevel = %s, want Low", a.RiskLevel)
	}
	if a.Benchmark == nil || len(a.Benchmark.Metrics) != 6 {
		t.Error("expected full benchmark comparison")
	}
	if a.Forecast == nil || len(a.Forecast.MonthlyProjections) != 12 {
		t.Error("expected 12-month forecast")
	}
	if a.Profile.Industry != models.IndustryManufacturing {
		t.Errorf("industry = %s, want manufacturing", a.Profile.Industry)
	}
}

func TestAnalyzeUnknownIndustry(t *testing.T) {
	profile := testProfile()
	profile.Industry = "Space Mining"

	a, err := Analyze(profile, &statement.Statement{Revenue: 100000, TotalAssets: 50000}, 6)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if a.Profile.Industry != models.DefaultIndustry {
		t.Errorf("industry = %s, want fallback %s", a.Profile.Industry, models.DefaultIndustry)
	}
	if a.Benchmark.Industry != models.DefaultIndustry {
		t.Errorf("benchmark industry = %s, want %s", a.Benchmark.Industry, models.DefaultIndustry)
	}
}

func TestAnalyzeInvalidHorizon(t *testing.T) {
	if _, err := Analyze(testProfile(), &statement.Statement{Revenue: 1}, 0); err == nil {
		t.Fatal("expected error for zero horizon")
	}
}

func TestAnalyzeGrid(t *testing.T) {
	grid := statement.Grid{
		{"revenue", "net_income", "total_assets", "total_liabilities"},
		{"800000", "90000", "600000", "250000"},
	}

	a, err := AnalyzeGrid(testProfile(), grid, DefaultHorizon)
	if err != nil {
		t.Fatalf("AnalyzeGrid failed: %v", err)
	}
	if a.Statement.Revenue != 800000 {
		t.Errorf("Revenue = %v, want 800000", a.Statement.Revenue)
	}

	_, err = AnalyzeGrid(testProfile(), statement.Grid{{"foo"}, {"bar"}}, DefaultHorizon)
	var missing *statement.MissingDataError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingDataError, got %v", err)
	}
}
