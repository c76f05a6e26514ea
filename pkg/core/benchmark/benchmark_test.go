package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"finhealth/pkg/core/metrics"
	"finhealth/pkg/core/statement"
	"finhealth/pkg/models"
)

func testBundle() *metrics.Bundle {
	return metrics.Calculate(&statement.Statement{
		Revenue:            1000000,
		COGS:               600000,
		OperatingExpenses:  200000,
		NetIncome:          150000,
		TotalAssets:        2000000,
		CurrentAssets:      500000,
		TotalLiabilities:   800000,
		CurrentLiabilities: 300000,
		Inventory:          100000,
	})
}

func TestCompareServices(t *testing.T) {
	cmp := Compare(testBundle(), models.IndustryServices)

	if len(cmp.Metrics) != 6 {
		t.Fatalf("expected 6 compared metrics, got %d", len(cmp.Metrics))
	}

	// current_ratio 1.67 vs services {2.0, 1.5, 1.2, 0.9} -> Good / 70
	cr := cmp.Metrics["current_ratio"]
	if cr.Performance != "Good" || cr.Percentile != 70 {
		t.Errorf("current_ratio = %s/%d, want Good/70", cr.Performance, cr.Percentile)
	}

	// debt_to_equity 0.67 vs {0.4, 0.8, 1.3, 2.0} ascending -> Good / 70
	de := cmp.Metrics["debt_to_equity"]
	if de.Performance != "Good" || de.Percentile != 70 {
		t.Errorf("debt_to_equity = %s/%d, want Good/70", de.Performance, de.Percentile)
	}

	// asset_turnover 0.5 vs {2.5, 2.0, 1.5, 0.8} -> Poor / 10
	at := cmp.Metrics["asset_turnover"]
	if at.Performance != "Poor" || at.Percentile != 10 {
		t.Errorf("asset_turnover = %s/%d, want Poor/10", at.Performance, at.Percentile)
	}
}

func TestComparePercentileRankBounds(t *testing.T) {
	bundles := []*metrics.Bundle{
		testBundle(),
		metrics.Calculate(&statement.Statement{Revenue: 1, TotalAssets: 1000000, TotalLiabilities: 2000000}),
		metrics.Calculate(&statement.Statement{
			Revenue: 5000000, NetIncome: 1500000, TotalAssets: 1000000,
			CurrentAssets: 900000, CurrentLiabilities: 200000, TotalLiabilities: 100000,
		}),
	}

	for _, b := range bundles {
		cmp := Compare(b, models.IndustryRetail)
		if cmp.PercentileRank < 10 || cmp.PercentileRank > 90 {
			t.Errorf("PercentileRank = %d, outside [10,90]", cmp.PercentileRank)
		}
		sum := 0
		for _, m := range cmp.Metrics {
			switch m.Percentile {
			case 10, 30, 50, 70, 90:
			default:
				t.Errorf("unexpected percentile %d", m.Percentile)
			}
			sum += m.Percentile
		}
		want := (sum + 3) / 6 // round(sum/6)
		if cmp.PercentileRank != want {
			t.Errorf("PercentileRank = %d, want %d", cmp.PercentileRank, want)
		}
	}
}

func TestCompareUnknownIndustryFallsBack(t *testing.T) {
	b := testBundle()
	unknown := Compare(b, models.Industry("floristry"))
	services := Compare(b, models.IndustryServices)

	if unknown.PercentileRank != services.PercentileRank {
		t.Errorf("unknown industry rank %d, want services rank %d",
			unknown.PercentileRank, services.PercentileRank)
	}
	// Healthcare has no table of its own either; it shares the default.
	healthcare := Compare(b, models.IndustryHealthcare)
	if healthcare.PercentileRank != services.PercentileRank {
		t.Errorf("healthcare rank %d, want services rank %d",
			healthcare.PercentileRank, services.PercentileRank)
	}
}

func TestOverallBand(t *testing.T) {
	cases := []struct {
		rank int
		want Band
	}{
		{90, BandExcellent},
		{80, BandExcellent},
		{79, BandAboveAverage},
		{60, BandAboveAverage},
		{59, BandAverage},
		{40, BandAverage},
		{39, BandBelowAverage},
		{20, BandBelowAverage},
		{19, BandPoor},
		{10, BandPoor},
	}
	for _, tc := range cases {
		if got := overallBand(tc.rank); got != tc.want {
			t.Errorf("overallBand(%d) = %s, want %s", tc.rank, got, tc.want)
		}
	}
}

func TestLoadFromFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	config := `
technology:
  current_ratio: {excellent: 5.0, good: 4.0, average: 3.0, poor: 2.0}
  quick_ratio: {excellent: 2.5, good: 2.0, average: 1.5, poor: 1.0}
  net_profit_margin: {excellent: 25.0, good: 18.0, average: 12.0, poor: 5.0}
  debt_to_equity: {excellent: 0.2, good: 0.5, average: 0.9, poor: 1.5}
  asset_turnover: {excellent: 1.8, good: 1.4, average: 1.0, poor: 0.6}
  return_on_equity: {excellent: 35.0, good: 25.0, average: 18.0, poor: 10.0}
`
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	defer func() { tables = defaultTables }()
	if err := LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	// current_ratio 1.67 is now Poor under the stricter technology table.
	cmp := Compare(testBundle(), models.IndustryTechnology)
	if got := cmp.Metrics["current_ratio"].Performance; got != "Poor" {
		t.Errorf("current_ratio performance = %s, want Poor after override", got)
	}
	// Other industries keep their defaults.
	cmp = Compare(testBundle(), models.IndustryServices)
	if got := cmp.Metrics["current_ratio"].Performance; got != "Good" {
		t.Errorf("services current_ratio performance = %s, want Good", got)
	}
}

func TestLoadFromFileUnknownIndustry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	if err := os.WriteFile(path, []byte("floristry:\n  current_ratio: {excellent: 1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer func() { tables = defaultTables }()
	if err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown industry")
	}
}
