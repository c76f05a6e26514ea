package report

import (
	"strings"
	"testing"

	"finhealth/pkg/core/analysis"
	"finhealth/pkg/core/statement"
	"finhealth/pkg/models"
)

func testAssessment(t *testing.T) *analysis.Assessment {
	t.Helper()
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
	profile := models.BusinessProfile{
		Name:         "Mehta Textiles",
		BusinessType: models.PrivateLimited,
		Industry:     models.IndustryManufacturing,
	}
	a, err := analysis.Analyze(profile, stmt, analysis.DefaultHorizon)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return a
}

func TestMarkdownReport(t *testing.T) {
	md := Markdown(testAssessment(t))

	for _, want := range []string{
		"# Financial Health Assessment: Mehta Textiles",
		"**Health Score:** 100 / 100",
		"**Risk Level:** Low",
		"## Industry Benchmark (manufacturing)",
		"## Cash Flow Forecast (12 months)",
		"| Current Ratio |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestHTMLReport(t *testing.T) {
	html, err := HTML(testAssessment(t))
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Mehta Textiles") {
		t.Errorf("unexpected HTML output: %.200s", out)
	}
}
