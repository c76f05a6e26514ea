// Package report renders a completed assessment as Markdown or HTML.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	"finhealth/pkg/core/analysis"
)

// Markdown builds a human-readable assessment report.
func Markdown(a *analysis.Assessment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Financial Health Assessment: %s\n\n", a.Profile.Name)
	fmt.Fprintf(&b, "*Generated %s*\n\n", a.GeneratedAt.Format("January 2, 2006"))

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- **Industry:** %s\n", a.Profile.Industry)
	fmt.Fprintf(&b, "- **Health Score:** %d / 100\n", a.HealthScore)
	fmt.Fprintf(&b, "- **Risk Level:** %s\n", a.RiskLevel)
	fmt.Fprintf(&b, "- **Industry Percentile:** %d\n\n", a.Benchmark.PercentileRank)

	fmt.Fprintf(&b, "## Key Metrics\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	writeGroup(&b, a.Metrics.Liquidity)
	writeGroup(&b, a.Metrics.Profitability)
	writeGroup(&b, a.Metrics.Leverage)
	writeGroup(&b, a.Metrics.Efficiency)
	writeGroup(&b, a.Metrics.WorkingCapital)
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Industry Benchmark (%s)\n\n", a.Benchmark.Industry)
	b.WriteString("| Metric | Value | Industry Avg | Standing |\n|---|---|---|---|\n")
	for _, name := range sortedKeys(a.Benchmark.Metrics) {
		mc := a.Benchmark.Metrics[name]
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %s (p%d) |\n",
			titleCase(name), mc.Value, mc.IndustryAverage, mc.Performance, mc.Percentile)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Cash Flow Forecast (%s)\n\n", a.Forecast.ForecastPeriod)
	fmt.Fprintf(&b, "- **Projected Revenue:** %.2f\n", a.Forecast.Summary.TotalProjectedRevenue)
	fmt.Fprintf(&b, "- **Projected Net Income:** %.2f\n", a.Forecast.Summary.TotalProjectedNetIncome)
	fmt.Fprintf(&b, "- **Assumed Growth:** %s annual\n\n", a.Forecast.Summary.GrowthRate)

	if len(a.Forecast.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range a.Forecast.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the Markdown report to HTML via Goldmark.
func HTML(a *analysis.Assessment) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(a)), &buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeGroup(b *strings.Builder, g map[string]float64) {
	for _, name := range sortedKeys(g) {
		fmt.Fprintf(b, "| %s | %.2f |\n", titleCase(name), g[name])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// titleCase turns a snake_case metric key into a display label.
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
