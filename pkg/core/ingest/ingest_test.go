package ingest

import (
	"strings"
	"testing"

	"finhealth/pkg/core/statement"
)

func TestReadCSV(t *testing.T) {
	input := "Revenue,Net Income,Total Assets\n\"1,000,000\",150000,2000000\n"
	grid, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(grid) != 2 || len(grid[0]) != 3 {
		t.Fatalf("unexpected grid shape: %v", grid)
	}

	stmt, err := statement.Normalize(grid)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if stmt.Revenue != 1000000 {
		t.Errorf("Revenue = %v, want 1000000", stmt.Revenue)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty csv")
	}
}

func TestReadHTML(t *testing.T) {
	html := `<html><body>
	<p>Quarterly statement</p>
	<table>
		<tr><th>Metric</th><th>Amount</th></tr>
		<tr><td>Revenue</td><td>$500,000</td></tr>
		<tr><td>Total Assets</td><td>750000</td></tr>
	</table>
	</body></html>`

	grid, err := ReadHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ReadHTML failed: %v", err)
	}
	if len(grid) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(grid))
	}

	stmt, err := statement.Normalize(grid)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if stmt.Revenue != 500000 || stmt.TotalAssets != 750000 {
		t.Errorf("got revenue=%v assets=%v, want 500000/750000", stmt.Revenue, stmt.TotalAssets)
	}
}

func TestReadHTMLNoTable(t *testing.T) {
	if _, err := ReadHTML(strings.NewReader("<html><body><p>nothing</p></body></html>")); err == nil {
		t.Fatal("expected error when document has no table")
	}
}

func TestReadDispatch(t *testing.T) {
	if _, err := Read(strings.NewReader("a,b\n1,2\n"), "statement.CSV"); err != nil {
		t.Errorf("csv dispatch failed: %v", err)
	}
	if _, err := Read(strings.NewReader("x"), "statement.pdf"); err == nil {
		t.Error("expected unsupported-format error for pdf")
	}
}
