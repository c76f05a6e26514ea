package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"finhealth/pkg/core/statement"
)

// ReadHTML extracts the first table from an HTML document as a grid.
// Exported statements and bank portals commonly deliver statements as a
// single-table HTML page.
func ReadHTML(r io.Reader) (statement.Grid, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("html parsing error: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no tables found in document")
	}

	var grid statement.Grid
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		if len(row) > 0 {
			grid = append(grid, row)
		}
	})

	if len(grid) == 0 {
		return nil, fmt.Errorf("table contains no rows")
	}
	return grid, nil
}

// Read dispatches on file extension. CSV and HTML are supported; other
// formats must be converted upstream.
func Read(r io.Reader, filename string) (statement.Grid, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return ReadCSV(r)
	case strings.HasSuffix(name, ".html"), strings.HasSuffix(name, ".htm"):
		return ReadHTML(r)
	default:
		return nil, fmt.Errorf("unsupported file format %q: upload CSV or HTML", filename)
	}
}
