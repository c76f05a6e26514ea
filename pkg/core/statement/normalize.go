package statement

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeLabel lowercases, trims and collapses internal whitespace to a
// single underscore, so that "Total Assets" and "total_assets" compare equal.
func normalizeLabel(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return whitespaceRe.ReplaceAllString(s, "_")
}

// currencyStripper removes thousands separators and common currency symbols
// before numeric parsing.
var currencyStripper = strings.NewReplacer(",", "", "$", "", "₹", "", "€", "", "£", "", "¥", "")

// parseAmount parses a cell value as a decimal number after stripping
// separators and currency symbols.
func parseAmount(cell string) (float64, bool) {
	cleaned := strings.TrimSpace(currencyStripper.Replace(cell))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Normalize reduces a raw grid to the canonical statement. It infers the
// grid layout (wide: one record per row with fields in columns; long: one
// label/value pair per row), resolves each canonical field through its
// ordered synonym list, and defaults unresolvable fields to 0.
//
// It is a pure function of the grid and the static synonym dictionary. It
// fails with *MissingDataError when both revenue and total assets resolve
// to zero.
func Normalize(grid Grid) (*Statement, error) {
	headers, row := extractLogicalRow(grid)

	stmt := &Statement{}
	for _, m := range synonymTable {
		m.assign(stmt, resolveField(m.synonyms, headers, row))
	}

	if stmt.Revenue == 0 && stmt.TotalAssets == 0 {
		return nil, &MissingDataError{}
	}
	return stmt, nil
}

// extractLogicalRow reduces the grid to a single logical record: a list of
// normalized column headers plus the cell values of the first data row.
// Long-layout grids are pivoted so each label/value row becomes a column.
func extractLogicalRow(grid Grid) ([]string, []string) {
	if len(grid) == 0 {
		return nil, nil
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = normalizeLabel(h)
	}

	if isLongLayout(grid, headers) {
		return pivotLong(grid)
	}

	var row []string
	if len(grid) > 1 {
		row = grid[1]
	}
	return headers, row
}

// isLongLayout detects label/value-per-row grids. The heuristic: no field
// keyword appears among the value-column headers, but at least one appears
// among the normalized values of the first column. The first column is the
// label column in a long grid, so its head cell counts as a value, not a
// header.
func isLongLayout(grid Grid, headers []string) bool {
	if len(grid[0]) < 2 {
		return false
	}
	for _, h := range headers[1:] {
		if allKeywords[h] {
			return false
		}
	}
	for _, r := range grid {
		if len(r) > 0 && allKeywords[normalizeLabel(r[0])] {
			return true
		}
	}
	return false
}

// pivotLong turns a long grid into one logical row: the first column
// becomes the header list, the second the value list. Duplicate labels are
// dropped, keeping the first occurrence.
func pivotLong(grid Grid) ([]string, []string) {
	var headers, row []string
	seen := make(map[string]bool)
	for _, r := range grid {
		if len(r) < 2 {
			continue
		}
		label := normalizeLabel(r[0])
		if seen[label] {
			continue
		}
		seen[label] = true
		headers = append(headers, label)
		row = append(row, r[1])
	}
	return headers, row
}

// resolveField walks the ordered synonym list and returns the first
// parseable value found in a matching column. Parse failures fall through
// to the next synonym; if every synonym fails the field defaults to 0.
func resolveField(synonyms []string, headers, row []string) float64 {
	for _, syn := range synonyms {
		for col, h := range headers {
			if h != syn {
				continue
			}
			if col >= len(row) {
				break
			}
			if v, ok := parseAmount(row[col]); ok {
				return v
			}
			break
		}
	}
	return 0
}
