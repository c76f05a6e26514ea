// Package statement turns raw tabular financial data into the canonical
// 12-field statement record used by every downstream calculation.
package statement

// Statement is the canonical financial statement. All fields are annual
// figures in the statement's reporting currency. Every field except
// NetIncome is non-negative; fields absent from the input default to 0.
type Statement struct {
	// Income statement
	Revenue           float64 `json:"revenue"`
	COGS              float64 `json:"cogs"`
	OperatingExpenses float64 `json:"operating_expenses"`
	NetIncome         float64 `json:"net_income"`

	// Balance sheet
	TotalAssets        float64 `json:"total_assets"`
	CurrentAssets      float64 `json:"current_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	CurrentLiabilities float64 `json:"current_liabilities"`

	// Working capital detail
	Inventory   float64 `json:"inventory"`
	Receivables float64 `json:"receivables"`
	Payables    float64 `json:"payables"`
	Cash        float64 `json:"cash"`
}

// Grid is a raw 2-D table of cell values. Readers outside this package
// reduce every supported document format (CSV, HTML tables, spreadsheet
// exports) to this shape. A header row is optional.
type Grid [][]string

// MissingDataError indicates that neither revenue nor total assets could be
// extracted from the grid, which is treated as a failed extraction rather
// than a legitimate statement.
type MissingDataError struct{}

func (*MissingDataError) Error() string {
	return "could not extract financial data: ensure the file contains columns like 'Revenue', 'Total Assets', 'Net Income'"
}
