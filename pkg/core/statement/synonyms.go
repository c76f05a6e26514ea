package statement

// fieldMapping binds a canonical field to its recognized header variants.
// Synonym order is priority order: resolution iterates the list and the
// first synonym matching a present column wins.
type fieldMapping struct {
	field    string
	synonyms []string
	assign   func(*Statement, float64)
}

// synonymTable is the static synonym dictionary, one entry per canonical
// field. Loaded once at init, never mutated.
var synonymTable = []fieldMapping{
	{"revenue",
		[]string{"revenue", "total_revenue", "sales", "total_sales", "income", "turnover"},
		func(s *Statement, v float64) { s.Revenue = v }},
	{"cogs",
		[]string{"cogs", "cost_of_goods_sold", "cost_of_sales", "direct_costs"},
		func(s *Statement, v float64) { s.COGS = v }},
	{"operating_expenses",
		[]string{"operating_expenses", "opex", "operating_costs", "expenses"},
		func(s *Statement, v float64) { s.OperatingExpenses = v }},
	{"net_income",
		[]string{"net_income", "net_profit", "profit", "earnings", "net_earnings"},
		func(s *Statement, v float64) { s.NetIncome = v }},
	{"total_assets",
		[]string{"total_assets", "assets"},
		func(s *Statement, v float64) { s.TotalAssets = v }},
	{"current_assets",
		[]string{"current_assets", "liquid_assets"},
		func(s *Statement, v float64) { s.CurrentAssets = v }},
	{"total_liabilities",
		[]string{"total_liabilities", "liabilities"},
		func(s *Statement, v float64) { s.TotalLiabilities = v }},
	{"current_liabilities",
		[]string{"current_liabilities", "short_term_liabilities"},
		func(s *Statement, v float64) { s.CurrentLiabilities = v }},
	{"inventory",
		[]string{"inventory", "stock"},
		func(s *Statement, v float64) { s.Inventory = v }},
	{"receivables",
		[]string{"receivables", "accounts_receivable", "debtors"},
		func(s *Statement, v float64) { s.Receivables = v }},
	{"payables",
		[]string{"payables", "accounts_payable", "creditors"},
		func(s *Statement, v float64) { s.Payables = v }},
	{"cash",
		[]string{"cash", "cash_and_equivalents", "cash_balance"},
		func(s *Statement, v float64) { s.Cash = v }},
}

// allKeywords is the flattened set of every synonym across all fields,
// used by layout inference.
var allKeywords = func() map[string]bool {
	kw := make(map[string]bool)
	for _, m := range synonymTable {
		for _, syn := range m.synonyms {
			kw[syn] = true
		}
	}
	return kw
}()
