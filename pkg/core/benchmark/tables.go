// Package benchmark compares a business's metrics against static industry
// threshold tables and derives an overall percentile standing.
package benchmark

import "finhealth/pkg/models"

// Thresholds are the four ordered cut-offs for one metric within an
// industry. For "higher is better" metrics the values descend from
// Excellent to Poor; for debt_to_equity they ascend.
type Thresholds struct {
	Excellent float64 `json:"excellent" yaml:"excellent"`
	Good      float64 `json:"good" yaml:"good"`
	Average   float64 `json:"average" yaml:"average"`
	Poor      float64 `json:"poor" yaml:"poor"`
}

// Table maps the six benchmarked metric names to their thresholds.
type Table map[string]Thresholds

// defaultTables holds the built-in benchmark data: typical ranges for
// healthy businesses per sector. Industries without their own table use
// the services table.
var defaultTables = map[models.Industry]Table{
	models.IndustryManufacturing: {
		"current_ratio":     {2.0, 1.5, 1.2, 0.8},
		"quick_ratio":       {1.5, 1.0, 0.8, 0.5},
		"net_profit_margin": {15.0, 10.0, 5.0, 2.0},
		"debt_to_equity":    {0.5, 1.0, 1.5, 2.5},
		"asset_turnover":    {2.0, 1.5, 1.0, 0.5},
		"return_on_equity":  {20.0, 15.0, 10.0, 5.0},
	},
	models.IndustryRetail: {
		"current_ratio":     {2.5, 2.0, 1.5, 1.0},
		"quick_ratio":       {1.0, 0.8, 0.5, 0.3},
		"net_profit_margin": {10.0, 6.0, 3.0, 1.0},
		"debt_to_equity":    {0.3, 0.7, 1.2, 2.0},
		"asset_turnover":    {3.0, 2.5, 2.0, 1.0},
		"return_on_equity":  {25.0, 18.0, 12.0, 6.0},
	},
	models.IndustryServices: {
		"current_ratio":     {2.0, 1.5, 1.2, 0.9},
		"quick_ratio":       {1.8, 1.3, 1.0, 0.7},
		"net_profit_margin": {20.0, 15.0, 10.0, 5.0},
		"debt_to_equity":    {0.4, 0.8, 1.3, 2.0},
		"asset_turnover":    {2.5, 2.0, 1.5, 0.8},
		"return_on_equity":  {30.0, 22.0, 15.0, 8.0},
	},
	models.IndustryTechnology: {
		"current_ratio":     {3.0, 2.5, 2.0, 1.5},
		"quick_ratio":       {2.5, 2.0, 1.5, 1.0},
		"net_profit_margin": {25.0, 18.0, 12.0, 5.0},
		"debt_to_equity":    {0.2, 0.5, 0.9, 1.5},
		"asset_turnover":    {1.8, 1.4, 1.0, 0.6},
		"return_on_equity":  {35.0, 25.0, 18.0, 10.0},
	},
	models.IndustryAgriculture: {
		"current_ratio":     {1.8, 1.4, 1.1, 0.8},
		"quick_ratio":       {1.2, 0.9, 0.6, 0.4},
		"net_profit_margin": {12.0, 8.0, 5.0, 2.0},
		"debt_to_equity":    {0.6, 1.2, 1.8, 2.5},
		"asset_turnover":    {1.5, 1.2, 0.9, 0.5},
		"return_on_equity":  {18.0, 12.0, 8.0, 4.0},
	},
	models.IndustryEcommerce: {
		"current_ratio":     {2.2, 1.8, 1.4, 1.0},
		"quick_ratio":       {1.5, 1.2, 0.9, 0.6},
		"net_profit_margin": {15.0, 10.0, 6.0, 2.0},
		"debt_to_equity":    {0.4, 0.9, 1.4, 2.0},
		"asset_turnover":    {2.8, 2.2, 1.6, 1.0},
		"return_on_equity":  {28.0, 20.0, 14.0, 7.0},
	},
}

// tables is the active configuration. It is replaced wholesale by
// LoadFromFile during startup and read-only afterwards.
var tables = defaultTables

// tableFor returns the benchmark table for the industry, falling back to
// the default industry's table when the sector has no table of its own.
func tableFor(industry models.Industry) Table {
	if t, ok := tables[industry]; ok {
		return t
	}
	return tables[models.DefaultIndustry]
}
