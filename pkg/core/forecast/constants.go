// Package forecast projects month-by-month cash flow from a canonical
// statement using a deterministic growth and seasonality model.
package forecast

import "finhealth/pkg/models"

// defaultAnnualGrowth applies to industries without their own rate.
const defaultAnnualGrowth = 0.10

// annualGrowthRates are the assumed annual revenue growth constants per
// industry.
var annualGrowthRates = map[models.Industry]float64{
	models.IndustryManufacturing: 0.08,
	models.IndustryRetail:        0.12,
	models.IndustryServices:      0.10,
	models.IndustryTechnology:    0.15,
	models.IndustryAgriculture:   0.06,
	models.IndustryEcommerce:     0.18,
	models.IndustryLogistics:     0.10,
	models.IndustryHealthcare:    0.09,
	models.IndustryHospitality:   0.11,
	models.IndustryConstruction:  0.07,
}

// seasonalityPatterns are 12-slot monthly multipliers for sectors with a
// pronounced cycle. Industries without a pattern are flat at 1.0.
var seasonalityPatterns = map[models.Industry][12]float64{
	// Holiday-season peak.
	models.IndustryRetail: {0.9, 0.85, 0.95, 1.0, 1.05, 1.1, 1.15, 1.1, 1.05, 1.1, 1.2, 1.3},
	// Harvest seasons.
	models.IndustryAgriculture: {0.8, 0.85, 0.9, 1.1, 1.2, 1.15, 1.1, 1.05, 1.0, 1.1, 1.15, 0.9},
	// Tourism peaks.
	models.IndustryHospitality: {0.85, 0.9, 0.95, 1.05, 1.1, 1.15, 1.2, 1.15, 1.05, 1.0, 0.95, 1.1},
}

var flatSeasonality = [12]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

// annualGrowth returns the growth constant for the industry.
func annualGrowth(industry models.Industry) float64 {
	if rate, ok := annualGrowthRates[industry]; ok {
		return rate
	}
	return defaultAnnualGrowth
}

// seasonalityFactors tiles the industry's 12-slot pattern and truncates it
// to the horizon length.
func seasonalityFactors(industry models.Industry, months int) []float64 {
	pattern, ok := seasonalityPatterns[industry]
	if !ok {
		pattern = flatSeasonality
	}

	factors := make([]float64, months)
	for i := range factors {
		factors[i] = pattern[i%12]
	}
	return factors
}
