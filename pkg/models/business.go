// Package models defines the shared business-domain types used across the
// analysis pipeline, the API layer and the store.
package models

import "strings"

// Industry identifies the business sector used for benchmarking and forecasting.
type Industry string

const (
	IndustryManufacturing Industry = "manufacturing"
	IndustryRetail        Industry = "retail"
	IndustryAgriculture   Industry = "agriculture"
	IndustryServices      Industry = "services"
	IndustryLogistics     Industry = "logistics"
	IndustryEcommerce     Industry = "ecommerce"
	IndustryTechnology    Industry = "technology"
	IndustryHealthcare    Industry = "healthcare"
	IndustryHospitality   Industry = "hospitality"
	IndustryConstruction  Industry = "construction"
)

// DefaultIndustry is the fallback when an industry code is unrecognized.
const DefaultIndustry = IndustryServices

var industries = map[Industry]bool{
	IndustryManufacturing: true,
	IndustryRetail:        true,
	IndustryAgriculture:   true,
	IndustryServices:      true,
	IndustryLogistics:     true,
	IndustryEcommerce:     true,
	IndustryTechnology:    true,
	IndustryHealthcare:    true,
	IndustryHospitality:   true,
	IndustryConstruction:  true,
}

// ParseIndustry maps a free-form code to a known Industry.
// Unrecognized codes fall back to DefaultIndustry; this is never an error.
func ParseIndustry(code string) Industry {
	ind := Industry(strings.ToLower(strings.TrimSpace(code)))
	if industries[ind] {
		return ind
	}
	return DefaultIndustry
}

// Valid reports whether the industry is one of the known sectors.
func (i Industry) Valid() bool { return industries[i] }

// BusinessType identifies the legal structure of the business.
type BusinessType string

const (
	SoleProprietorship BusinessType = "sole_proprietorship"
	Partnership        BusinessType = "partnership"
	PrivateLimited     BusinessType = "private_limited"
	PublicLimited      BusinessType = "public_limited"
	LLP                BusinessType = "llp"
)

// BusinessProfile describes the business whose statement is being analyzed.
type BusinessProfile struct {
	Name             string       `json:"name"`
	BusinessType     BusinessType `json:"business_type"`
	Industry         Industry     `json:"industry"`
	Size             string       `json:"size,omitempty"`
	Location         string       `json:"location,omitempty"`
	YearsInOperation int          `json:"years_in_operation,omitempty"`
}
