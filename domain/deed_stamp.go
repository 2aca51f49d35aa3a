package domain

import "strings"

type Jurisdiction string

const (
	MiamiDade         Jurisdiction = "miami-dade"
	OtherJurisdiction Jurisdiction = "other"
)

// ParseJurisdiction maps form text to a Jurisdiction. Anything that is not
// Miami-Dade is treated as another Florida county.
func ParseJurisdiction(raw string) Jurisdiction {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "miami-dade", "miami dade", "miamidade":
		return MiamiDade
	}
	return OtherJurisdiction
}

type PropertyType string

const (
	SingleFamily  PropertyType = "single-family"
	OtherProperty PropertyType = "other"
)

// ParsePropertyType defaults to single-family, the common residential case.
func ParsePropertyType(raw string) PropertyType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "other", "condo", "commercial", "multi-family":
		return OtherProperty
	}
	return SingleFamily
}

type DeedStampInput struct {
	SalesPrice   int64
	LoanAmount   int64
	Jurisdiction Jurisdiction
	PropertyType PropertyType
}

// TaxResult holds Florida closing taxes in cents. Surtax is always computed;
// SurtaxApplies says whether it is owed and included in Total.
type TaxResult struct {
	Surtax            int64 `json:"surtax"`
	MortgageDocStamps int64 `json:"mortgageDocStamps"`
	IntangibleTax     int64 `json:"intangibleTax"`
	TransferTax       int64 `json:"transferTax"`
	SurtaxApplies     bool  `json:"surtaxApplies"`
	Total             int64 `json:"total"`
}
