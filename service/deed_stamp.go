package service

import (
	"math"

	"github.com/shopspring/decimal"

	"mortgage-calc/domain"
)

var (
	surtaxRate           = decimal.RequireFromString(SurtaxRatePer100)
	mortgageDocStampRate = decimal.RequireFromString(MortgageDocStampRatePer100)
	miamiDadeTransfer    = decimal.RequireFromString(MiamiDadeTransferRatePer100)
	otherTransfer        = decimal.RequireFromString(OtherTransferRatePer100)
	intangibleRate       = decimal.RequireFromString(IntangibleTaxRate)
	hundred              = decimal.NewFromInt(100)
)

// ComputeDeedStamps computes Florida closing taxes. Sales price and loan
// amount are rounded up to the whole dollar before the per-$100 rates apply;
// the intangible tax uses the unrounded loan amount.
func ComputeDeedStamps(input domain.DeedStampInput) domain.TaxResult {
	sales := ceilToDollar(input.SalesPrice)
	loan := ceilToDollar(input.LoanAmount)

	transferRate := otherTransfer
	if input.Jurisdiction == domain.MiamiDade {
		transferRate = miamiDadeTransfer
	}

	result := domain.TaxResult{
		Surtax:            per100(sales, surtaxRate),
		MortgageDocStamps: per100(loan, mortgageDocStampRate),
		IntangibleTax:     decimal.NewFromInt(input.LoanAmount).Mul(intangibleRate).Round(0).IntPart(),
		TransferTax:       per100(sales, transferRate),
		SurtaxApplies:     input.Jurisdiction == domain.MiamiDade && input.PropertyType != domain.SingleFamily,
	}

	result.Total = result.TransferTax + result.MortgageDocStamps + result.IntangibleTax
	if result.SurtaxApplies {
		result.Total += result.Surtax
	}
	return result
}

// per100 applies a rate per $100 to an amount in cents and returns cents.
func per100(cents int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(cents).Div(hundred).Mul(rate).Round(0).IntPart()
}

// ceilToDollar rounds cents up to the next whole dollar. Amounts within a
// dollar of MaxInt64 stay at the largest whole dollar that fits.
func ceilToDollar(cents int64) int64 {
	dollars := cents / 100
	if cents%100 > 0 && dollars < math.MaxInt64/100 {
		dollars++
	}
	return dollars * 100
}
