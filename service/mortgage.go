package service

import (
	"math"

	"mortgage-calc/domain"
	"mortgage-calc/money"
)

// ComputeMortgage returns the level principal-and-interest payment of a
// mortgage, truncated (not rounded) to the cent. A non-finite payment, such as
// the 0/0 of a zero rate or zero term, is reported as 0. Negative terms or
// rates are treated as no payments.
func ComputeMortgage(input domain.MortgageInput) domain.MortgageResult {
	result := domain.MortgageResult{
		FinancedAmount: input.HomePrice - input.DownPayment,
	}
	if input.TermYears <= 0 || input.TermYears > MaxTermYears || input.AnnualRate < 0 {
		return result
	}

	result.NumPayments = input.TermYears * MonthsPerYear

	monthlyRate := input.AnnualRate / MonthsPerYear
	financed := money.FromCents(result.FinancedAmount)
	payment := financed * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(result.NumPayments)))

	cents := math.Floor(payment * 100)
	if math.IsNaN(cents) || math.IsInf(cents, 0) || math.Abs(cents) > math.MaxInt64/(MaxTermYears*MonthsPerYear) {
		return result
	}

	result.MonthlyPayment = int64(cents)
	if result.MonthlyPayment != 0 {
		result.TotalPayments = result.MonthlyPayment * int64(result.NumPayments)
		result.TotalInterest = result.TotalPayments - result.FinancedAmount
	}
	return result
}
