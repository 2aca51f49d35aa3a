package service

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"mortgage-calc/domain"
	"mortgage-calc/money"
)

var monthAbbrev = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ComputeAmortization builds the payment schedule of a fixed-rate, fully
// amortizing loan. It returns nil when the inputs cannot produce a schedule:
// non-positive principal, a term outside (0, MaxTermYears], or a negative or
// non-finite rate.
//
// The level payment is rounded up to the next cent. Each period's interest is
// rounded half up on the remaining balance; the last period pays whatever is
// left so the balance ends at exactly zero, even when that is a cent or two
// above the level payment.
func ComputeAmortization(input domain.LoanInput, groupByYear bool) *domain.AmortizationResult {
	if input.Principal <= 0 || input.TermYears <= 0 || input.TermYears > MaxTermYears {
		return nil
	}
	if input.AnnualRate < 0 || math.IsNaN(input.AnnualRate) || math.IsInf(input.AnnualRate, 0) {
		return nil
	}

	numPayments := input.TermYears * MonthsPerYear
	monthlyRate := money.RateFromFraction(input.AnnualRate).Monthly()
	payment := levelPayment(input.Principal, monthlyRate, numPayments)

	rate := monthlyRate.Decimal()
	remaining := input.Principal
	var totalInterest int64

	// Contadores explícitos de mes/año en lugar de aritmética de fechas
	year, month := input.FirstPaymentDate.Year(), int(input.FirstPaymentDate.Month())

	capacity := numPayments
	if groupByYear {
		capacity = input.TermYears + 1
	}
	schedule := make([]domain.ScheduleEntry, 0, capacity)

	var yearly domain.ScheduleEntry
	for period := 1; period <= numPayments; period++ {
		interest := rate.Mul(decimal.NewFromInt(remaining)).Round(0).IntPart()

		due := payment
		if remaining+interest < due || period == numPayments {
			due = remaining + interest
		}
		principalPart := due - interest
		remaining -= principalPart
		totalInterest += interest

		if groupByYear {
			yearly.PaymentAmount += due
			yearly.InterestPortion += interest
			yearly.PrincipalPortion += principalPart

			if month == 12 || period == numPayments {
				yearly.PaymentNumber = period
				yearly.Year = year
				yearly.Label = strconv.Itoa(year)
				yearly.RemainingBalance = remaining
				schedule = append(schedule, yearly)
				yearly = domain.ScheduleEntry{}
			}
		} else {
			schedule = append(schedule, domain.ScheduleEntry{
				PaymentNumber:    period,
				Year:             year,
				Month:            month,
				Label:            monthAbbrev[month-1] + " " + strconv.Itoa(year),
				PaymentAmount:    due,
				InterestPortion:  interest,
				PrincipalPortion: principalPart,
				RemainingBalance: remaining,
			})
		}

		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	return &domain.AmortizationResult{
		Schedule:              schedule,
		MonthlyPayment:        payment,
		TotalYearlyPayment:    payment * MonthsPerYear,
		TotalLifetimePayments: input.Principal + totalInterest,
		TotalLifetimeInterest: totalInterest,
	}
}

// levelPayment is the annuity payment in cents, always rounded up:
// P * r * (1+r)^n / ((1+r)^n - 1), or P / n when r is zero.
func levelPayment(principal int64, monthlyRate money.FixedRate, numPayments int) int64 {
	n := int64(numPayments)
	if monthlyRate == 0 {
		return (principal + n - 1) / n
	}

	p := decimal.NewFromInt(principal)
	r := monthlyRate.Decimal()
	factor := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(n))

	return p.Mul(r).Mul(factor).
		Div(factor.Sub(decimal.NewFromInt(1))).
		Ceil().
		IntPart()
}
