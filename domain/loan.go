package domain

import "time"

// LoanInput is the sanitized input of the amortization engine.
type LoanInput struct {
	Principal        int64 // centavos
	TermYears        int
	AnnualRate       float64 // fracción: 0.05 = 5%
	FirstPaymentDate time.Time
}

// ScheduleEntry is one row of an amortization table: a calendar month, or a
// whole calendar year when the schedule is grouped.
type ScheduleEntry struct {
	PaymentNumber    int    `json:"paymentNumber"`
	Year             int    `json:"year"`
	Month            int    `json:"month,omitempty"`
	Label            string `json:"label"`
	PaymentAmount    int64  `json:"paymentAmount"`
	InterestPortion  int64  `json:"interestPortion"`
	PrincipalPortion int64  `json:"principalPortion"`
	RemainingBalance int64  `json:"remainingBalance"`
}

type AmortizationResult struct {
	Schedule              []ScheduleEntry `json:"schedule"`
	MonthlyPayment        int64           `json:"monthlyPayment"`
	TotalYearlyPayment    int64           `json:"totalYearlyPayment"`
	TotalLifetimePayments int64           `json:"totalLifetimePayments"`
	TotalLifetimeInterest int64           `json:"totalLifetimeInterest"`
}
