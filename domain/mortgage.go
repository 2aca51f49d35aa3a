package domain

// MortgageInput holds amounts in cents and the rate as a fraction.
type MortgageInput struct {
	HomePrice   int64
	DownPayment int64
	AnnualRate  float64
	TermYears   int
}

type MortgageResult struct {
	FinancedAmount int64 `json:"financedAmount"`
	NumPayments    int   `json:"numPayments"`
	MonthlyPayment int64 `json:"monthlyPayment"`
	TotalPayments  int64 `json:"totalPayments"`
	TotalInterest  int64 `json:"totalInterest"`
}
