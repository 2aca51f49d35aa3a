package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mortgage-calc/domain"
)

func TestComputeMortgage(t *testing.T) {
	tests := []struct {
		name  string
		input domain.MortgageInput
		want  domain.MortgageResult
	}{
		{
			name:  "standard 30 year",
			input: domain.MortgageInput{HomePrice: 40_000_000, DownPayment: 8_000_000, AnnualRate: 0.06, TermYears: 30},
			want: domain.MortgageResult{
				FinancedAmount: 32_000_000,
				NumPayments:    360,
				MonthlyPayment: 191856,
				TotalPayments:  191856 * 360,
				TotalInterest:  191856*360 - 32_000_000,
			},
		},
		{
			// 1995.907... se trunca a 1995.90, no se redondea
			name:  "truncates to the cent",
			input: domain.MortgageInput{HomePrice: 30_000_000, AnnualRate: 0.07, TermYears: 30},
			want: domain.MortgageResult{
				FinancedAmount: 30_000_000,
				NumPayments:    360,
				MonthlyPayment: 199590,
				TotalPayments:  199590 * 360,
				TotalInterest:  199590*360 - 30_000_000,
			},
		},
		{
			name:  "zero rate reports zero payment",
			input: domain.MortgageInput{HomePrice: 12_000_000, DownPayment: 2_000_000, AnnualRate: 0, TermYears: 30},
			want:  domain.MortgageResult{FinancedAmount: 10_000_000, NumPayments: 360},
		},
		{
			name:  "zero term reports zero payment",
			input: domain.MortgageInput{HomePrice: 12_000_000, AnnualRate: 0.05, TermYears: 0},
			want:  domain.MortgageResult{FinancedAmount: 12_000_000},
		},
		{
			name:  "negative term is treated as no payments",
			input: domain.MortgageInput{HomePrice: 12_000_000, AnnualRate: 0.05, TermYears: -30},
			want:  domain.MortgageResult{FinancedAmount: 12_000_000},
		},
		{
			name:  "negative rate is treated as no payments",
			input: domain.MortgageInput{HomePrice: 12_000_000, AnnualRate: -0.05, TermYears: 30},
			want:  domain.MortgageResult{FinancedAmount: 12_000_000},
		},
		{
			name:  "down payment above price is not rejected",
			input: domain.MortgageInput{HomePrice: 5_000_000, DownPayment: 6_000_000, AnnualRate: 0.06, TermYears: 30},
			want: domain.MortgageResult{
				FinancedAmount: -1_000_000,
				NumPayments:    360,
				MonthlyPayment: -5996,
				TotalPayments:  -5996 * 360,
				TotalInterest:  -5996*360 + 1_000_000,
			},
		},
		{
			name:  "full down payment",
			input: domain.MortgageInput{HomePrice: 5_000_000, DownPayment: 5_000_000, AnnualRate: 0.05, TermYears: 5},
			want:  domain.MortgageResult{NumPayments: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeMortgage(tt.input))
		})
	}
}
