package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"mortgage-calc/domain"
	"mortgage-calc/logger"
	"mortgage-calc/money"
)

type MortgageService struct {
	validate *validator.Validate
}

func NewMortgageService(validate *validator.Validate) *MortgageService {
	if validate == nil {
		validate = NewValidator()
	}
	return &MortgageService{validate: validate}
}

// Calculate sanitizes the form and runs the mortgage engine.
func (s *MortgageService) Calculate(
	ctx context.Context,
	form domain.MortgageForm,
) (domain.MortgageResult, error) {

	if err := validateForm(s.validate, form); err != nil {
		return domain.MortgageResult{}, err
	}

	input := mortgageInput(form.HomePrice, form.DownPayment, form.AnnualRate, form.TermYears)
	result := ComputeMortgage(input)

	if result.MonthlyPayment == 0 {
		logger.CtxWarn(ctx, "mortgage payment is zero",
			slog.Int64("financed_amount", result.FinancedAmount),
			slog.Int("term_years", input.TermYears),
			slog.Float64("annual_rate", input.AnnualRate),
		)
	}

	logger.CtxDebug(ctx, "mortgage computed",
		slog.Int64("monthly_payment", result.MonthlyPayment),
		slog.Int("num_payments", result.NumPayments),
	)
	return result, nil
}

func mortgageInput(price, down, rate, term domain.FormValue) domain.MortgageInput {
	return domain.MortgageInput{
		HomePrice:   money.ParseCents(price.String()),
		DownPayment: money.ParseCents(down.String()),
		AnnualRate:  money.ParseRate(rate.String()),
		TermYears:   money.SanitizeInt(term.String()),
	}
}
