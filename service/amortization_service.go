package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"mortgage-calc/domain"
	"mortgage-calc/logger"
	"mortgage-calc/money"
)

var dateLayouts = []string{"2006-01-02", "01/02/2006", "2006-01", "1/2/2006"}

type AmortizationService struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewAmortizationService creates a new AmortizationService. A nil validator
// gets the default one.
func NewAmortizationService(validate *validator.Validate) *AmortizationService {
	if validate == nil {
		validate = NewValidator()
	}
	return &AmortizationService{validate: validate, now: time.Now}
}

// Calculate sanitizes the form and runs the amortization engine.
func (s *AmortizationService) Calculate(
	ctx context.Context,
	form domain.AmortizationForm,
) (*domain.AmortizationResult, domain.LoanInput, error) {

	if err := validateForm(s.validate, form); err != nil {
		return nil, domain.LoanInput{}, err
	}

	input := domain.LoanInput{
		Principal:        money.ParseCents(form.Principal.String()),
		TermYears:        money.SanitizeInt(form.TermYears.String()),
		AnnualRate:       money.ParseRate(form.AnnualRate.String()),
		FirstPaymentDate: s.parseDate(ctx, form.FirstPaymentDate.String()),
	}

	result := ComputeAmortization(input, form.GroupByYear)
	if result == nil {
		logger.CtxWarn(ctx, "amortization inputs produced no schedule",
			slog.Int64("principal", input.Principal),
			slog.Int("term_years", input.TermYears),
			slog.Float64("annual_rate", input.AnnualRate),
		)
		return nil, input, ErrNoSchedule
	}

	logger.CtxDebug(ctx, "amortization computed",
		slog.Int("rows", len(result.Schedule)),
		slog.Int64("monthly_payment", result.MonthlyPayment),
		slog.Bool("group_by_year", form.GroupByYear),
	)
	return result, input, nil
}

// parseDate falls back to the first day of the current month when the date
// cannot be read.
func (s *AmortizationService) parseDate(ctx context.Context, raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	now := s.now()
	logger.CtxWarn(ctx, "unreadable first payment date, using current month", slog.String("value", raw))
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
