package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"mortgage-calc/domain"
	"mortgage-calc/logger"
	"mortgage-calc/money"
)

type DeedStampService struct {
	validate *validator.Validate
}

func NewDeedStampService(validate *validator.Validate) *DeedStampService {
	if validate == nil {
		validate = NewValidator()
	}
	return &DeedStampService{validate: validate}
}

// Calculate sanitizes the form and runs the deed-stamp engine.
func (s *DeedStampService) Calculate(
	ctx context.Context,
	form domain.DeedStampForm,
) (domain.TaxResult, domain.DeedStampInput, error) {

	if err := validateForm(s.validate, form); err != nil {
		return domain.TaxResult{}, domain.DeedStampInput{}, err
	}

	input := domain.DeedStampInput{
		SalesPrice:   money.ParseCents(form.SalesPrice.String()),
		LoanAmount:   money.ParseCents(form.LoanAmount.String()),
		Jurisdiction: domain.ParseJurisdiction(form.Jurisdiction.String()),
		PropertyType: domain.ParsePropertyType(form.PropertyType.String()),
	}

	result := ComputeDeedStamps(input)

	logger.CtxDebug(ctx, "deed stamps computed",
		slog.String("jurisdiction", string(input.Jurisdiction)),
		slog.Int64("total", result.Total),
	)
	return result, input, nil
}
