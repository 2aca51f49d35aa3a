package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"mortgage-calc/domain"
	"mortgage-calc/logger"
	"mortgage-calc/money"
)

// ScenarioService compares what-if mortgages across terms and rates.
type ScenarioService struct {
	validate     *validator.Validate
	maxScenarios int
	workers      int
}

func NewScenarioService(validate *validator.Validate, maxScenarios, workers int) *ScenarioService {
	if validate == nil {
		validate = NewValidator()
	}
	if maxScenarios <= 0 {
		maxScenarios = DefaultMaxScenarios
	}
	if workers <= 0 {
		workers = DefaultScenarioWorkers
	}
	return &ScenarioService{validate: validate, maxScenarios: maxScenarios, workers: workers}
}

// Compare evaluates every (term, rate) pair. Scenarios come back term-major in
// input order; Best points at the cheapest one by total cost (down payment
// plus all payments), or -1 when no scenario has a payment.
func (s *ScenarioService) Compare(
	ctx context.Context,
	form domain.ScenarioForm,
) (domain.ScenarioResult, error) {

	if err := validateForm(s.validate, form); err != nil {
		return domain.ScenarioResult{}, err
	}

	total := len(form.TermYears) * len(form.AnnualRates)
	if total > s.maxScenarios {
		return domain.ScenarioResult{}, fmt.Errorf("%w: %d requested, limit is %d", ErrTooManyScenarios, total, s.maxScenarios)
	}

	scenarios := make([]domain.Scenario, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, term := range form.TermYears {
		for j, rate := range form.AnnualRates {
			idx := i*len(form.AnnualRates) + j
			input := mortgageInput(form.HomePrice, form.DownPayment, rate, term)

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				result := ComputeMortgage(input)
				scenarios[idx] = domain.Scenario{
					TermYears:  input.TermYears,
					AnnualRate: input.AnnualRate,
					Result:     result,
					TotalCost:  input.DownPayment + result.TotalPayments,
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return domain.ScenarioResult{}, fmt.Errorf("compare scenarios: %w", err)
	}

	best := -1
	for i, sc := range scenarios {
		if sc.Result.MonthlyPayment <= 0 {
			continue
		}
		if best == -1 || sc.TotalCost < scenarios[best].TotalCost {
			best = i
		}
	}

	logger.CtxDebug(ctx, "scenarios compared",
		slog.Int("scenarios", total),
		slog.Int("best", best),
		slog.Int64("home_price", money.ParseCents(form.HomePrice.String())),
	)

	return domain.ScenarioResult{Scenarios: scenarios, Best: best}, nil
}
