package http

import (
	"net/http"

	"mortgage-calc/domain"
	"mortgage-calc/money"
	"mortgage-calc/service"
)

type AmortizationHandler struct {
	service  *service.AmortizationService
	renderer *Renderer
}

func NewAmortizationHandler(service *service.AmortizationService, renderer *Renderer) *AmortizationHandler {
	return &AmortizationHandler{service: service, renderer: renderer}
}

type amortizationRow struct {
	PaymentNumber int    `json:"paymentNumber"`
	Year          int    `json:"year"`
	Month         int    `json:"month,omitempty"`
	Label         string `json:"label"`
	Payment       Amount `json:"payment"`
	Interest      Amount `json:"interest"`
	Principal     Amount `json:"principal"`
	Balance       Amount `json:"balance"`
}

type amortizationResponse struct {
	Locale                string            `json:"locale"`
	Currency              string            `json:"currency"`
	GroupByYear           bool              `json:"groupByYear"`
	Principal             Amount            `json:"principal"`
	MonthlyPayment        Amount            `json:"monthlyPayment"`
	TotalYearlyPayment    Amount            `json:"totalYearlyPayment"`
	TotalLifetimePayments Amount            `json:"totalLifetimePayments"`
	TotalLifetimeInterest Amount            `json:"totalLifetimeInterest"`
	Schedule              []amortizationRow `json:"schedule"`
}

func (h *AmortizationHandler) CalculateAmortization(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var form domain.AmortizationForm
	if !decodeJSON(w, r, &form) {
		return
	}

	result, input, err := h.service.Calculate(r.Context(), form)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	f := h.renderer.formatterFor(r)
	writeJSON(r.Context(), w, http.StatusOK, renderAmortization(f, input, result, form.GroupByYear))
}

func renderAmortization(
	f *money.Formatter,
	input domain.LoanInput,
	result *domain.AmortizationResult,
	groupByYear bool,
) amortizationResponse {
	rows := make([]amortizationRow, 0, len(result.Schedule))
	for _, e := range result.Schedule {
		rows = append(rows, amortizationRow{
			PaymentNumber: e.PaymentNumber,
			Year:          e.Year,
			Month:         e.Month,
			Label:         e.Label,
			Payment:       amount(f, e.PaymentAmount),
			Interest:      amount(f, e.InterestPortion),
			Principal:     amount(f, e.PrincipalPortion),
			Balance:       amount(f, e.RemainingBalance),
		})
	}

	return amortizationResponse{
		Locale:                f.Locale(),
		Currency:              f.Currency(),
		GroupByYear:           groupByYear,
		Principal:             amount(f, input.Principal),
		MonthlyPayment:        amount(f, result.MonthlyPayment),
		TotalYearlyPayment:    amount(f, result.TotalYearlyPayment),
		TotalLifetimePayments: amount(f, result.TotalLifetimePayments),
		TotalLifetimeInterest: amount(f, result.TotalLifetimeInterest),
		Schedule:              rows,
	}
}
