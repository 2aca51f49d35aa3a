package http

import (
	"net/http"

	"mortgage-calc/domain"
	"mortgage-calc/money"
	"mortgage-calc/service"
)

type MortgageHandler struct {
	service  *service.MortgageService
	renderer *Renderer
}

func NewMortgageHandler(service *service.MortgageService, renderer *Renderer) *MortgageHandler {
	return &MortgageHandler{service: service, renderer: renderer}
}

type mortgageResponse struct {
	Locale         string `json:"locale"`
	Currency       string `json:"currency"`
	FinancedAmount Amount `json:"financedAmount"`
	NumPayments    int    `json:"numPayments"`
	MonthlyPayment Amount `json:"monthlyPayment"`
	TotalPayments  Amount `json:"totalPayments"`
	TotalInterest  Amount `json:"totalInterest"`
}

func (h *MortgageHandler) CalculateMortgage(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var form domain.MortgageForm
	if !decodeJSON(w, r, &form) {
		return
	}

	result, err := h.service.Calculate(r.Context(), form)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, renderMortgage(h.renderer.formatterFor(r), result))
}

func renderMortgage(f *money.Formatter, result domain.MortgageResult) mortgageResponse {
	return mortgageResponse{
		Locale:         f.Locale(),
		Currency:       f.Currency(),
		FinancedAmount: amount(f, result.FinancedAmount),
		NumPayments:    result.NumPayments,
		MonthlyPayment: amount(f, result.MonthlyPayment),
		TotalPayments:  amount(f, result.TotalPayments),
		TotalInterest:  amount(f, result.TotalInterest),
	}
}
