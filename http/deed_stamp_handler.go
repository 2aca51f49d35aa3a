package http

import (
	"net/http"

	"mortgage-calc/domain"
	"mortgage-calc/money"
	"mortgage-calc/service"
)

type DeedStampHandler struct {
	service  *service.DeedStampService
	renderer *Renderer
}

func NewDeedStampHandler(service *service.DeedStampService, renderer *Renderer) *DeedStampHandler {
	return &DeedStampHandler{service: service, renderer: renderer}
}

type deedStampResponse struct {
	Locale            string `json:"locale"`
	Currency          string `json:"currency"`
	Jurisdiction      string `json:"jurisdiction"`
	PropertyType      string `json:"propertyType"`
	Surtax            Amount `json:"surtax"`
	SurtaxApplies     bool   `json:"surtaxApplies"`
	MortgageDocStamps Amount `json:"mortgageDocStamps"`
	IntangibleTax     Amount `json:"intangibleTax"`
	TransferTax       Amount `json:"transferTax"`
	Total             Amount `json:"total"`
}

func (h *DeedStampHandler) CalculateDeedStamps(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var form domain.DeedStampForm
	if !decodeJSON(w, r, &form) {
		return
	}

	result, input, err := h.service.Calculate(r.Context(), form)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, renderDeedStamps(h.renderer.formatterFor(r), input, result))
}

func renderDeedStamps(f *money.Formatter, input domain.DeedStampInput, result domain.TaxResult) deedStampResponse {
	return deedStampResponse{
		Locale:            f.Locale(),
		Currency:          f.Currency(),
		Jurisdiction:      string(input.Jurisdiction),
		PropertyType:      string(input.PropertyType),
		Surtax:            amount(f, result.Surtax),
		SurtaxApplies:     result.SurtaxApplies,
		MortgageDocStamps: amount(f, result.MortgageDocStamps),
		IntangibleTax:     amount(f, result.IntangibleTax),
		TransferTax:       amount(f, result.TransferTax),
		Total:             amount(f, result.Total),
	}
}
