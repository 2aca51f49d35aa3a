package http

import (
	"net/http"

	"mortgage-calc/domain"
	"mortgage-calc/service"
)

type ScenarioHandler struct {
	service  *service.ScenarioService
	renderer *Renderer
}

func NewScenarioHandler(service *service.ScenarioService, renderer *Renderer) *ScenarioHandler {
	return &ScenarioHandler{service: service, renderer: renderer}
}

type scenarioView struct {
	TermYears  int              `json:"termYears"`
	AnnualRate float64          `json:"annualRate"`
	Mortgage   mortgageResponse `json:"mortgage"`
	TotalCost  Amount           `json:"totalCost"`
	Best       bool             `json:"best"`
}

type scenarioResponse struct {
	Scenarios []scenarioView `json:"scenarios"`
	Best      int            `json:"best"`
}

func (h *ScenarioHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	var form domain.ScenarioForm
	if !decodeJSON(w, r, &form) {
		return
	}

	result, err := h.service.Compare(r.Context(), form)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	f := h.renderer.formatterFor(r)
	views := make([]scenarioView, 0, len(result.Scenarios))
	for i, sc := range result.Scenarios {
		views = append(views, scenarioView{
			TermYears:  sc.TermYears,
			AnnualRate: sc.AnnualRate,
			Mortgage:   renderMortgage(f, sc.Result),
			TotalCost:  amount(f, sc.TotalCost),
			Best:       i == result.Best,
		})
	}

	writeJSON(r.Context(), w, http.StatusOK, scenarioResponse{Scenarios: views, Best: result.Best})
}
