package http

import (
	"net/http"
)

type Handlers struct {
	Amortization *AmortizationHandler
	Mortgage     *MortgageHandler
	DeedStamps   *DeedStampHandler
	Scenarios    *ScenarioHandler
}

// NewRouter mounts the calculator endpoints behind rate limiting and request
// IDs. /healthz is not rate limited.
func NewRouter(h Handlers, limiter Limiter) http.Handler {
	mux := http.NewServeMux()

	limited := func(fn http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, fn)
	}

	mux.Handle("/calculators/amortization", limited(h.Amortization.CalculateAmortization))
	mux.Handle("/calculators/mortgage", limited(h.Mortgage.CalculateMortgage))
	mux.Handle("/calculators/mortgage/scenarios", limited(h.Scenarios.CompareScenarios))
	mux.Handle("/calculators/deed-stamps", limited(h.DeedStamps.CalculateDeedStamps))
	mux.HandleFunc("GET /healthz", Health)

	return RequestIDMiddleware(mux)
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
