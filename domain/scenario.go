package domain

// Scenario is one what-if mortgage evaluation.
type Scenario struct {
	TermYears  int            `json:"termYears"`
	AnnualRate float64        `json:"annualRate"`
	Result     MortgageResult `json:"result"`
	TotalCost  int64          `json:"totalCost"`
}

type ScenarioResult struct {
	Scenarios []Scenario `json:"scenarios"`
	Best      int        `json:"best"` // -1 si ningún escenario tiene pago
}
