package service

const (
	MonthsPerYear = 12
	MaxTermYears  = 200 // plazos mayores producen un resultado vacío

	// Tasas de Florida por cada $100 del monto redondeado al dólar
	SurtaxRatePer100            = "0.45"
	MortgageDocStampRatePer100  = "0.35"
	MiamiDadeTransferRatePer100 = "0.60"
	OtherTransferRatePer100     = "0.70"
	IntangibleTaxRate           = "0.002"

	DefaultMaxScenarios    = 10
	DefaultScenarioWorkers = 4
)
