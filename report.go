package dcf

import "github.com/etnz/dcf/date"

// Report is everything one pipeline run produced, ready to render.
type Report struct {
	Ticker string
	Name   string
	AsOf   date.Date

	Assumptions AssumptionSet
	History     FinancialHistory
	Capital     CapitalStructure
	Rates       DiscountRates
	Projection  ProjectionSeries
	Valuation   Valuation
	Sensitivity SensitivityGrid
}
