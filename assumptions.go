package dcf

import "fmt"

// AssumptionSet carries the user-chosen valuation assumptions for one run.
// All rates are fractions: 0.14 means 14%.
type AssumptionSet struct {
	// ForecastYears is the explicit forecast horizon, in years.
	ForecastYears int
	// FCFFGrowth compounds the base free cash flow over the horizon.
	FCFFGrowth float64
	// TerminalGrowth is the perpetual growth rate beyond the horizon.
	TerminalGrowth float64
	// Beta scales the equity risk premium in the CAPM.
	Beta float64
	// MarketReturn is the expected total market return.
	MarketReturn float64
}

// DefaultAssumptions returns a reasonable starting point: a 10-year horizon,
// 14% growth, 5% terminal growth, a market beta of 1 and a 9% market return.
func DefaultAssumptions() AssumptionSet {
	return AssumptionSet{
		ForecastYears:  10,
		FCFFGrowth:     0.14,
		TerminalGrowth: 0.05,
		Beta:           1.0,
		MarketReturn:   0.09,
	}
}

// Validate checks each assumption against its allowed range.
func (a AssumptionSet) Validate() error {
	if a.ForecastYears < 5 || a.ForecastYears > 15 {
		return fmt.Errorf("forecast years must be within [5, 15], got %d", a.ForecastYears)
	}
	if a.FCFFGrowth < 0 || a.FCFFGrowth > 0.30 {
		return fmt.Errorf("FCFF growth rate must be within [0%%, 30%%], got %s", Percent(100*a.FCFFGrowth))
	}
	if a.TerminalGrowth < 0 || a.TerminalGrowth > 0.10 {
		return fmt.Errorf("terminal growth rate must be within [0%%, 10%%], got %s", Percent(100*a.TerminalGrowth))
	}
	if a.Beta < 0 {
		return fmt.Errorf("beta must be zero or positive, got %g", a.Beta)
	}
	if a.MarketReturn < 0 {
		return fmt.Errorf("market return must be zero or positive, got %s", Percent(100*a.MarketReturn))
	}
	return nil
}
