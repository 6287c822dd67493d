package dcf

import (
	"fmt"
	"strings"

	"github.com/etnz/dcf/date"
)

// Run executes one complete valuation: fetch, compute, assemble.
//
// The ticker is case-insensitive and uppercased before use. All fetches
// happen before any computation; the first error aborts the run and nothing
// partially computed is returned. Given identical assumptions and identical
// fetched data, two runs produce identical results.
func Run(ticker string, a AssumptionSet, market MarketDataProvider, rates RateProvider) (*Report, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("%w: empty ticker", ErrDataUnavailable)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	// Acquisition.
	stmts, err := market.Financials(ticker)
	if err != nil {
		return nil, err
	}
	profile, err := market.Profile(ticker)
	if err != nil {
		return nil, err
	}
	asOf := date.Today()
	riskFree, err := rates.RiskFreeRate(asOf)
	if err != nil {
		return nil, err
	}

	// Valuation.
	history, err := NewFinancialHistory(stmts.CashFlow)
	if err != nil {
		return nil, err
	}
	capital := NewCapitalStructure(profile, stmts.Income)
	discount := ComputeDiscountRates(riskFree, a, capital)
	projection := Project(history.BaseFCFF(), a.FCFFGrowth, a.ForecastYears, history.LastYear())
	valuation, err := Value(projection, discount.WACC, a.TerminalGrowth, capital.NetDebt, capital.SharesOutstanding)
	if err != nil {
		return nil, err
	}
	grid := BuildSensitivityGrid(projection, discount.WACC, capital.NetDebt, capital.SharesOutstanding)

	return &Report{
		Ticker:      ticker,
		Name:        profile.Name,
		AsOf:        asOf,
		Assumptions: a,
		History:     history,
		Capital:     capital,
		Rates:       discount,
		Projection:  projection,
		Valuation:   valuation,
		Sensitivity: grid,
	}, nil
}
