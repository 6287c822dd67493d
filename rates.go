package dcf

import (
	"math"
	"sort"
)

// TaxRate is the fixed corporate tax rate applied to the debt side of the
// weighted average cost of capital.
const TaxRate = 0.21

// defaultCostOfDebt stands in when the balance sheet carries no debt.
const defaultCostOfDebt = 0.02

// CapitalStructure is the point-in-time snapshot of how the company is
// financed, assembled at acquisition time. Amounts are in billions.
type CapitalStructure struct {
	MarketCap         float64
	TotalDebt         float64
	TotalCash         float64
	NetDebt           float64 // TotalDebt − TotalCash, negative means net cash
	SharesOutstanding float64 // billions of shares
	InterestExpense   float64 // most recent reported, absolute
	Currency          string
}

// NewCapitalStructure assembles the snapshot from the company profile and the
// income statement. The interest expense is the most recent reported value in
// absolute terms, zero when the statement never reports one.
func NewCapitalStructure(p Profile, income []IncomePeriod) CapitalStructure {
	cs := CapitalStructure{
		MarketCap:         p.MarketCap,
		TotalDebt:         p.TotalDebt,
		TotalCash:         p.TotalCash,
		NetDebt:           p.TotalDebt - p.TotalCash,
		SharesOutstanding: p.SharesOutstanding,
		Currency:          p.Currency,
	}

	rows := make([]IncomePeriod, len(income))
	copy(rows, income)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].InterestExpense != nil {
			cs.InterestExpense = math.Abs(*rows[i].InterestExpense)
			break
		}
	}
	return cs
}

// DiscountRates carries the cost-of-capital derivation for one run.
// All rates are fractions.
type DiscountRates struct {
	RiskFree     float64
	CostOfEquity float64
	CostOfDebt   float64
	EquityWeight float64
	DebtWeight   float64
	TaxRate      float64
	WACC         float64
}

// ComputeDiscountRates derives the weighted average cost of capital.
//
// The cost of equity follows the CAPM: riskFree + beta × (marketReturn −
// riskFree). The cost of debt is interest expense over total debt, or
// defaultCostOfDebt when there is no debt. Weights come from market cap and
// net debt over total capital; a net cash position yields a negative debt
// weight which lowers the blended rate and is deliberately not clamped. A
// zero total capital is treated as all-equity.
func ComputeDiscountRates(riskFree float64, a AssumptionSet, cs CapitalStructure) DiscountRates {
	r := DiscountRates{
		RiskFree:     riskFree,
		CostOfEquity: riskFree + a.Beta*(a.MarketReturn-riskFree),
		CostOfDebt:   defaultCostOfDebt,
		TaxRate:      TaxRate,
	}
	if cs.TotalDebt > 0 {
		r.CostOfDebt = cs.InterestExpense / cs.TotalDebt
	}

	totalCapital := cs.MarketCap + cs.NetDebt
	if totalCapital == 0 {
		r.EquityWeight, r.DebtWeight = 1, 0
	} else {
		r.EquityWeight = cs.MarketCap / totalCapital
		r.DebtWeight = cs.NetDebt / totalCapital
	}

	r.WACC = r.EquityWeight*r.CostOfEquity + r.DebtWeight*r.CostOfDebt*(1-r.TaxRate)
	return r
}
