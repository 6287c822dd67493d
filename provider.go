package dcf

import "github.com/etnz/dcf/date"

// MarketDataProvider is the acquisition boundary for company data.
//
// Implementations own the unit normalization: all monetary amounts they
// return are in billions of the profile currency, share counts in billions of
// shares, and capital expenditure is a negative outflow. A ticker that the
// provider does not know yields an error wrapping ErrDataUnavailable.
type MarketDataProvider interface {
	// Financials returns the periodic financial-statement rows for a ticker.
	Financials(ticker string) (Statements, error)
	// Profile returns the point-in-time company snapshot for a ticker.
	Profile(ticker string) (Profile, error)
}

// RateProvider yields the risk-free rate proxy.
type RateProvider interface {
	// RiskFreeRate returns the most recent available 10-year government bond
	// yield as of the given date, as a fraction (0.045 for 4.5%).
	RiskFreeRate(on date.Date) (float64, error)
}

// Statements are the periodic financial-statement rows for one company, one
// row per fiscal period, in no particular order. Line items a provider did
// not report are nil.
type Statements struct {
	CashFlow []CashFlowPeriod
	Income   []IncomePeriod
	Balance  []BalancePeriod
}

// CashFlowPeriod is one fiscal period of the cash-flow statement.
type CashFlowPeriod struct {
	Date               date.Date
	CashFromOperations *float64
	CapitalExpenditure *float64 // negative outflow
}

// IncomePeriod is one fiscal period of the income statement.
type IncomePeriod struct {
	Date            date.Date
	InterestExpense *float64
}

// BalancePeriod is one fiscal period of the balance sheet.
type BalancePeriod struct {
	Date      date.Date
	TotalDebt *float64
	TotalCash *float64
}

// Profile is the point-in-time company snapshot, sourced at acquisition time.
// Absent fields default to zero, except SharesOutstanding which is required
// for a per-share valuation.
type Profile struct {
	Name              string
	Currency          string
	MarketCap         float64 // billions
	TotalDebt         float64 // billions
	TotalCash         float64 // billions
	SharesOutstanding float64 // billions of shares
}
