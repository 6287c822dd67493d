package dcf

import (
	"fmt"
	"sort"

	"github.com/etnz/dcf/date"
)

// baseWindow is the number of trailing periods averaged into the base FCFF.
const baseWindow = 3

// FiscalPeriod is one cleaned period of the free-cash-flow history.
type FiscalPeriod struct {
	Date               date.Date
	CashFromOperations float64 // billions
	CapitalExpenditure float64 // billions, negative outflow
	FCFF               float64 // CashFromOperations + CapitalExpenditure
}

// FinancialHistory is the chronologically ascending sequence of fiscal
// periods that carry both operating cash flow and capital expenditure.
type FinancialHistory struct {
	Periods []FiscalPeriod
}

// NewFinancialHistory cleans raw cash-flow periods into a usable history:
// periods are reordered chronologically ascending, periods missing either
// line item are dropped, and the free cash flow to the firm is computed as
// their sum (capital expenditure being a negative outflow).
//
// An history with zero valid periods is no basis for a valuation and yields
// an error wrapping ErrDataInsufficient.
func NewFinancialHistory(raw []CashFlowPeriod) (FinancialHistory, error) {
	clean := make([]CashFlowPeriod, 0, len(raw))
	for _, p := range raw {
		if p.CashFromOperations == nil || p.CapitalExpenditure == nil {
			continue
		}
		clean = append(clean, p)
	}
	sort.Slice(clean, func(i, j int) bool { return clean[i].Date.Before(clean[j].Date) })

	if len(clean) == 0 {
		return FinancialHistory{}, fmt.Errorf("%w: no fiscal period reports both operating cash flow and capital expenditure", ErrDataInsufficient)
	}

	h := FinancialHistory{Periods: make([]FiscalPeriod, 0, len(clean))}
	for _, p := range clean {
		cfo, capex := *p.CashFromOperations, *p.CapitalExpenditure
		h.Periods = append(h.Periods, FiscalPeriod{
			Date:               p.Date,
			CashFromOperations: cfo,
			CapitalExpenditure: capex,
			FCFF:               cfo + capex,
		})
	}
	return h, nil
}

// BaseFCFF is the arithmetic mean of the most recent periods. The window is
// baseWindow periods, shrinking to whatever is available when the history is
// shorter: a single valid period is enough to anchor a projection.
func (h FinancialHistory) BaseFCFF() float64 {
	n := len(h.Periods)
	w := baseWindow
	if n < w {
		w = n
	}
	if w == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range h.Periods[n-w:] {
		sum += p.FCFF
	}
	return sum / float64(w)
}

// Base returns the fiscal periods averaged into the base FCFF, oldest first.
func (h FinancialHistory) Base() []FiscalPeriod {
	return h.Tail(baseWindow)
}

// LastYear is the fiscal year of the most recent period; projections start
// the year after.
func (h FinancialHistory) LastYear() int {
	return h.Periods[len(h.Periods)-1].Date.Year()
}

// Tail returns up to the n most recent periods, oldest first.
func (h FinancialHistory) Tail(n int) []FiscalPeriod {
	if len(h.Periods) <= n {
		return h.Periods
	}
	return h.Periods[len(h.Periods)-n:]
}
