package dcf

import (
	"fmt"
	"math"
)

// Valuation is the outcome of discounting one projection series.
// Amounts are in billions, except FairValuePerShare which is per share.
type Valuation struct {
	DiscountedFCFF          []float64 // aligned with the projection series
	TerminalValue           float64
	TerminalValueDiscounted float64
	EnterpriseValue         float64
	EquityValue             float64
	FairValuePerShare       float64
}

// Value discounts the projected cash flows and a Gordon-growth terminal value
// into a per-share fair value.
//
// wacc must strictly exceed terminalGrowth for the terminal value to be
// finite and positive; otherwise the valuation is rejected with
// ErrInvalidRateRelation. netDebt and shares are in billions (shares in
// billions of shares), so the equity value per share comes out in currency
// units.
func Value(projection ProjectionSeries, wacc, terminalGrowth, netDebt, shares float64) (Valuation, error) {
	if len(projection) == 0 {
		return Valuation{}, fmt.Errorf("%w: empty projection", ErrDataInsufficient)
	}
	if shares <= 0 {
		return Valuation{}, fmt.Errorf("%w: shares outstanding must be positive, got %g billion", ErrDataInsufficient, shares)
	}
	if wacc <= terminalGrowth {
		return Valuation{}, fmt.Errorf("%w: wacc %s vs terminal growth %s", ErrInvalidRateRelation, Percent(100*wacc), Percent(100*terminalGrowth))
	}

	v := Valuation{DiscountedFCFF: make([]float64, 0, len(projection))}
	sum := 0.0
	for i, p := range projection {
		d := p.FCFF / math.Pow(1+wacc, float64(i+1))
		v.DiscountedFCFF = append(v.DiscountedFCFF, d)
		sum += d
	}

	last := projection[len(projection)-1].FCFF
	v.TerminalValue = last * (1 + terminalGrowth) / (wacc - terminalGrowth)
	v.TerminalValueDiscounted = v.TerminalValue / math.Pow(1+wacc, float64(len(projection)))
	v.EnterpriseValue = sum + v.TerminalValueDiscounted
	v.EquityValue = v.EnterpriseValue - netDebt
	v.FairValuePerShare = v.EquityValue / shares
	return v, nil
}
