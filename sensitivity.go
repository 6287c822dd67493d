package dcf

import (
	"math"
	"strconv"
)

// Sensitivity grid bounds: rows sweep the discount rate around the base wacc,
// columns sweep the terminal growth rate over a fixed band.
const (
	gridRateDown    = 0.010
	gridRateUp      = 0.015
	gridRateStep    = 0.005
	gridGrowthStart = 0.035
	gridGrowthStop  = 0.060
	gridGrowthStep  = 0.005
)

// NotApplicable marks grid cells whose discount rate does not exceed the
// terminal growth rate: the terminal value there is not finite and positive.
const NotApplicable = "N/A"

// Cell is one sensitivity grid entry: a fair value per share, or not
// applicable.
type Cell struct {
	Valid     bool
	FairValue float64 // rounded to 2 decimals
}

func (c Cell) String() string {
	if !c.Valid {
		return NotApplicable
	}
	return strconv.FormatFloat(c.FairValue, 'f', 2, 64)
}

// SensitivityGrid is the fair value per share over discount-rate rows ×
// terminal-growth columns.
type SensitivityGrid struct {
	Rates   []float64 // row discount rates
	Growths []float64 // column terminal growth rates
	Cells   [][]Cell  // Cells[i][j] for Rates[i] × Growths[j]
}

// BuildSensitivityGrid recomputes the valuation for every (discount rate,
// terminal growth) pair around the base discount rate. Each cell is a full
// independent derivation from the projection, not a perturbation of the base
// case.
func BuildSensitivityGrid(projection ProjectionSeries, wacc, netDebt, shares float64) SensitivityGrid {
	g := SensitivityGrid{
		Rates:   rateRange(wacc-gridRateDown, wacc+gridRateUp, gridRateStep),
		Growths: rateRange(gridGrowthStart, gridGrowthStop, gridGrowthStep),
	}
	for _, rate := range g.Rates {
		row := make([]Cell, 0, len(g.Growths))
		for _, growth := range g.Growths {
			row = append(row, cell(projection, rate, growth, netDebt, shares))
		}
		g.Cells = append(g.Cells, row)
	}
	return g
}

func cell(projection ProjectionSeries, rate, growth, netDebt, shares float64) Cell {
	if rate <= growth {
		return Cell{}
	}
	v, err := Value(projection, rate, growth, netDebt, shares)
	if err != nil {
		return Cell{}
	}
	return Cell{Valid: true, FairValue: math.Round(v.FairValuePerShare*100) / 100}
}

// rateRange enumerates the half-open range [start, stop) by step.
func rateRange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	rates := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		rates = append(rates, start+float64(i)*step)
	}
	return rates
}
