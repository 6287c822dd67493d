package dcf

import "math"

// ProjectedFlow is one future year of projected free cash flow.
type ProjectedFlow struct {
	Year int
	FCFF float64 // billions
}

// ProjectionSeries is the projected free cash flow over the forecast horizon,
// ordered by year.
type ProjectionSeries []ProjectedFlow

// Project compounds baseFCFF annually over the forecast horizon, starting the
// year after lastYear.
//
// Each year is anchored on the base: FCFF(i) = baseFCFF × (1+growth)^i. The
// value of year i depends only on the base and the exponent, never on the
// previously projected year.
func Project(baseFCFF, growth float64, years, lastYear int) ProjectionSeries {
	series := make(ProjectionSeries, 0, years)
	for i := 1; i <= years; i++ {
		series = append(series, ProjectedFlow{
			Year: lastYear + i,
			FCFF: baseFCFF * math.Pow(1+growth, float64(i)),
		})
	}
	return series
}

// Values returns the projected amounts, ordered by year.
func (s ProjectionSeries) Values() []float64 {
	values := make([]float64, 0, len(s))
	for _, p := range s {
		values = append(values, p.FCFF)
	}
	return values
}
