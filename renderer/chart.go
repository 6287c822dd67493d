package renderer

import (
	"fmt"

	"github.com/etnz/dcf"
	"github.com/guptarohit/asciigraph"
)

// fcffChart draws the historical free cash flow followed by the projected
// one as a single ASCII line, empty when there is not enough to draw.
func fcffChart(hist dcf.FinancialHistory, projection dcf.ProjectionSeries) string {
	data := make([]float64, 0, len(hist.Periods)+len(projection))
	for _, p := range hist.Periods {
		data = append(data, p.FCFF)
	}
	data = append(data, projection.Values()...)
	if len(hist.Periods) == 0 || len(data) < 2 {
		return ""
	}

	from := hist.Periods[0].Date.Year()
	to := hist.LastYear()
	if len(projection) > 0 {
		to = projection[len(projection)-1].Year
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("FCFF %d to %d, billions", from, to)),
	)
}
