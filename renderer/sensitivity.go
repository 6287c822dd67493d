package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dcf"
	md "github.com/nao1215/markdown"
)

// SensitivityMarkdown renders the standalone sensitivity view.
func SensitivityMarkdown(r *dcf.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sensitivity: %s (%s)", r.Name, r.Ticker))
	doc.PlainText(fmt.Sprintf("Fair value per share in %s across discount rates (rows) and terminal growth rates (columns). Cells where the discount rate does not exceed the growth rate are not applicable.", r.Capital.Currency))
	doc.Table(sensitivityTable(r.Sensitivity))

	return doc.String()
}

// sensitivityTable lays the grid out with discount rates down and terminal
// growth rates across.
func sensitivityTable(g dcf.SensitivityGrid) md.TableSet {
	header := []string{"WACC \\ Growth"}
	alignment := []md.TableAlignment{md.AlignLeft}
	for _, growth := range g.Growths {
		header = append(header, percent(growth))
		alignment = append(alignment, md.AlignRight)
	}

	table := md.TableSet{Alignment: alignment, Header: header}
	for i, rate := range g.Rates {
		row := []string{percent(rate)}
		for _, cell := range g.Cells[i] {
			row = append(row, cell.String())
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
