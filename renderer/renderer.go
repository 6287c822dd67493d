// Package renderer builds the markdown views of a valuation.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/dcf"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the complete valuation report.
func ReportMarkdown(r *dcf.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := r.Capital.Currency

	doc.H1(fmt.Sprintf("Discounted Cash Flow: %s (%s)", r.Name, r.Ticker))
	doc.PlainText(fmt.Sprintf("Valuation as of %s. Monetary amounts in billions of %s.", r.AsOf, cur))

	doc.H2("Assumptions")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Assumption", "Value"},
		Rows: [][]string{
			{"Forecast horizon", fmt.Sprintf("%d years", r.Assumptions.ForecastYears)},
			{"FCFF growth", percent(r.Assumptions.FCFFGrowth)},
			{"Terminal growth", percent(r.Assumptions.TerminalGrowth)},
			{"Beta", fmt.Sprintf("%.2f", r.Assumptions.Beta)},
			{"Expected market return", percent(r.Assumptions.MarketReturn)},
		},
	})

	doc.H2("Capital Structure")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Position", "Amount"},
		Rows: [][]string{
			{"Market capitalization", billions(r.Capital.MarketCap, cur)},
			{"Total debt", billions(r.Capital.TotalDebt, cur)},
			{"Cash and equivalents", billions(r.Capital.TotalCash, cur)},
			{"Net debt", billions(r.Capital.NetDebt, cur)},
			{"Shares outstanding", fmt.Sprintf("%.3f B", r.Capital.SharesOutstanding)},
		},
	})

	doc.H2("Cost of Capital")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Rate", "Value"},
		Rows: [][]string{
			{"Risk-free rate (10Y treasury)", percent(r.Rates.RiskFree)},
			{"Cost of equity (CAPM)", percent(r.Rates.CostOfEquity)},
			{"Cost of debt", percent(r.Rates.CostOfDebt)},
			{"Equity weight", percent(r.Rates.EquityWeight)},
			{"Debt weight", percent(r.Rates.DebtWeight)},
			{"Tax rate", percent(r.Rates.TaxRate)},
			{md.Bold("WACC"), md.Bold(percent(r.Rates.WACC))},
		},
	})

	doc.H2("Free Cash Flow to the Firm")
	base := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Fiscal Year", "Operating Cash Flow", "Capital Expenditure", "FCFF"},
	}
	for _, p := range r.History.Base() {
		base.Rows = append(base.Rows, []string{
			p.Date.String(),
			fmt.Sprintf("%.2f", p.CashFromOperations),
			fmt.Sprintf("%.2f", p.CapitalExpenditure),
			fmt.Sprintf("%.2f", p.FCFF),
		})
	}
	doc.Table(base)
	doc.PlainText(fmt.Sprintf("Base FCFF, the mean of the %d most recent complete fiscal years: %s.",
		len(r.History.Base()), billions(r.History.BaseFCFF(), cur)))

	if chart := fcffChart(r.History, r.Projection); chart != "" {
		doc.CodeBlocks(md.SyntaxHighlightText, chart)
	}

	doc.H2("Projection")
	projection := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Year", "Projected FCFF", "Discounted"},
	}
	for i, p := range r.Projection {
		discounted := ""
		if i < len(r.Valuation.DiscountedFCFF) {
			discounted = fmt.Sprintf("%.2f", r.Valuation.DiscountedFCFF[i])
		}
		projection.Rows = append(projection.Rows, []string{
			strconv.Itoa(p.Year),
			fmt.Sprintf("%.2f", p.FCFF),
			discounted,
		})
	}
	doc.Table(projection)

	doc.H2("Valuation")
	sum := 0.0
	for _, d := range r.Valuation.DiscountedFCFF {
		sum += d
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Sum of discounted FCFF", billions(sum, cur)},
			{"Terminal value", billions(r.Valuation.TerminalValue, cur)},
			{"Terminal value (discounted)", billions(r.Valuation.TerminalValueDiscounted, cur)},
			{"Enterprise value", billions(r.Valuation.EnterpriseValue, cur)},
			{"Net debt", billions(r.Capital.NetDebt, cur)},
			{"Equity value", billions(r.Valuation.EquityValue, cur)},
			{md.Bold("Fair value per share"), md.Bold(dcf.M(r.Valuation.FairValuePerShare, cur).String())},
		},
	})

	doc.H2("Sensitivity")
	doc.PlainText("Fair value per share across discount rates (rows) and terminal growth rates (columns).")
	doc.Table(sensitivityTable(r.Sensitivity))

	return doc.String()
}

// percent formats a fractional rate for display.
func percent(rate float64) string {
	return dcf.Percent(100 * rate).String()
}

// billions formats an amount held in billions.
func billions(v float64, cur string) string {
	return dcf.M(v, cur).String() + " B"
}
