package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/dcf"
	md "github.com/nao1215/markdown"
)

// FinancialsMarkdown renders the raw yearly statements as fetched, most
// recent period first. Line items the provider never reported show as "-".
func FinancialsMarkdown(ticker string, stmts dcf.Statements) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Statements: %s", ticker))
	doc.PlainText("Yearly figures in billions.")

	if len(stmts.CashFlow) > 0 {
		doc.H2("Cash Flow Statement")
		rows := make([]dcf.CashFlowPeriod, len(stmts.CashFlow))
		copy(rows, stmts.CashFlow)
		sort.Slice(rows, func(i, j int) bool { return rows[j].Date.Before(rows[i].Date) })

		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Fiscal Year", "Operating Cash Flow", "Capital Expenditure", "FCFF"},
		}
		for _, row := range rows {
			fcff := "-"
			if row.CashFromOperations != nil && row.CapitalExpenditure != nil {
				fcff = fmt.Sprintf("%.2f", *row.CashFromOperations+*row.CapitalExpenditure)
			}
			table.Rows = append(table.Rows, []string{
				row.Date.String(),
				amount(row.CashFromOperations),
				amount(row.CapitalExpenditure),
				fcff,
			})
		}
		doc.Table(table)
	}

	if len(stmts.Income) > 0 {
		doc.H2("Income Statement")
		rows := make([]dcf.IncomePeriod, len(stmts.Income))
		copy(rows, stmts.Income)
		sort.Slice(rows, func(i, j int) bool { return rows[j].Date.Before(rows[i].Date) })

		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Fiscal Year", "Interest Expense"},
		}
		for _, row := range rows {
			table.Rows = append(table.Rows, []string{row.Date.String(), amount(row.InterestExpense)})
		}
		doc.Table(table)
	}

	if len(stmts.Balance) > 0 {
		doc.H2("Balance Sheet")
		rows := make([]dcf.BalancePeriod, len(stmts.Balance))
		copy(rows, stmts.Balance)
		sort.Slice(rows, func(i, j int) bool { return rows[j].Date.Before(rows[i].Date) })

		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Fiscal Year", "Total Debt", "Cash"},
		}
		for _, row := range rows {
			table.Rows = append(table.Rows, []string{row.Date.String(), amount(row.TotalDebt), amount(row.TotalCash)})
		}
		doc.Table(table)
	}

	return doc.String()
}

// amount formats an optional statement figure, "-" when never reported.
func amount(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
