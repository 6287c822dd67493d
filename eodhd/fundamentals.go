package eodhd

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/etnz/dcf"
	"github.com/etnz/dcf/date"
	"github.com/shopspring/decimal"
)

// fundamentals is the slice of the EODHD fundamentals document the valuation
// needs. Statement amounts come back as string-encoded numbers, decimal
// accepts both encodings. Line items the API never reported stay nil.
type fundamentals struct {
	Financials struct {
		BalanceSheet struct {
			Yearly map[string]balanceRow `json:"yearly"`
		} `json:"Balance_Sheet"`
		CashFlow struct {
			Yearly map[string]cashFlowRow `json:"yearly"`
		} `json:"Cash_Flow"`
		IncomeStatement struct {
			Yearly map[string]incomeRow `json:"yearly"`
		} `json:"Income_Statement"`
	} `json:"Financials"`
}

type cashFlowRow struct {
	Date                             date.Date        `json:"date"`
	TotalCashFromOperatingActivities *decimal.Decimal `json:"totalCashFromOperatingActivities"`
	CapitalExpenditures              *decimal.Decimal `json:"capitalExpenditures"`
}

type incomeRow struct {
	Date            date.Date        `json:"date"`
	InterestExpense *decimal.Decimal `json:"interestExpense"`
}

type balanceRow struct {
	Date                   date.Date        `json:"date"`
	ShortLongTermDebtTotal *decimal.Decimal `json:"shortLongTermDebtTotal"`
	Cash                   *decimal.Decimal `json:"cash"`
}

// Financials returns the yearly statement rows for a ticker, normalized to
// billions. Capital expenditure comes back from the API as a positive outflow
// magnitude and is flipped to the negative flow the valuation expects.
func (p *Provider) Financials(ticker string) (dcf.Statements, error) {
	body, err := p.fetch(ticker)
	if err != nil {
		return dcf.Statements{}, err
	}

	var f fundamentals
	if err := json.Unmarshal(body, &f); err != nil {
		return dcf.Statements{}, fmt.Errorf("cannot decode fundamentals for %q: %w", ticker, err)
	}

	var stmts dcf.Statements
	for _, row := range f.Financials.CashFlow.Yearly {
		capex := billions(row.CapitalExpenditures)
		if capex != nil {
			*capex = -math.Abs(*capex)
		}
		stmts.CashFlow = append(stmts.CashFlow, dcf.CashFlowPeriod{
			Date:               row.Date,
			CashFromOperations: billions(row.TotalCashFromOperatingActivities),
			CapitalExpenditure: capex,
		})
	}
	for _, row := range f.Financials.IncomeStatement.Yearly {
		stmts.Income = append(stmts.Income, dcf.IncomePeriod{
			Date:            row.Date,
			InterestExpense: billions(row.InterestExpense),
		})
	}
	for _, row := range f.Financials.BalanceSheet.Yearly {
		stmts.Balance = append(stmts.Balance, dcf.BalancePeriod{
			Date:      row.Date,
			TotalDebt: billions(row.ShortLongTermDebtTotal),
			TotalCash: billions(row.Cash),
		})
	}

	if len(stmts.CashFlow) == 0 && len(stmts.Income) == 0 && len(stmts.Balance) == 0 {
		return dcf.Statements{}, fmt.Errorf("%w: eodhd reports no yearly statements for %q", dcf.ErrDataUnavailable, ticker)
	}
	return stmts, nil
}

// billions converts a raw currency amount to billions, nil stays nil.
func billions(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v, _ := d.Float64()
	v /= 1e9
	return &v
}
