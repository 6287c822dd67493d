package eodhd

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/dcf"
	"github.com/etnz/dcf/date"
)

// Profile returns the point-in-time company snapshot for a ticker: name,
// currency, market capitalization, shares outstanding, and the debt and cash
// positions of the most recent balance sheet. Amounts are in billions.
func (p *Provider) Profile(ticker string) (dcf.Profile, error) {
	body, err := p.fetch(ticker)
	if err != nil {
		return dcf.Profile{}, err
	}

	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return dcf.Profile{}, fmt.Errorf("cannot decode fundamentals for %q: %w", ticker, err)
	}

	profile := dcf.Profile{
		Name:     jstring(jobj, "$.General.Name"),
		Currency: jstring(jobj, "$.General.CurrencyCode"),
	}
	if mcap, err := jnumber(jobj, "$.Highlights.MarketCapitalization"); err == nil {
		profile.MarketCap = mcap / 1e9
	}
	shares, err := jnumber(jobj, "$.SharesStats.SharesOutstanding")
	if err != nil || shares <= 0 {
		return dcf.Profile{}, fmt.Errorf("%w: %s reports no shares outstanding", dcf.ErrDataInsufficient, ticker)
	}
	profile.SharesOutstanding = shares / 1e9

	var f fundamentals
	if err := json.Unmarshal(body, &f); err != nil {
		return dcf.Profile{}, fmt.Errorf("cannot decode fundamentals for %q: %w", ticker, err)
	}
	if row, ok := latestBalance(f.Financials.BalanceSheet.Yearly); ok {
		if row.ShortLongTermDebtTotal != nil {
			profile.TotalDebt = *billions(row.ShortLongTermDebtTotal)
		}
		if row.Cash != nil {
			profile.TotalCash = *billions(row.Cash)
		}
	}
	return profile, nil
}

// latestBalance picks the most recent balance sheet row.
func latestBalance(yearly map[string]balanceRow) (balanceRow, bool) {
	var latest balanceRow
	var found bool
	var on date.Date
	for _, row := range yearly {
		if !found || row.Date.After(on) {
			latest, on, found = row, row.Date, true
		}
	}
	return latest, found
}

// jnumber digs a numeric value out of a decoded JSON document. The
// fundamentals API sometimes encodes numbers as strings.
func jnumber(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), err
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		sval, ok := jval.(string)
		if !ok {
			return math.NaN(), fmt.Errorf("value at %q is neither a float nor a string: %v", path, jval)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("value at %q is an invalid string %q: %w", path, sval, err)
		}
	}
	return val, nil
}

// jstring digs a string value out of a decoded JSON document, empty when the
// path does not resolve.
func jstring(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}
