package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/dcf/renderer"
	"github.com/google/subcommands"
)

type financialsCmd struct {
	ticker   string
	eodhdKey string
}

func (*financialsCmd) Name() string { return "financials" }
func (*financialsCmd) Synopsis() string {
	return "shows the yearly financial statements a valuation is built on"
}
func (*financialsCmd) Usage() string {
	return `dcv financials -ticker <TICKER>

  Fetches the yearly statements from EODHD and prints them normalized to
  billions: operating cash flow, capital expenditure and the resulting free
  cash flow to the firm, interest expense, debt and cash.

Usage Examples:
# Inspect what a valuation of Apple would be built on.
$ dcv financials -ticker AAPL.US

`
}

func (c *financialsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker in the EODHD format CODE.EXCHANGE, like AAPL.US.")
	f.StringVar(&c.eodhdKey, "eodhd-key", "", "EODHD API key. Takes precedence over the "+eodhd_api_key+" environment variable.")
}

func (c *financialsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker := strings.ToUpper(strings.TrimSpace(c.ticker))
	if ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required.")
		return subcommands.ExitUsageError
	}

	market, err := eodhdProvider(c.eodhdKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stmts, err := market.Financials(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FinancialsMarkdown(ticker, stmts))
	return subcommands.ExitSuccess
}
