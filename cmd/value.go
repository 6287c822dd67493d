package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dcf"
	"github.com/etnz/dcf/renderer"
	"github.com/google/subcommands"
)

// valuationFlags holds the ticker, assumption and API key flags shared by the
// commands that run the full pipeline.
type valuationFlags struct {
	ticker       string
	years        int
	growth       float64
	terminal     float64
	beta         float64
	marketReturn float64
	eodhdKey     string
	fredKey      string
}

func (v *valuationFlags) SetFlags(f *flag.FlagSet) {
	d := dcf.DefaultAssumptions()
	f.StringVar(&v.ticker, "ticker", "", "Ticker in the EODHD format CODE.EXCHANGE, like AAPL.US.")
	f.IntVar(&v.years, "years", d.ForecastYears, "Explicit forecast horizon in years, within [5, 15].")
	f.Float64Var(&v.growth, "growth", d.FCFFGrowth, "Yearly FCFF growth rate over the horizon, within [0, 0.30].")
	f.Float64Var(&v.terminal, "terminal-growth", d.TerminalGrowth, "Perpetual growth rate beyond the horizon, within [0, 0.10].")
	f.Float64Var(&v.beta, "beta", d.Beta, "CAPM beta of the company.")
	f.Float64Var(&v.marketReturn, "market-return", d.MarketReturn, "Expected total market return.")
	f.StringVar(&v.eodhdKey, "eodhd-key", "", "EODHD API key. Takes precedence over the "+eodhd_api_key+" environment variable. You can get one at https://eodhd.com/")
	f.StringVar(&v.fredKey, "fred-key", "", "FRED API key. Takes precedence over the "+fred_api_key+" environment variable.")
}

// assumptions returns the assumption set selected by the flags.
func (v *valuationFlags) assumptions() dcf.AssumptionSet {
	return dcf.AssumptionSet{
		ForecastYears:  v.years,
		FCFFGrowth:     v.growth,
		TerminalGrowth: v.terminal,
		Beta:           v.beta,
		MarketReturn:   v.marketReturn,
	}
}

// run executes the whole pipeline for the flags.
func (v *valuationFlags) run() (*dcf.Report, error) {
	market, err := eodhdProvider(v.eodhdKey)
	if err != nil {
		return nil, err
	}
	rates, err := fredProvider(v.fredKey)
	if err != nil {
		return nil, err
	}
	return dcf.Run(v.ticker, v.assumptions(), market, rates)
}

type valueCmd struct {
	valuationFlags
}

func (*valueCmd) Name() string { return "value" }
func (*valueCmd) Synopsis() string {
	return "runs a discounted cash flow valuation of one company"
}
func (*valueCmd) Usage() string {
	return `dcv value -ticker <TICKER> [<assumption flags>]

  Runs the complete valuation: fetches the fundamentals and the risk-free
  rate, projects free cash flow to the firm, discounts it, and prints the
  report with a fair value per share and its sensitivity grid.

Usage Examples:
# Value Apple with the default assumptions.
$ dcv value -ticker AAPL.US

# Challenge the growth assumptions.
$ dcv value -ticker AAPL.US -growth 0.08 -terminal-growth 0.03

`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) { c.valuationFlags.SetFlags(f) }

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required.")
		return subcommands.ExitUsageError
	}

	report, err := c.run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
