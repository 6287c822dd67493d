package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dcf"
	"github.com/etnz/dcf/date"
	"github.com/google/subcommands"
)

type rateCmd struct {
	fredKey string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "shows the current risk-free rate" }
func (*rateCmd) Usage() string {
	return `dcv rate

  Fetches the 10-year treasury yield (FRED series DGS10), the risk-free rate
  every valuation discounts against.

Usage Examples:
$ dcv rate

`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fredKey, "fred-key", "", "FRED API key. Takes precedence over the "+fred_api_key+" environment variable.")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, err := fredProvider(c.fredKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rate, err := rates.RiskFreeRate(date.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(fmt.Sprintf("The risk-free rate (10-year treasury, DGS10) is **%s**.\n", dcf.Percent(100*rate)))
	return subcommands.ExitSuccess
}
