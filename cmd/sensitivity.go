package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dcf/renderer"
	"github.com/google/subcommands"
)

type sensitivityCmd struct {
	valuationFlags
}

func (*sensitivityCmd) Name() string { return "sensitivity" }
func (*sensitivityCmd) Synopsis() string {
	return "shows how the fair value reacts to the discount and terminal growth rates"
}
func (*sensitivityCmd) Usage() string {
	return `dcv sensitivity -ticker <TICKER> [<assumption flags>]

  Runs the valuation and prints only the sensitivity grid: fair values per
  share over a range of WACC and terminal growth rates around the base case.

Usage Examples:
# How sturdy is the Apple fair value?
$ dcv sensitivity -ticker AAPL.US

`
}

func (c *sensitivityCmd) SetFlags(f *flag.FlagSet) { c.valuationFlags.SetFlags(f) }

func (c *sensitivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -ticker is required.")
		return subcommands.ExitUsageError
	}

	report, err := c.run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SensitivityMarkdown(report))
	return subcommands.ExitSuccess
}
