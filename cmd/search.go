package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// searchCmd implements the "search" command.
type searchCmd struct {
	eodhdKey string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "searches for tickers on EODHD" }
func (*searchCmd) Usage() string {
	return `dcv search <search term>

  Searches for companies via the EOD Historical Data API and prints
  ready-to-use 'dcv' commands for the results.

Usage Examples:
$ dcv search apple

`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.eodhdKey, "eodhd-key", "", "EODHD API key. Takes precedence over the "+eodhd_api_key+" environment variable. You can get one at https://eodhd.com/")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	searchTerm := strings.Join(f.Args(), " ")

	market, err := eodhdProvider(c.eodhdKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	results, err := market.Search(searchTerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching tickers: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'.\n", searchTerm)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found %d results for '%s':\n\n", len(results), searchTerm)

	for _, item := range results {
		ticker := item.Code + "." + item.Exchange

		fmt.Printf("➡️   Name       : %s (%s)\n", item.Name, ticker)
		fmt.Printf("    Type        : %s, Country: %s, Currency: %s\n", item.Type, item.Country, item.Currency)
		fmt.Printf("    Prev. Close : %.2f on %s\n", item.PreviousClose, item.PreviousCloseDate)
		fmt.Printf("    $ dcv value -ticker %s\n\n", ticker)
	}

	return subcommands.ExitSuccess
}
