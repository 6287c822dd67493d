package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/dcf/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	eodhdKey string
	fredKey  string
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `assist:
  Start an interactive session with the AI assistant. It teams an analyst
  grounded in web search with a valuator able to run discounted cash flow
  valuations on live market data.

  Requires the GEMINI_API_KEY environment variable on top of the provider keys.
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.eodhdKey, "eodhd-key", "", "EODHD API key. Takes precedence over the "+eodhd_api_key+" environment variable.")
	f.StringVar(&c.fredKey, "fred-key", "", "FRED API key. Takes precedence over the "+fred_api_key+" environment variable.")
}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	var err error
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	market, err := eodhdProvider(c.eodhdKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := fredProvider(c.fredKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst()
	valuator := agent.NewValuator(market, rates)
	a := agent.New(os.Stdout, os.Stdin, analyst, valuator)
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
