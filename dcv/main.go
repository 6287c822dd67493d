package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dcf/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Serves shell completion requests and returns immediately on a normal run.
	completion().Complete("dcv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the command tree for shell completion.
func completion() *complete.Command {
	keys := map[string]complete.Predictor{
		"eodhd-key": predict.Something,
		"fred-key":  predict.Something,
	}
	valuation := map[string]complete.Predictor{
		"ticker":          predict.Something,
		"years":           predict.Something,
		"growth":          predict.Something,
		"terminal-growth": predict.Something,
		"beta":            predict.Something,
		"market-return":   predict.Something,
	}
	for k, v := range keys {
		valuation[k] = v
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"value":       {Flags: valuation},
			"sensitivity": {Flags: valuation},
			"financials": {Flags: map[string]complete.Predictor{
				"ticker":    predict.Something,
				"eodhd-key": predict.Something,
			}},
			"rate":   {Flags: map[string]complete.Predictor{"fred-key": predict.Something}},
			"search": {Flags: map[string]complete.Predictor{"eodhd-key": predict.Something}},
			"assist": {Flags: keys},
			"topic":  {Args: predict.Set{"readme", "dcf", "assumptions", "providers", "sensitivity", "cli", "*"}},
			"help":   {},
		},
	}
}
