// Package cmd implements the CLI application to value companies.
package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/dcf/eodhd"
	"github.com/etnz/dcf/fred"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&valueCmd{}, "valuation")
	c.Register(&sensitivityCmd{}, "valuation")

	c.Register(&financialsCmd{}, "market data")
	c.Register(&rateCmd{}, "market data")
	c.Register(&searchCmd{}, "market data")

	c.Register(&AssistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// Environment variables read when the corresponding key flag is not set.
const (
	eodhd_api_key = "EODHD_API_KEY"
	fred_api_key  = "FRED_API_KEY"
)

// eodhdProvider returns the fundamentals provider for the given flag value,
// falling back on the environment variable.
func eodhdProvider(flagValue string) (*eodhd.Provider, error) {
	key := flagValue
	if key == "" {
		key = os.Getenv(eodhd_api_key)
	}
	if key == "" {
		return nil, fmt.Errorf("EODHD API key is not set, use -eodhd-key or the %s environment variable", eodhd_api_key)
	}
	return eodhd.NewProvider(key), nil
}

// fredProvider returns the rate provider for the given flag value, falling
// back on the environment variable.
func fredProvider(flagValue string) (*fred.Provider, error) {
	key := flagValue
	if key == "" {
		key = os.Getenv(fred_api_key)
	}
	if key == "" {
		return nil, fmt.Errorf("FRED API key is not set, use -fred-key or the %s environment variable", fred_api_key)
	}
	return fred.NewProvider(key), nil
}
