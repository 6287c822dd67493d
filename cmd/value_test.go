package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/etnz/dcf"
)

func TestValuationFlags_Defaults(t *testing.T) {
	f := flag.NewFlagSet("value", flag.ContinueOnError)
	var v valuationFlags
	v.SetFlags(f)

	if err := f.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if got, want := v.assumptions(), dcf.DefaultAssumptions(); got != want {
		t.Errorf("assumptions() = %+v, want the defaults %+v", got, want)
	}
	if v.ticker != "" {
		t.Errorf("ticker = %q, want empty", v.ticker)
	}
}

func TestValuationFlags_Parse(t *testing.T) {
	f := flag.NewFlagSet("value", flag.ContinueOnError)
	var v valuationFlags
	v.SetFlags(f)

	args := []string{
		"-ticker", "AAPL.US",
		"-years", "7",
		"-growth", "0.08",
		"-terminal-growth", "0.03",
		"-beta", "1.2",
		"-market-return", "0.10",
	}
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}

	want := dcf.AssumptionSet{
		ForecastYears:  7,
		FCFFGrowth:     0.08,
		TerminalGrowth: 0.03,
		Beta:           1.2,
		MarketReturn:   0.10,
	}
	if got := v.assumptions(); got != want {
		t.Errorf("assumptions() = %+v, want %+v", got, want)
	}
	if err := v.assumptions().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if v.ticker != "AAPL.US" {
		t.Errorf("ticker = %q, want %q", v.ticker, "AAPL.US")
	}
}

func TestProviderKeys(t *testing.T) {
	t.Run("flag takes precedence", func(t *testing.T) {
		t.Setenv(eodhd_api_key, "env-key")
		p, err := eodhdProvider("flag-key")
		if err != nil {
			t.Fatal(err)
		}
		if p.Key != "flag-key" {
			t.Errorf("Key = %q, want %q", p.Key, "flag-key")
		}
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv(eodhd_api_key, "env-key")
		p, err := eodhdProvider("")
		if err != nil {
			t.Fatal(err)
		}
		if p.Key != "env-key" {
			t.Errorf("Key = %q, want %q", p.Key, "env-key")
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv(eodhd_api_key, "")
		_, err := eodhdProvider("")
		if err == nil {
			t.Fatal("expected an error when no key is available")
		}
		if !strings.Contains(err.Error(), eodhd_api_key) {
			t.Errorf("error %q does not name the %s environment variable", err, eodhd_api_key)
		}
	})

	t.Run("fred", func(t *testing.T) {
		t.Setenv(fred_api_key, "env-key")
		p, err := fredProvider("")
		if err != nil {
			t.Fatal(err)
		}
		if p.Key != "env-key" {
			t.Errorf("Key = %q, want %q", p.Key, "env-key")
		}

		t.Setenv(fred_api_key, "")
		if _, err := fredProvider(""); err == nil {
			t.Fatal("expected an error when no key is available")
		}
	})
}
