// Package fred implements the risk-free rate provider backed by FRED, the
// Federal Reserve Economic Data API. See https://fred.stlouisfed.org/docs/api/fred/.
//
// The 10-year constant maturity treasury yield, series DGS10, stands in for
// the risk-free rate.
package fred

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/etnz/dcf"
	"github.com/etnz/dcf/date"
)

// Series is the FRED series identifier of the risk-free proxy.
const Series = "DGS10"

const defaultBaseURL = "https://api.stlouisfed.org/fred"

// lookback is how many days before the requested date observations are
// searched. A week always spans a market close.
const lookback = 7

// Provider fetches treasury yields from FRED.
type Provider struct {
	Key     string       // API key, see https://fredaccount.stlouisfed.org/apikeys
	Client  *http.Client // nil means a plain default client
	BaseURL string       // empty means the public API endpoint
}

var _ dcf.RateProvider = (*Provider)(nil)

// NewProvider returns a Provider authenticated with the given API key.
func NewProvider(apiKey string) *Provider { return &Provider{Key: apiKey} }

func (p *Provider) base() string {
	if p.BaseURL != "" {
		return p.BaseURL
	}
	return defaultBaseURL
}

func (p *Provider) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return new(http.Client)
}

// observations matches the FRED series/observations response.
type observations struct {
	Observations []observation `json:"observations"`
}

type observation struct {
	Date  string `json:"date"`
	Value string `json:"value"` // "." flags a day without an observation
}

// RiskFreeRate returns the most recent DGS10 yield at or before the given
// date, as a fraction. FRED publishes the series in percent and flags days
// without an observation (week-ends, bank holidays) with a "." value.
func (p *Provider) RiskFreeRate(on date.Date) (float64, error) {
	addr := fmt.Sprintf("%s/series/observations?series_id=%s&observation_start=%s&observation_end=%s&api_key=%s&file_type=json",
		p.base(),
		Series,
		on.Add(-lookback),
		on,
		url.QueryEscape(p.Key),
	)
	log.Println("Downloading from FRED:", Series)

	var payload observations
	if err := jwget(p.client(), addr, &payload); err != nil {
		return 0, fmt.Errorf("failed to download series %s from FRED: %w", Series, err)
	}

	// Observations come in chronological order, walk backward for the most
	// recent real one.
	for i := len(payload.Observations) - 1; i >= 0; i-- {
		obs := payload.Observations[i]
		if obs.Value == "." {
			continue
		}
		val, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse observation %q on %s: %w", obs.Value, obs.Date, err)
		}
		return val / 100, nil
	}
	return 0, fmt.Errorf("%w: FRED has no %s observation in the %d days before %s", dcf.ErrDataUnavailable, Series, lookback, on)
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure. It uses the provided
// http.Client for the request.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
