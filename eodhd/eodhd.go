// Package eodhd implements the market data provider backed by the EODHD
// fundamentals API. See https://eodhd.com/financial-apis/.
//
// One ticker maps to one fundamentals document holding the company profile
// and the yearly financial statements. The document is fetched at most once
// per process and both provider views are carved out of it.
package eodhd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"

	"github.com/etnz/dcf"
)

const defaultBaseURL = "https://eodhd.com/api"

// Provider fetches company fundamentals from EODHD.
type Provider struct {
	Key     string       // API token, see https://eodhd.com/cp/settings
	Client  *http.Client // nil means a plain default client
	BaseURL string       // empty means the public API endpoint

	mu   sync.Mutex
	memo map[string][]byte // raw fundamentals document per ticker
}

var _ dcf.MarketDataProvider = (*Provider)(nil)

// NewProvider returns a Provider authenticated with the given API token.
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

// fetch returns the raw fundamentals document for a ticker, downloading it at
// most once per process. An unknown ticker maps to dcf.ErrDataUnavailable.
func (p *Provider) fetch(ticker string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if body, ok := p.memo[ticker]; ok {
		return body, nil
	}

	addr := fmt.Sprintf("%s/fundamentals/%s?api_token=%s&fmt=json", p.base(), url.PathEscape(ticker), url.QueryEscape(p.Key))
	resp, err := p.client().Get(addr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: eodhd has no fundamentals for %q", dcf.ErrDataUnavailable, ticker)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	if p.memo == nil {
		p.memo = make(map[string][]byte)
	}
	p.memo[ticker] = buf.Bytes()
	return p.memo[ticker], nil
}
