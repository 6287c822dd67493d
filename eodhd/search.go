package eodhd

import (
	"fmt"
	"net/url"
)

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code              string  `json:"Code"`
	Exchange          string  `json:"Exchange"`
	Name              string  `json:"Name"`
	Type              string  `json:"Type"`
	Country           string  `json:"Country"`
	Currency          string  `json:"Currency"`
	PreviousClose     float64 `json:"previousClose"`
	PreviousCloseDate string  `json:"previousCloseDate"`
}

// Search looks a company up by name or ticker fragment via the EODHD search
// API. The Code and Exchange of a result join as "CODE.EXCHANGE", the ticker
// format the fundamentals endpoint expects.
func (p *Provider) Search(term string) ([]SearchResult, error) {
	addr := fmt.Sprintf("%s/search/%s?api_token=%s&fmt=json", p.base(), url.PathEscape(term), url.QueryEscape(p.Key))

	var results []SearchResult
	if err := jwget(p.client(), addr, &results); err != nil {
		return nil, err
	}
	return results, nil
}
