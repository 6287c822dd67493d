package fred

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/etnz/dcf"
	"github.com/etnz/dcf/date"
)

func TestRiskFreeRate(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"observations": [
			{"date": "2025-08-14", "value": "4.28"},
			{"date": "2025-08-15", "value": "4.31"},
			{"date": "2025-08-16", "value": "."},
			{"date": "2025-08-17", "value": "."},
			{"date": "2025-08-18", "value": "4.33"},
			{"date": "2025-08-19", "value": "."},
			{"date": "2025-08-20", "value": "."}
		]}`))
	}))
	defer srv.Close()
	p := &Provider{Key: "demo", BaseURL: srv.URL}

	got, err := p.RiskFreeRate(date.New(2025, 8, 20))
	if err != nil {
		t.Fatalf("RiskFreeRate() error = %v", err)
	}
	// The week-end and holiday markers are skipped, 4.33% is the most recent
	// real observation, returned as a fraction.
	if got != 0.0433 {
		t.Errorf("RiskFreeRate() = %v, want 0.0433", got)
	}

	if s := query.Get("series_id"); s != "DGS10" {
		t.Errorf("series_id = %q, want DGS10", s)
	}
	if s := query.Get("observation_start"); s != "2025-08-13" {
		t.Errorf("observation_start = %q, want 2025-08-13", s)
	}
	if s := query.Get("observation_end"); s != "2025-08-20" {
		t.Errorf("observation_end = %q, want 2025-08-20", s)
	}
	if s := query.Get("file_type"); s != "json" {
		t.Errorf("file_type = %q, want json", s)
	}
}

func TestRiskFreeRate_NoObservation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "only missing markers", body: `{"observations": [
			{"date": "2025-08-19", "value": "."},
			{"date": "2025-08-20", "value": "."}]}`},
		{name: "empty window", body: `{"observations": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()
			p := &Provider{Key: "demo", BaseURL: srv.URL}

			if _, err := p.RiskFreeRate(date.New(2025, 8, 20)); !errors.Is(err, dcf.ErrDataUnavailable) {
				t.Errorf("RiskFreeRate() error = %v, want ErrDataUnavailable", err)
			}
		})
	}
}

func TestRiskFreeRate_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad api key", http.StatusForbidden)
	}))
	defer srv.Close()
	p := &Provider{Key: "bad", BaseURL: srv.URL}

	if _, err := p.RiskFreeRate(date.New(2025, 8, 20)); err == nil {
		t.Error("RiskFreeRate() succeeded against a failing endpoint, want error")
	}
}
