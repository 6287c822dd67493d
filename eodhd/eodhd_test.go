package eodhd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/dcf"
	"github.com/etnz/dcf/date"
)

// fundamentalsFixture is an abridged EODHD fundamentals document. Statement
// amounts are string-encoded, profile figures are plain numbers, both occur
// in the wild.
const fundamentalsFixture = `{
  "General": {"Code": "AAPL", "Name": "Apple Inc", "CurrencyCode": "USD"},
  "Highlights": {"MarketCapitalization": 3434498293760},
  "SharesStats": {"SharesOutstanding": 15037899776},
  "Financials": {
    "Balance_Sheet": {"yearly": {
      "2024-09-28": {"date": "2024-09-28", "shortLongTermDebtTotal": "106629000000.00", "cash": "29943000000.00"},
      "2023-09-30": {"date": "2023-09-30", "shortLongTermDebtTotal": "111088000000.00", "cash": "29965000000.00"}
    }},
    "Cash_Flow": {"yearly": {
      "2024-09-28": {"date": "2024-09-28", "totalCashFromOperatingActivities": "118254000000.00", "capitalExpenditures": "9447000000.00"},
      "2023-09-30": {"date": "2023-09-30", "totalCashFromOperatingActivities": "110543000000.00", "capitalExpenditures": "10959000000.00"},
      "2022-09-24": {"date": "2022-09-24", "totalCashFromOperatingActivities": "122151000000.00", "capitalExpenditures": "10708000000.00"}
    }},
    "Income_Statement": {"yearly": {
      "2024-09-28": {"date": "2024-09-28", "interestExpense": null},
      "2023-09-30": {"date": "2023-09-30", "interestExpense": "3933000000.00"}
    }}
  }
}`

func almost(got, want, tol float64) bool {
	d := got - want
	return d < tol && d > -tol
}

// newTestProvider serves the fixture for AAPL and a 404 for everything else,
// counting requests.
func newTestProvider(t *testing.T, requests *int) *Provider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			*requests++
		}
		if r.URL.Query().Get("api_token") == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		if r.URL.Path == "/fundamentals/AAPL" {
			w.Write([]byte(fundamentalsFixture))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return &Provider{Key: "demo", BaseURL: srv.URL}
}

func TestProvider_Financials(t *testing.T) {
	p := newTestProvider(t, nil)

	stmts, err := p.Financials("AAPL")
	if err != nil {
		t.Fatalf("Financials() error = %v", err)
	}

	if len(stmts.CashFlow) != 3 {
		t.Fatalf("got %d cash-flow rows, want 3", len(stmts.CashFlow))
	}
	rows := make(map[string]dcf.CashFlowPeriod)
	for _, row := range stmts.CashFlow {
		rows[row.Date.String()] = row
	}
	latest, ok := rows["2024-09-28"]
	if !ok {
		t.Fatalf("no cash-flow row dated 2024-09-28, got %v", stmts.CashFlow)
	}
	if latest.CashFromOperations == nil || !almost(*latest.CashFromOperations, 118.254, 1e-9) {
		t.Errorf("CashFromOperations = %v, want 118.254 billions", latest.CashFromOperations)
	}
	// The API reports the outflow magnitude, the provider flips the sign.
	if latest.CapitalExpenditure == nil || !almost(*latest.CapitalExpenditure, -9.447, 1e-9) {
		t.Errorf("CapitalExpenditure = %v, want -9.447 billions", latest.CapitalExpenditure)
	}

	if len(stmts.Income) != 2 {
		t.Fatalf("got %d income rows, want 2", len(stmts.Income))
	}
	for _, row := range stmts.Income {
		switch row.Date {
		case date.New(2024, 9, 28):
			if row.InterestExpense != nil {
				t.Errorf("2024 InterestExpense = %v, want nil", *row.InterestExpense)
			}
		case date.New(2023, 9, 30):
			if row.InterestExpense == nil || !almost(*row.InterestExpense, 3.933, 1e-9) {
				t.Errorf("2023 InterestExpense = %v, want 3.933 billions", row.InterestExpense)
			}
		default:
			t.Errorf("unexpected income row date %v", row.Date)
		}
	}

	if len(stmts.Balance) != 2 {
		t.Fatalf("got %d balance rows, want 2", len(stmts.Balance))
	}
	for _, row := range stmts.Balance {
		if row.Date != date.New(2024, 9, 28) {
			continue
		}
		if row.TotalDebt == nil || !almost(*row.TotalDebt, 106.629, 1e-9) {
			t.Errorf("TotalDebt = %v, want 106.629 billions", row.TotalDebt)
		}
		if row.TotalCash == nil || !almost(*row.TotalCash, 29.943, 1e-9) {
			t.Errorf("TotalCash = %v, want 29.943 billions", row.TotalCash)
		}
	}
}

func TestProvider_Profile(t *testing.T) {
	p := newTestProvider(t, nil)

	profile, err := p.Profile("AAPL")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.Name != "Apple Inc" {
		t.Errorf("Name = %q, want %q", profile.Name, "Apple Inc")
	}
	if profile.Currency != "USD" {
		t.Errorf("Currency = %q, want %q", profile.Currency, "USD")
	}
	if !almost(profile.MarketCap, 3434.49829376, 1e-6) {
		t.Errorf("MarketCap = %v, want 3434.498 billions", profile.MarketCap)
	}
	if !almost(profile.SharesOutstanding, 15.037899776, 1e-9) {
		t.Errorf("SharesOutstanding = %v, want 15.038 billions", profile.SharesOutstanding)
	}
	// Debt and cash come from the most recent balance sheet, not the 2023 one.
	if !almost(profile.TotalDebt, 106.629, 1e-9) {
		t.Errorf("TotalDebt = %v, want 106.629 billions", profile.TotalDebt)
	}
	if !almost(profile.TotalCash, 29.943, 1e-9) {
		t.Errorf("TotalCash = %v, want 29.943 billions", profile.TotalCash)
	}
}

func TestProvider_Profile_NoShares(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"General": {"Name": "Shell Co"}, "Financials": {"Cash_Flow": {"yearly": {
			"2024-12-31": {"date": "2024-12-31", "totalCashFromOperatingActivities": "1000000000"}}}}}`))
	}))
	defer srv.Close()
	p := &Provider{Key: "demo", BaseURL: srv.URL}

	if _, err := p.Profile("SHELL"); !errors.Is(err, dcf.ErrDataInsufficient) {
		t.Errorf("Profile() error = %v, want ErrDataInsufficient", err)
	}
}

func TestProvider_UnknownTicker(t *testing.T) {
	p := newTestProvider(t, nil)

	if _, err := p.Financials("NOPE"); !errors.Is(err, dcf.ErrDataUnavailable) {
		t.Errorf("Financials() error = %v, want ErrDataUnavailable", err)
	}
	if _, err := p.Profile("NOPE"); !errors.Is(err, dcf.ErrDataUnavailable) {
		t.Errorf("Profile() error = %v, want ErrDataUnavailable", err)
	}
}

func TestProvider_EmptyDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	p := &Provider{Key: "demo", BaseURL: srv.URL}

	if _, err := p.Financials("EMPTY"); !errors.Is(err, dcf.ErrDataUnavailable) {
		t.Errorf("Financials() error = %v, want ErrDataUnavailable", err)
	}
}

// TestProvider_FetchOnce checks that the statements and the profile views
// share a single download of the fundamentals document.
func TestProvider_FetchOnce(t *testing.T) {
	var requests int
	p := newTestProvider(t, &requests)

	if _, err := p.Financials("AAPL"); err != nil {
		t.Fatalf("Financials() error = %v", err)
	}
	if _, err := p.Profile("AAPL"); err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if requests != 1 {
		t.Errorf("document fetched %d times, want 1", requests)
	}
}

func TestProvider_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/search/") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`[{"Code": "AAPL", "Exchange": "US", "Name": "Apple Inc", "Type": "Common Stock",
			"Country": "USA", "Currency": "USD", "previousClose": 229.87, "previousCloseDate": "2025-08-20"}]`))
	}))
	defer srv.Close()
	p := &Provider{Key: "demo", BaseURL: srv.URL}

	results, err := p.Search("Apple")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Code != "AAPL" || results[0].Exchange != "US" {
		t.Errorf("Search() = %+v, want AAPL on US", results[0])
	}
}
