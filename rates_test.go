package dcf

import (
	"testing"

	"github.com/etnz/dcf/date"
)

func TestComputeDiscountRates(t *testing.T) {
	// All cases share rf=4%, beta=1.2, market return 9%, so the CAPM cost of
	// equity is 0.04 + 1.2×0.05 = 0.10.
	a := AssumptionSet{ForecastYears: 10, Beta: 1.2, MarketReturn: 0.09}
	const riskFree = 0.04

	tests := []struct {
		name       string
		cs         CapitalStructure
		wantKe     float64
		wantKd     float64
		wantWe     float64
		wantWd     float64
		wantWACC   float64
		normalized bool // equity + debt weights must sum to 1
	}{
		{
			name:       "standard capital structure",
			cs:         CapitalStructure{MarketCap: 800, TotalDebt: 250, TotalCash: 50, NetDebt: 200, InterestExpense: 10},
			wantKe:     0.10,
			wantKd:     0.04,
			wantWe:     0.8,
			wantWd:     0.2,
			wantWACC:   0.08632,
			normalized: true,
		},
		{
			name:       "net cash position keeps a negative debt weight",
			cs:         CapitalStructure{MarketCap: 500, TotalDebt: 20, TotalCash: 120, NetDebt: -100, InterestExpense: 1},
			wantKe:     0.10,
			wantKd:     0.05,
			wantWe:     1.25,
			wantWd:     -0.25,
			wantWACC:   0.115125,
			normalized: true,
		},
		{
			name:       "no debt falls back to the default cost of debt",
			cs:         CapitalStructure{MarketCap: 100, NetDebt: 0},
			wantKe:     0.10,
			wantKd:     0.02,
			wantWe:     1,
			wantWd:     0,
			wantWACC:   0.10,
			normalized: true,
		},
		{
			name:     "zero total capital is treated as all equity",
			cs:       CapitalStructure{MarketCap: 0, TotalDebt: 50, TotalCash: 50, NetDebt: 0, InterestExpense: 2},
			wantKe:   0.10,
			wantKd:   0.04,
			wantWe:   1,
			wantWd:   0,
			wantWACC: 0.10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeDiscountRates(riskFree, a, tt.cs)
			if !almost(r.CostOfEquity, tt.wantKe, 1e-9) {
				t.Errorf("CostOfEquity = %v, want %v", r.CostOfEquity, tt.wantKe)
			}
			if !almost(r.CostOfDebt, tt.wantKd, 1e-9) {
				t.Errorf("CostOfDebt = %v, want %v", r.CostOfDebt, tt.wantKd)
			}
			if !almost(r.EquityWeight, tt.wantWe, 1e-9) || !almost(r.DebtWeight, tt.wantWd, 1e-9) {
				t.Errorf("weights = %v, %v, want %v, %v", r.EquityWeight, r.DebtWeight, tt.wantWe, tt.wantWd)
			}
			if !almost(r.WACC, tt.wantWACC, 1e-9) {
				t.Errorf("WACC = %v, want %v", r.WACC, tt.wantWACC)
			}
			if r.TaxRate != TaxRate {
				t.Errorf("TaxRate = %v, want %v", r.TaxRate, TaxRate)
			}
			if tt.normalized && !almost(r.EquityWeight+r.DebtWeight, 1, 1e-9) {
				t.Errorf("weights sum to %v, want 1", r.EquityWeight+r.DebtWeight)
			}
		})
	}
}

func TestNewCapitalStructure(t *testing.T) {
	profile := Profile{
		Name:              "Apple Inc",
		Currency:          "USD",
		MarketCap:         3400,
		TotalDebt:         106.63,
		TotalCash:         65.17,
		SharesOutstanding: 15.2,
	}
	// Income rows arrive unordered, with the most recent one not reporting
	// interest: the 2023 value is the latest reported one.
	income := []IncomePeriod{
		{Date: date.New(2022, 9, 24), InterestExpense: fp(-2.93)},
		{Date: date.New(2024, 9, 28), InterestExpense: nil},
		{Date: date.New(2023, 9, 30), InterestExpense: fp(-3.93)},
	}

	cs := NewCapitalStructure(profile, income)
	if !almost(cs.NetDebt, 41.46, 1e-9) {
		t.Errorf("NetDebt = %v, want 41.46", cs.NetDebt)
	}
	if !almost(cs.InterestExpense, 3.93, 1e-9) {
		t.Errorf("InterestExpense = %v, want 3.93 (absolute value of the latest reported)", cs.InterestExpense)
	}
	if cs.SharesOutstanding != 15.2 || cs.Currency != "USD" {
		t.Errorf("snapshot did not carry the profile over: %+v", cs)
	}
}

func TestNewCapitalStructure_NoInterest(t *testing.T) {
	cs := NewCapitalStructure(Profile{MarketCap: 10}, nil)
	if cs.InterestExpense != 0 {
		t.Errorf("InterestExpense = %v, want 0 when never reported", cs.InterestExpense)
	}
}
