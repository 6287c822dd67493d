package dcf

import (
	"errors"
	"testing"
)

// TestValue_Reference walks every arithmetic step of the valuation on
// hand-computed numbers: base FCFF 50B growing 10% over 5 years, discounted
// at 9% with 5% perpetual growth, 10B net debt over 1B shares.
func TestValue_Reference(t *testing.T) {
	projection := Project(50, 0.10, 5, 2024)

	v, err := Value(projection, 0.09, 0.05, 10, 1.0)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	const tol = 0.005 // every step checked at 2-decimal precision
	wantDiscounted := []float64{50.46, 50.92, 51.39, 51.86, 52.34}
	if len(v.DiscountedFCFF) != len(wantDiscounted) {
		t.Fatalf("got %d discounted flows, want %d", len(v.DiscountedFCFF), len(wantDiscounted))
	}
	for i, want := range wantDiscounted {
		if !almost(v.DiscountedFCFF[i], want, tol) {
			t.Errorf("DiscountedFCFF[%d] = %v, want %v", i, v.DiscountedFCFF[i], want)
		}
	}
	if !almost(v.TerminalValue, 2113.79, tol) {
		t.Errorf("TerminalValue = %v, want 2113.79", v.TerminalValue)
	}
	if !almost(v.TerminalValueDiscounted, 1373.82, tol) {
		t.Errorf("TerminalValueDiscounted = %v, want 1373.82", v.TerminalValueDiscounted)
	}
	if !almost(v.EnterpriseValue, 1630.79, tol) {
		t.Errorf("EnterpriseValue = %v, want 1630.79", v.EnterpriseValue)
	}
	if !almost(v.EquityValue, 1620.79, tol) {
		t.Errorf("EquityValue = %v, want 1620.79", v.EquityValue)
	}
	if !almost(v.FairValuePerShare, 1620.79, tol) {
		t.Errorf("FairValuePerShare = %v, want 1620.79", v.FairValuePerShare)
	}
}

func TestValue_RejectsRateRelation(t *testing.T) {
	projection := Project(50, 0.10, 5, 2024)

	tests := []struct {
		name           string
		wacc, terminal float64
	}{
		{name: "equal rates", wacc: 0.08, terminal: 0.08},
		{name: "terminal above wacc", wacc: 0.05, terminal: 0.08},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Value(projection, tt.wacc, tt.terminal, 10, 1.0)
			if !errors.Is(err, ErrInvalidRateRelation) {
				t.Errorf("Value() error = %v, want ErrInvalidRateRelation", err)
			}
		})
	}
}

func TestValue_RequiresShares(t *testing.T) {
	projection := Project(50, 0.10, 5, 2024)
	for _, shares := range []float64{0, -1} {
		if _, err := Value(projection, 0.09, 0.05, 10, shares); !errors.Is(err, ErrDataInsufficient) {
			t.Errorf("Value(shares=%g) error = %v, want ErrDataInsufficient", shares, err)
		}
	}
}

func TestValue_RequiresProjection(t *testing.T) {
	if _, err := Value(nil, 0.09, 0.05, 10, 1); !errors.Is(err, ErrDataInsufficient) {
		t.Errorf("Value(nil projection) error = %v, want ErrDataInsufficient", err)
	}
}

func TestValue_NegativeNetDebtRaisesEquity(t *testing.T) {
	projection := Project(50, 0.10, 5, 2024)
	v, err := Value(projection, 0.09, 0.05, -10, 1.0)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	// net cash adds to the enterprise value
	if !almost(v.EquityValue, v.EnterpriseValue+10, 1e-9) {
		t.Errorf("EquityValue = %v, want EnterpriseValue+10 = %v", v.EquityValue, v.EnterpriseValue+10)
	}
}
