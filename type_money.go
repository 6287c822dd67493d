package dcf

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary amount paired with its ISO currency code, for display.
// Valuation arithmetic stays on float64; Money only formats the results.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the amount as Money in the given currency.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's symbol and grouping,
// like "$1,620.79".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
