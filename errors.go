package dcf

import "errors"

// The pipeline fails with exactly one of these kinds. They are sentinels so
// that callers can test with errors.Is; the wrapping message carries the
// specifics (ticker, field, rates).
var (
	// ErrDataUnavailable reports a ticker that is not found, or a provider
	// returning empty or malformed data.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrDataInsufficient reports data that was fetched but is unusable:
	// no valid free-cash-flow period, or missing shares outstanding.
	ErrDataInsufficient = errors.New("insufficient financial data")

	// ErrInvalidRateRelation reports a discount rate at or below the terminal
	// growth rate, for which the terminal value is not finite and positive.
	ErrInvalidRateRelation = errors.New("discount rate must exceed terminal growth rate")
)
