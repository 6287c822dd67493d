// Package dcf computes a Discounted Cash Flow (DCF) equity valuation for a
// publicly traded company, driven by user-adjustable assumptions.
//
// The valuation is a single forward pass over four stages:
//   - Input: an AssumptionSet (forecast horizon, growth rates, beta, market
//     return) and a ticker symbol.
//   - Acquisition: financial statements, a company profile, and a risk-free
//     rate proxy fetched through the MarketDataProvider and RateProvider
//     interfaces. All monetary amounts are normalized to billions of the
//     profile currency at this boundary, and share counts to billions of
//     shares, so that downstream arithmetic works in one canonical unit.
//   - Valuation: free-cash-flow history, projection, WACC, discounted and
//     terminal values, per-share fair value, and a sensitivity grid.
//   - Presentation: a Report consumed by the renderer package.
//
// Every value is recomputed per run; nothing persists between runs.
//
// This package serves as the foundational logic for the `dcv` command-line
// tool.
package dcf
