package models

import "github.com/shopspring/decimal"

// Quote is the locally computed, non-binding estimate for a candidate
// transaction. The backend remains authoritative for settled amounts; the
// terminal status event confirms, not dictates, these numbers.
type Quote struct {
	Output             decimal.Decimal `json:"output"`
	Fee                decimal.Decimal `json:"fee"`
	PriceImpactPercent decimal.Decimal `json:"price_impact_percent"`
}

// QuoteResult pairs a quote with the guard verdict for the same inputs.
// Rejection is nil when the transaction may proceed.
type QuoteResult struct {
	Quote     Quote               `json:"quote"`
	Rejection *OrchestrationError `json:"rejection,omitempty"`
}
