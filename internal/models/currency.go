package models

import "github.com/shopspring/decimal"

// Well-known currency codes of the rewards platform.
const (
	XP   = "XP"   // reward points
	USDT = "USDT" // stable currency payouts settle in
	USD  = "USD"
)

// CurrencyPair is a directed conversion route with its own rate, fee and
// limits. Pairs are immutable per fetch: the rate provider always replaces
// the whole table, never patches a single pair.
type CurrencyPair struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Rate       decimal.Decimal `json:"rate"`
	FeePercent decimal.Decimal `json:"fee_percent"`
	MinAmount  decimal.Decimal `json:"min_amount"`
	MaxAmount  decimal.Decimal `json:"max_amount"` // zero means unbounded
}
