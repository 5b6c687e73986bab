package models

import "time"

// RecentDestination is a most-recently-used payout destination. Entries are
// unique by (address, network, currency); re-using a destination bumps
// LastUsedAt and label instead of appending.
type RecentDestination struct {
	ID           string    `json:"id"`
	Address      string    `json:"address"`
	Label        string    `json:"label"`
	Network      string    `json:"network"`
	CurrencyCode string    `json:"currency_code"`
	LastUsedAt   time.Time `json:"last_used_at"`
}
