package models

// Market represents a single trading venue as reported by the markets feed.
//
// Only Currency and Volume take part in aggregation. Symbol identifies the
// venue (e.g., "bitstampUSD") and is carried for logging.
//
// swagger:model Market
type Market struct {
	Symbol   string  `json:"symbol,omitempty" example:"bitstampUSD"`
	Currency string  `json:"currency" example:"USD"`
	Volume   float64 `json:"volume" example:"1523.75"`
}
