package models

import "time"

// MarketState represents the current trading session state.
type MarketState string

const (
	// MarketOpen indicates regular trading hours.
	MarketOpen MarketState = "open"
	// MarketPremarket indicates the pre-market session.
	MarketPremarket MarketState = "premarket"
	// MarketPostmarket indicates the after-hours session.
	MarketPostmarket MarketState = "postmarket"
	// MarketClosed indicates the market is closed.
	MarketClosed MarketState = "closed"
)

// Valid returns true if the state is a known value.
func (s MarketState) Valid() bool {
	switch s {
	case MarketOpen, MarketPremarket, MarketPostmarket, MarketClosed:
		return true
	default:
		return false
	}
}

// MarketStatus is the market-session status reported by the backend.
type MarketStatus struct {
	// IsOpen indicates whether index data is currently refreshing.
	IsOpen bool `json:"is_open"`
	// State is the session state.
	State MarketState `json:"state"`
	// Description is a human-readable session description.
	Description string `json:"description"`
}

// IndexQuote is a point-in-time value for a market index.
type IndexQuote struct {
	// Last is the most recent index value.
	Last float64 `json:"last"`
	// ChangePercent is the percent change since the previous close.
	ChangePercent float64 `json:"changePercent"`
}

// MarketSnapshot is a point-in-time copy of index values and market-open
// status. Snapshots are cached and treated as stale after 24 hours.
type MarketSnapshot struct {
	// Dow is the Dow Jones Industrial Average quote.
	Dow IndexQuote `json:"dow"`
	// Nasdaq is the Nasdaq Composite quote.
	Nasdaq IndexQuote `json:"nasdaq"`
	// Status is the market-session status merged into the snapshot.
	Status MarketStatus `json:"status"`
	// FetchedAt is when the snapshot was taken.
	FetchedAt time.Time `json:"fetched_at"`
}

// StockInfo holds per-symbol quote details for the stock lookup panels.
type StockInfo struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Last          float64 `json:"last"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
}
