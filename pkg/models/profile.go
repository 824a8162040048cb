package models

import "time"

// RiskTolerance represents the user's configured risk appetite.
type RiskTolerance string

const (
	// RiskConservative prefers capital preservation.
	RiskConservative RiskTolerance = "conservative"
	// RiskModerate balances growth and preservation.
	RiskModerate RiskTolerance = "moderate"
	// RiskAggressive prefers growth.
	RiskAggressive RiskTolerance = "aggressive"
)

// Valid returns true if the tolerance is a known value.
func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	default:
		return false
	}
}

// Profile holds the user's dashboard settings.
type Profile struct {
	// DisplayName is shown in the header.
	DisplayName string `json:"display_name"`
	// RiskTolerance tunes AI recommendations.
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
	// TradingMode selects live or paper execution.
	TradingMode TradingMode `json:"trading_mode"`
	// SetupComplete indicates the first-run wizard has finished.
	SetupComplete bool `json:"setup_complete"`
	// UpdatedAt is when the profile was last saved.
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultProfile returns the profile used before setup completes.
func DefaultProfile() Profile {
	return Profile{
		DisplayName:   "Trader",
		RiskTolerance: RiskModerate,
		TradingMode:   ModePaper,
	}
}

// Watchlist is a named collection of ticker symbols.
type Watchlist struct {
	// ID is the unique watchlist identifier.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Symbols are the uppercase ticker symbols, in display order.
	Symbols []string `json:"symbols"`
	// CreatedAt is when the watchlist was created.
	CreatedAt time.Time `json:"created_at"`
}
