package models

import "time"

// OrderSide represents the direction of an order.
type OrderSide string

const (
	// SideBuy is a buy order.
	SideBuy OrderSide = "buy"
	// SideSell is a sell order.
	SideSell OrderSide = "sell"
)

// Valid returns true if the side is a known value.
func (s OrderSide) Valid() bool {
	return s == SideBuy || s == SideSell
}

// OrderType represents the execution type of an order.
type OrderType string

const (
	// OrderMarket executes at the current market price.
	OrderMarket OrderType = "market"
	// OrderLimit executes at the limit price or better.
	OrderLimit OrderType = "limit"
)

// Valid returns true if the order type is a known value.
func (t OrderType) Valid() bool {
	return t == OrderMarket || t == OrderLimit
}

// TradingMode selects live execution or paper simulation.
type TradingMode string

const (
	// ModeLive routes orders to the live execution endpoint.
	ModeLive TradingMode = "live"
	// ModePaper routes orders to the paper simulator.
	ModePaper TradingMode = "paper"
)

// Valid returns true if the mode is a known value.
func (m TradingMode) Valid() bool {
	return m == ModeLive || m == ModePaper
}

// Order is a trade order submitted through the proxy API.
type Order struct {
	// ID is the client-generated order identifier.
	ID string `json:"id"`
	// Symbol is the uppercase ticker symbol.
	Symbol string `json:"symbol"`
	// Side is buy or sell.
	Side OrderSide `json:"side"`
	// Type is market or limit.
	Type OrderType `json:"type"`
	// Quantity is the number of shares.
	Quantity float64 `json:"quantity"`
	// LimitPrice is required for limit orders, zero otherwise.
	LimitPrice float64 `json:"limit_price,omitempty"`
	// Mode is the trading mode the order was routed with.
	Mode TradingMode `json:"mode"`
	// SubmittedAt is when the order was submitted.
	SubmittedAt time.Time `json:"submitted_at"`
}

// Position is an open holding reported by the backend.
type Position struct {
	Symbol        string  `json:"symbol"`
	Quantity      float64 `json:"quantity"`
	AvgPrice      float64 `json:"avg_price"`
	Last          float64 `json:"last"`
	UnrealizedPnL float64 `json:"unrealized_pnl"`
}
