// Package backtest runs strategy backtests through the proxy API and
// classifies indicator signals for the results panel. Request
// validation happens before any network call.
package backtest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Strategies the backend accepts.
var knownStrategies = map[string]bool{
	"rsi_reversal":   true,
	"macd_cross":     true,
	"bollinger_band": true,
	"buy_hold":       true,
}

// dateLayout is the wire format for backtest date ranges.
const dateLayout = "2006-01-02"

// Request is a backtest run as entered in the form. InitialCapital is a
// raw string so validation can report exactly what the user typed.
type Request struct {
	Symbol         string `json:"symbol"`
	Strategy       string `json:"strategy"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	InitialCapital string `json:"initial_capital"`
}

// EquityPoint is one point on the result equity curve.
type EquityPoint struct {
	Date   string  `json:"date"`
	Equity float64 `json:"equity"`
}

// Indicators are the indicator readings at the end of the run window.
type Indicators struct {
	RSI           float64 `json:"rsi"`
	MACDHistogram float64 `json:"macd_histogram"`
	PercentB      float64 `json:"percent_b"`
}

// Result summarizes a completed backtest.
type Result struct {
	Symbol         string        `json:"symbol"`
	Strategy       string        `json:"strategy"`
	TotalReturnPct float64       `json:"total_return_pct"`
	MaxDrawdownPct float64       `json:"max_drawdown_pct"`
	WinRatePct     float64       `json:"win_rate_pct"`
	TradeCount     int           `json:"trade_count"`
	Indicators     Indicators    `json:"indicators"`
	EquityCurve    []EquityPoint `json:"equity_curve"`
}

// Validation errors surfaced on the backtest form.
var (
	ErrEmptySymbol     = errors.New("symbol is required")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidCapital  = errors.New("initial capital must be a positive number")
)

// Validate checks the request and returns the normalized symbol and
// parsed capital.
func (r Request) Validate() (symbol string, capital float64, err error) {
	symbol = strings.ToUpper(strings.TrimSpace(r.Symbol))
	if symbol == "" {
		return "", 0, ErrEmptySymbol
	}

	if !knownStrategies[r.Strategy] {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, r.Strategy)
	}

	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return "", 0, fmt.Errorf("invalid start date %q", r.StartDate)
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return "", 0, fmt.Errorf("invalid end date %q", r.EndDate)
	}
	if !end.After(start) {
		return "", 0, fmt.Errorf("end date must be after start date")
	}

	capital, err = strconv.ParseFloat(strings.TrimSpace(r.InitialCapital), 64)
	if err != nil || capital <= 0 {
		return "", 0, ErrInvalidCapital
	}

	return symbol, capital, nil
}

// Client runs backtests through the proxy API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backtest client for the given gateway base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// runPayload is the wire request for a backtest run.
type runPayload struct {
	Symbol         string  `json:"symbol"`
	Strategy       string  `json:"strategy"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	InitialCapital float64 `json:"initial_capital"`
}

// Run validates the request and executes the backtest. Invalid requests
// never reach the network.
func (c *Client) Run(ctx context.Context, r Request) (Result, error) {
	symbol, capital, err := r.Validate()
	if err != nil {
		return Result{}, err
	}

	body, err := json.Marshal(runPayload{
		Symbol:         symbol,
		Strategy:       r.Strategy,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		InitialCapital: capital,
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal backtest request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/proxy/backtesting/run", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build backtest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("run backtest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("run backtest: status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode backtest result: %w", err)
	}
	if result.Symbol == "" {
		result.Symbol = symbol
	}
	if result.Strategy == "" {
		result.Strategy = r.Strategy
	}
	return result, nil
}
