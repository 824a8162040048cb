// Package marketdata fetches market status and index quotes from the
// proxy API and polls them on a fixed cadence for the dashboard hub.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/paiid/paiid/pkg/models"
)

// Client is an HTTP client for the proxy API market endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given gateway base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Status fetches the market-session status.
func (c *Client) Status(ctx context.Context) (models.MarketStatus, error) {
	var status models.MarketStatus
	if err := c.getJSON(ctx, "/api/proxy/api/market/status", &status); err != nil {
		return models.MarketStatus{}, fmt.Errorf("market status: %w", err)
	}
	return status, nil
}

// indicesResponse matches the proxy API index-snapshot payload.
type indicesResponse struct {
	Dow    models.IndexQuote `json:"dow"`
	Nasdaq models.IndexQuote `json:"nasdaq"`
}

// Indices fetches the Dow and Nasdaq quotes.
func (c *Client) Indices(ctx context.Context) (dow, nasdaq models.IndexQuote, err error) {
	var resp indicesResponse
	if err := c.getJSON(ctx, "/api/proxy/api/market/indices", &resp); err != nil {
		return models.IndexQuote{}, models.IndexQuote{}, fmt.Errorf("market indices: %w", err)
	}
	return resp.Dow, resp.Nasdaq, nil
}

// StockInfo fetches quote details for a single symbol.
func (c *Client) StockInfo(ctx context.Context, symbol string) (models.StockInfo, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return models.StockInfo{}, fmt.Errorf("stock info: empty symbol")
	}

	var info models.StockInfo
	path := fmt.Sprintf("/api/proxy/api/stock/%s/info", symbol)
	if err := c.getJSON(ctx, path, &info); err != nil {
		return models.StockInfo{}, fmt.Errorf("stock info for %s: %w", symbol, err)
	}
	if info.Symbol == "" {
		info.Symbol = symbol
	}
	return info, nil
}

// getJSON performs a GET request and decodes the JSON response body.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
